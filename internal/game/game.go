package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type GameStatus string

const (
	Created    GameStatus = "created"    // Decks dealt, no round played yet
	InProgress GameStatus = "inProgress" // At least one round played
	Completed  GameStatus = "completed"  // A deck ran out
)

// Game is a two player high-card game. Each player draws from their own deck.
type Game struct {
	ID        string
	Status    GameStatus
	Rounds    int
	CreatedAt time.Time
	UpdatedAt time.Time

	players  []*Player
	provider DeckProvider
}

// NewGame creates the players and fetches one shuffled deck per player, in order.
func NewGame(ctx context.Context, provider DeckProvider, names []string) (*Game, error) {
	if err := ValidatePlayerNames(names); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &Game{
		ID:        uuid.New().String(),
		Status:    Created,
		CreatedAt: now,
		UpdatedAt: now,
		players:   make([]*Player, 0, len(names)),
		provider:  provider,
	}

	for _, name := range names {
		deckID, err := provider.NewShuffledDeck(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating deck for player %s: %w", name, err)
		}
		p := NewPlayer(name)
		p.AssignDeck(deckID)
		g.players = append(g.players, p)
	}

	log.WithFields(log.Fields{
		"game":    g.ID,
		"players": names,
	}).Info("Game created")

	return g, nil
}

// ValidatePlayerNames checks that names holds exactly two distinct, non-empty names.
func ValidatePlayerNames(names []string) error {
	if len(names) < 2 {
		return ErrInsufficientPlayers
	}
	if len(names) > 2 {
		return ErrTooManyPlayers
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return ErrEmptyPlayerName
		}
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		seen[name] = true
	}
	return nil
}

// SplitPlayerNames splits a comma separated list of names, dropping blanks.
func SplitPlayerNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Players returns the players in turn order.
func (g *Game) Players() []*Player {
	return g.players
}

// Finished reports whether a deck has run out.
func (g *Game) Finished() bool {
	return g.Status == Completed
}

// Advance plays one round: every player draws a card, the higher rank scores
// a point and, when any deck has run out, the game winner is resolved.
func (g *Game) Advance(ctx context.Context) (Result, error) {
	if g.Finished() {
		return Result{}, ErrGameFinished
	}

	round := NewRound()
	for _, p := range g.players {
		card, err := g.draw(ctx, p)
		if err != nil {
			return Result{}, err
		}
		round.RecordDraw(p, card)

		log.WithFields(log.Fields{
			"game":   g.ID,
			"player": p.Name(),
			"rank":   card.Rank(),
			"suit":   card.Suit(),
		}).Debug("Card drawn")
	}

	roundWinner, err := round.Winner()
	if err != nil {
		return Result{}, err
	}
	if roundWinner != nil {
		roundWinner.AddScore(1)
		log.WithFields(log.Fields{"game": g.ID, "winner": roundWinner.Name()}).Info("Round won")
	} else {
		log.WithField("game", g.ID).Info("Round tied")
	}

	g.Rounds++
	g.Status = InProgress
	g.UpdatedAt = time.Now()

	result := Result{
		RoundInfo: round.Summary(),
		Finished:  round.IsLast(),
	}
	if !result.Finished {
		return result, nil
	}

	g.Status = Completed
	winner, err := g.Winner()
	if err != nil {
		return Result{}, err
	}
	if winner != nil {
		name := winner.Name()
		result.Winner = &name
		log.WithFields(log.Fields{
			"game":   g.ID,
			"winner": name,
			"score":  winner.Score(),
		}).Info("Game finished")
	} else {
		log.WithField("game", g.ID).Info("Game finished in a tie")
	}

	return result, nil
}

// Winner compares the scores of the first two players. Equal scores return nil.
func (g *Game) Winner() (*Player, error) {
	if len(g.players) < 2 {
		return nil, ErrInsufficientPlayers
	}

	first, second := g.players[0], g.players[1]
	switch {
	case first.Score() > second.Score():
		return first, nil
	case second.Score() > first.Score():
		return second, nil
	default:
		return nil, nil
	}
}

func (g *Game) draw(ctx context.Context, p *Player) (Card, error) {
	if p.DeckID() == "" {
		return Card{}, fmt.Errorf("%w: %s", ErrNoDeckAssigned, p.Name())
	}

	d, err := g.provider.DrawCard(ctx, p.DeckID())
	if err != nil {
		return Card{}, fmt.Errorf("drawing card for player %s: %w", p.Name(), err)
	}

	card, err := NewCard(d.Card, d.Remaining == 0)
	if err != nil {
		return Card{}, fmt.Errorf("drawing card for player %s: %w", p.Name(), err)
	}
	return card, nil
}
