// Package gametest provides a scripted DeckProvider for tests.
package gametest

import (
	"context"
	"fmt"
	"sync"

	"github.com/calvinwijaya/high-card-be/internal/game"
)

// Provider hands out deck IDs "deck-1", "deck-2", ... and serves the draws
// queued for each deck in order.
type Provider struct {
	mu      sync.Mutex
	created int
	draws   map[string][]game.Draw

	// NewDeckErr and DrawErr, when set, are returned by every call.
	NewDeckErr error
	DrawErr    error

	DrawCalls []string
}

func NewProvider() *Provider {
	return &Provider{draws: make(map[string][]game.Draw)}
}

// Queue appends draws to the deck with the given ID.
func (p *Provider) Queue(deckID string, draws ...game.Draw) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draws[deckID] = append(p.draws[deckID], draws...)
}

func (p *Provider) NewShuffledDeck(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.NewDeckErr != nil {
		return "", p.NewDeckErr
	}
	p.created++
	return fmt.Sprintf("deck-%d", p.created), nil
}

func (p *Provider) DrawCard(ctx context.Context, deckID string) (game.Draw, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.DrawCalls = append(p.DrawCalls, deckID)
	if p.DrawErr != nil {
		return game.Draw{}, p.DrawErr
	}

	queued := p.draws[deckID]
	if len(queued) == 0 {
		return game.Draw{}, fmt.Errorf("%w: no scripted draw for %s", game.ErrProviderUnavailable, deckID)
	}
	p.draws[deckID] = queued[1:]
	return queued[0], nil
}

// Decks returns how many decks have been created.
func (p *Provider) Decks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created
}

// Draw builds a draw record for value and suit.
func Draw(value, suit string, remaining int) game.Draw {
	return game.Draw{
		Card: game.CardInfo{
			Value: value,
			Suit:  suit,
			Image: fmt.Sprintf("https://deckofcardsapi.com/static/img/%s-%s.png", value, suit),
		},
		Remaining: remaining,
	}
}
