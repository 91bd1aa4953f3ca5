package deck

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/google/uuid"
)

var ErrDeckNotFound = errors.New("deck not found")

const imageURL = "https://deckofcardsapi.com/static/img/%s.png"

var suits = []game.Suit{game.Spades, game.Diamonds, game.Clubs, game.Hearts}

// values pairs each rank token with its card code prefix.
var values = []struct{ token, code string }{
	{game.Ace, "A"}, {"2", "2"}, {"3", "3"}, {"4", "4"}, {"5", "5"},
	{"6", "6"}, {"7", "7"}, {"8", "8"}, {"9", "9"}, {"10", "0"},
	{game.Jack, "J"}, {game.Queen, "Q"}, {game.King, "K"},
}

type Deck struct {
	Cards []game.CardInfo
}

// NewDeck creates a new standard 52-card deck
func NewDeck() *Deck {
	deck := &Deck{Cards: make([]game.CardInfo, 0, len(suits)*len(values))}
	for _, suit := range suits {
		for _, v := range values {
			code := v.code + string(suit[0])
			deck.Cards = append(deck.Cards, game.CardInfo{
				Value: v.token,
				Suit:  string(suit),
				Image: fmt.Sprintf(imageURL, code),
			})
		}
	}
	return deck
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle(r *rand.Rand) {
	// Fisher-Yates shuffle algorithm
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// DrawCard removes and returns the top card from the deck
func (d *Deck) DrawCard() (game.CardInfo, bool) {
	if len(d.Cards) == 0 {
		return game.CardInfo{}, false
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, true
}

// RemainingCards returns the number of cards left in the deck
func (d *Deck) RemainingCards() int {
	return len(d.Cards)
}

// Local is an in-process DeckProvider. Emptied decks are forgotten.
type Local struct {
	mu    sync.Mutex
	decks map[string]*Deck
	rand  *rand.Rand
}

// NewLocal creates a local provider. A nil src seeds from the clock.
func NewLocal(src rand.Source) *Local {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Local{
		decks: make(map[string]*Deck),
		rand:  rand.New(src),
	}
}

func (l *Local) NewShuffledDeck(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	d := NewDeck()
	d.Shuffle(l.rand)

	id := uuid.New().String()
	l.decks[id] = d
	return id, nil
}

func (l *Local) DrawCard(ctx context.Context, deckID string) (game.Draw, error) {
	if err := ctx.Err(); err != nil {
		return game.Draw{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := l.decks[deckID]
	if !ok {
		return game.Draw{}, deckNotFound(deckID)
	}

	card, ok := d.DrawCard()
	if !ok {
		delete(l.decks, deckID)
		return game.Draw{}, deckNotFound(deckID)
	}
	if d.RemainingCards() == 0 {
		delete(l.decks, deckID)
	}

	return game.Draw{Card: card, Remaining: d.RemainingCards()}, nil
}

func deckNotFound(deckID string) error {
	return fmt.Errorf("%w: %w: %s", game.ErrProviderUnavailable, ErrDeckNotFound, deckID)
}

// Len returns the number of decks still holding cards.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.decks)
}
