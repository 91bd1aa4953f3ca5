package game

import "context"

// Draw is a single card drawn from a deck together with the number of
// cards left in it afterwards.
type Draw struct {
	Card      CardInfo
	Remaining int
}

// DeckProvider creates shuffled decks and draws from them.
// Implementations wrap transport failures in ErrProviderUnavailable.
type DeckProvider interface {
	NewShuffledDeck(ctx context.Context) (string, error)
	DrawCard(ctx context.Context, deckID string) (Draw, error)
}
