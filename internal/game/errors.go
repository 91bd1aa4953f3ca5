package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCardValue is matched by every *InvalidCardValueError.
	ErrInvalidCardValue = errors.New("invalid card value")

	// ErrProviderUnavailable wraps network and decoding failures of a DeckProvider.
	ErrProviderUnavailable = errors.New("deck provider unavailable")

	// ErrNoActiveSession is returned when advancing without a live game.
	ErrNoActiveSession = errors.New("no game in progress")

	// ErrInsufficientPlayers signals that fewer than two players or draws were
	// available to resolve a winner.
	ErrInsufficientPlayers = errors.New("at least 2 players are needed to play the game")

	ErrTooManyPlayers  = errors.New("only 2 players are supported")
	ErrDuplicatePlayer = errors.New("player names must be unique")
	ErrEmptyPlayerName = errors.New("player name is required")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNoDeckAssigned  = errors.New("player has no deck assigned")
)

// InvalidCardValueError carries the rank token that could not be resolved.
type InvalidCardValueError struct {
	Value string
}

func (e *InvalidCardValueError) Error() string {
	return fmt.Sprintf("the value %q for card is not supported", e.Value)
}

func (e *InvalidCardValueError) Is(target error) bool {
	return target == ErrInvalidCardValue
}
