package store

import "github.com/calvinwijaya/high-card-be/internal/game"

// SessionKey is the single key the in-flight game is stored under.
const SessionKey = "game"

// Store defines the interface for session storage
type Store interface {
	// Put saves the game, replacing any previous one and resetting its expiry
	Put(g *game.Game)

	// Get returns the stored game unless it is missing or expired
	Get() (*game.Game, bool)

	// Clear removes the stored game
	Clear()
}
