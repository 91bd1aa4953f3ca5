package store

import (
	"time"

	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"
)

// DefaultTTL is how long a session lives after its last write.
const DefaultTTL = 300 * time.Second

// MemoryStore is an in-memory, single-slot implementation of session storage
// backed by an expiring LRU of size one.
type MemoryStore struct {
	ttl   time.Duration
	cache *expirable.LRU[string, *game.Game]
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:   ttl,
		cache: expirable.NewLRU[string, *game.Game](1, onEvict, ttl),
	}
}

func onEvict(key string, g *game.Game) {
	log.WithFields(log.Fields{"key": key, "game": g.ID}).Debug("Session evicted")
}

// Put saves a game to the store
func (s *MemoryStore) Put(g *game.Game) {
	if prev, ok := s.cache.Peek(SessionKey); ok && prev != g && !prev.Finished() {
		log.WithField("game", prev.ID).Info("Discarding unfinished game")
	}
	s.cache.Add(SessionKey, g)
}

// Get retrieves the current game
func (s *MemoryStore) Get() (*game.Game, bool) {
	return s.cache.Get(SessionKey)
}

// Clear removes the current game from the store
func (s *MemoryStore) Clear() {
	s.cache.Remove(SessionKey)
}

// TTL returns the lifetime of an entry
func (s *MemoryStore) TTL() time.Duration {
	return s.ttl
}
