// Package session runs the single in-flight game on behalf of the HTTP layer.
package session

import (
	"context"
	"sync"

	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/calvinwijaya/high-card-be/internal/store"
	log "github.com/sirupsen/logrus"
)

// Manager starts and advances the stored game. Store access and the advance
// itself happen under one lock so concurrent requests never interleave draws.
type Manager struct {
	mu       sync.Mutex
	store    store.Store
	provider game.DeckProvider
}

func NewManager(s store.Store, provider game.DeckProvider) *Manager {
	return &Manager{store: s, provider: provider}
}

// Start discards any stored game, deals a new one for names and plays its
// first round.
func (m *Manager) Start(ctx context.Context, names []string) (*game.Game, game.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := game.NewGame(ctx, m.provider, names)
	if err != nil {
		return nil, game.Result{}, err
	}
	m.store.Put(g)

	log.WithField("game", g.ID).Info("Starting the game now")
	res, err := m.advance(ctx, g)
	return g, res, err
}

// Advance plays the next round of the stored game.
func (m *Manager) Advance(ctx context.Context) (*game.Game, game.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.store.Get()
	if !ok {
		return nil, game.Result{}, game.ErrNoActiveSession
	}

	res, err := m.advance(ctx, g)
	return g, res, err
}

func (m *Manager) advance(ctx context.Context, g *game.Game) (game.Result, error) {
	res, err := g.Advance(ctx)
	if err != nil {
		return game.Result{}, err
	}

	if res.Finished {
		m.store.Clear()
	} else {
		m.store.Put(g)
	}
	return res, nil
}
