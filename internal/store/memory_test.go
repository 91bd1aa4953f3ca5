package store

import (
	"context"
	"testing"
	"time"

	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/calvinwijaya/high-card-be/internal/game/gametest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(context.Background(), gametest.NewProvider(), []string{"A", "B"})
	require.NoError(t, err)
	return g
}

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	g, ok := s.Get()
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	g := newTestGame(t)

	s.Put(g)
	got, ok := s.Get()
	require.True(t, ok)
	assert.Same(t, g, got)
}

func TestMemoryStoreSingleSlot(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	first, second := newTestGame(t), newTestGame(t)

	s.Put(first)
	s.Put(second)

	got, ok := s.Get()
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestMemoryStoreExpires(t *testing.T) {
	s := NewMemoryStore(50 * time.Millisecond)
	s.Put(newTestGame(t))

	_, ok := s.Get()
	assert.True(t, ok)

	time.Sleep(120 * time.Millisecond)
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestMemoryStorePutResetsExpiry(t *testing.T) {
	s := NewMemoryStore(400 * time.Millisecond)
	g := newTestGame(t)
	s.Put(g)

	time.Sleep(250 * time.Millisecond)
	s.Put(g)
	time.Sleep(250 * time.Millisecond)

	got, ok := s.Get()
	require.True(t, ok)
	assert.Same(t, g, got)
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	s.Put(newTestGame(t))
	s.Clear()

	_, ok := s.Get()
	assert.False(t, ok)
}

func TestMemoryStoreDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewMemoryStore(0).TTL())
	assert.Equal(t, time.Minute, NewMemoryStore(time.Minute).TTL())
}
