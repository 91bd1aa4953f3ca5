package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/calvinwijaya/high-card-be/internal/game/gametest"
	"github.com/calvinwijaya/high-card-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T) (*Manager, *gametest.Provider, *store.MemoryStore) {
	t.Helper()
	p := gametest.NewProvider()
	s := store.NewMemoryStore(time.Minute)
	return NewManager(s, p), p, s
}

func TestAdvanceWithoutSession(t *testing.T) {
	m, _, _ := setupManager(t)

	_, _, err := m.Advance(context.Background())
	assert.ErrorIs(t, err, game.ErrNoActiveSession)
}

func TestAdvanceAfterSessionExpires(t *testing.T) {
	p := gametest.NewProvider()
	m := NewManager(store.NewMemoryStore(50*time.Millisecond), p)
	p.Queue("deck-1", gametest.Draw("KING", "SPADES", 51), gametest.Draw("2", "SPADES", 50))
	p.Queue("deck-2", gametest.Draw("9", "HEARTS", 51), gametest.Draw("3", "HEARTS", 50))

	_, _, err := m.Start(context.Background(), []string{"A", "B"})
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)

	_, _, err = m.Advance(context.Background())
	assert.ErrorIs(t, err, game.ErrNoActiveSession)
	assert.Equal(t, []string{"deck-1", "deck-2"}, p.DrawCalls)
}

func TestStartPlaysFirstRound(t *testing.T) {
	m, p, s := setupManager(t)
	p.Queue("deck-1", gametest.Draw("KING", "SPADES", 51))
	p.Queue("deck-2", gametest.Draw("9", "HEARTS", 51))

	g, res, err := m.Start(context.Background(), []string{"A", "B"})
	require.NoError(t, err)

	assert.Equal(t, []game.RoundInfo{
		{PlayerName: "A", Score: 1, DrawnCard: game.CardView{Value: 13, Suit: "SPADES", Image: "https://deckofcardsapi.com/static/img/KING-SPADES.png"}},
		{PlayerName: "B", Score: 0, DrawnCard: game.CardView{Value: 9, Suit: "HEARTS", Image: "https://deckofcardsapi.com/static/img/9-HEARTS.png"}},
	}, res.RoundInfo)
	assert.False(t, res.Finished)
	assert.Nil(t, res.Winner)

	stored, ok := s.Get()
	require.True(t, ok)
	assert.Same(t, g, stored)
}

func TestFullGame(t *testing.T) {
	m, p, s := setupManager(t)
	ctx := context.Background()
	p.Queue("deck-1",
		gametest.Draw("KING", "SPADES", 2),
		gametest.Draw("7", "CLUBS", 1),
		gametest.Draw("ACE", "DIAMONDS", 0),
	)
	p.Queue("deck-2",
		gametest.Draw("9", "HEARTS", 2),
		gametest.Draw("7", "HEARTS", 1),
		gametest.Draw("2", "SPADES", 5),
	)

	_, res, err := m.Start(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.RoundInfo[0].Score)

	// tie
	_, res, err = m.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RoundInfo[0].Score)
	assert.Equal(t, 0, res.RoundInfo[1].Score)
	assert.False(t, res.Finished)

	g, res, err := m.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, res.Finished)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "A", *res.Winner)
	assert.Equal(t, 2, res.RoundInfo[0].Score)
	assert.Equal(t, 0, res.RoundInfo[1].Score)
	assert.True(t, g.Finished())
	assert.Equal(t, 3, g.Rounds)

	_, ok := s.Get()
	assert.False(t, ok)
	_, _, err = m.Advance(ctx)
	assert.ErrorIs(t, err, game.ErrNoActiveSession)
}

func TestStartReplacesPreviousGame(t *testing.T) {
	m, p, _ := setupManager(t)
	ctx := context.Background()
	p.Queue("deck-1", gametest.Draw("3", "SPADES", 10))
	p.Queue("deck-2", gametest.Draw("4", "SPADES", 10))
	p.Queue("deck-3", gametest.Draw("5", "SPADES", 10), gametest.Draw("6", "SPADES", 9))
	p.Queue("deck-4", gametest.Draw("2", "SPADES", 10), gametest.Draw("8", "SPADES", 9))

	first, _, err := m.Start(ctx, []string{"A", "B"})
	require.NoError(t, err)
	second, _, err := m.Start(ctx, []string{"C", "D"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	g, res, err := m.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, g.ID)
	assert.Equal(t, "C", res.RoundInfo[0].PlayerName)
	assert.Equal(t, []string{"deck-1", "deck-2", "deck-3", "deck-4", "deck-3", "deck-4"}, p.DrawCalls)
}

func TestStartRejectsBadPlayers(t *testing.T) {
	m, _, s := setupManager(t)

	_, _, err := m.Start(context.Background(), []string{"A", "A"})
	assert.ErrorIs(t, err, game.ErrDuplicatePlayer)

	_, ok := s.Get()
	assert.False(t, ok)
}

func TestStartPropagatesProviderFailure(t *testing.T) {
	m, p, _ := setupManager(t)
	p.NewDeckErr = game.ErrProviderUnavailable

	_, _, err := m.Start(context.Background(), []string{"A", "B"})
	assert.ErrorIs(t, err, game.ErrProviderUnavailable)
}

func TestConcurrentAdvancesKeepRoundsWhole(t *testing.T) {
	m, p, _ := setupManager(t)
	ctx := context.Background()

	const rounds = 20
	for i := rounds; i >= 0; i-- {
		p.Queue("deck-1", gametest.Draw("KING", "SPADES", i+1))
		p.Queue("deck-2", gametest.Draw("2", "HEARTS", i+1))
	}

	_, _, err := m.Start(ctx, []string{"A", "B"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := m.Advance(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < len(p.DrawCalls); i += 2 {
		assert.Equal(t, "deck-1", p.DrawCalls[i])
		assert.Equal(t, "deck-2", p.DrawCalls[i+1])
	}
	assert.Len(t, p.DrawCalls, 2*(rounds+1))
}
