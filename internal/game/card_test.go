package game

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardFaceRanks(t *testing.T) {
	faces := map[string]int{
		"TEN":   10,
		"JACK":  11,
		"QUEEN": 12,
		"KING":  13,
		"ACE":   14,
	}
	for value, want := range faces {
		c, err := NewCard(CardInfo{Value: value, Suit: "SPADES", Image: "img"}, false)
		require.NoError(t, err, value)
		assert.Equal(t, want, c.Rank(), value)
	}
}

func TestNewCardNumericRanks(t *testing.T) {
	for _, value := range []string{"2", "3", "4", "5", "6", "7", "8", "9", "10"} {
		c, err := NewCard(CardInfo{Value: value, Suit: "HEARTS"}, false)
		require.NoError(t, err, value)

		want, _ := strconv.Atoi(value)
		assert.Equal(t, want, c.Rank())
	}

	c, err := NewCard(CardInfo{Value: "7"}, false)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Rank())
}

func TestNewCardInvalidValue(t *testing.T) {
	for _, value := range []string{"", "ace", "Joker", "King", "1.5", "99", "0", "-3", "1", "11", "15", "+7", " 7", "07"} {
		_, err := NewCard(CardInfo{Value: value}, false)
		require.Error(t, err, value)
		assert.True(t, errors.Is(err, ErrInvalidCardValue))

		var cardErr *InvalidCardValueError
		require.True(t, errors.As(err, &cardErr))
		assert.Equal(t, value, cardErr.Value)
	}
}

func TestNewCardKeepsAttributes(t *testing.T) {
	c, err := NewCard(CardInfo{Value: "QUEEN", Suit: "CLUBS", Image: "https://example.com/QC.png"}, true)
	require.NoError(t, err)

	assert.Equal(t, "CLUBS", c.Suit())
	assert.Equal(t, "https://example.com/QC.png", c.Image())
	assert.True(t, c.IsLast())
	assert.Equal(t, CardView{Value: 12, Suit: "CLUBS", Image: "https://example.com/QC.png"}, c.view())
}
