package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/calvinwijaya/high-card-be/internal/game"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public deck of cards API.
const DefaultBaseURL = "https://deckofcardsapi.com/api/deck"

type shuffleResponse struct {
	Success   bool   `json:"success"`
	DeckID    string `json:"deck_id"`
	Remaining int    `json:"remaining"`
}

type drawResponse struct {
	Success   bool            `json:"success"`
	DeckID    string          `json:"deck_id"`
	Cards     []game.CardInfo `json:"cards"`
	Remaining *int            `json:"remaining"`
	Error     string          `json:"error,omitempty"`
}

// Client is a DeckProvider backed by the deck of cards HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL. timeout bounds every request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewShuffledDeck creates a single shuffled deck and returns its ID.
func (c *Client) NewShuffledDeck(ctx context.Context) (string, error) {
	var resp shuffleResponse
	if err := c.get(ctx, c.baseURL+"/new/shuffle/?deck_count=1", &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.DeckID == "" {
		return "", fmt.Errorf("%w: shuffle returned no deck", game.ErrProviderUnavailable)
	}

	log.WithFields(log.Fields{"deck": resp.DeckID, "remaining": resp.Remaining}).Debug("Deck shuffled")
	return resp.DeckID, nil
}

// DrawCard draws exactly one card from deckID.
func (c *Client) DrawCard(ctx context.Context, deckID string) (game.Draw, error) {
	var resp drawResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/draw/?count=1", c.baseURL, deckID), &resp); err != nil {
		return game.Draw{}, err
	}
	if !resp.Success || len(resp.Cards) == 0 {
		return game.Draw{}, fmt.Errorf("%w: draw from deck %s failed: %s", game.ErrProviderUnavailable, deckID, resp.Error)
	}

	if resp.Remaining == nil {
		return game.Draw{}, fmt.Errorf("%w: draw from deck %s has no remaining count", game.ErrProviderUnavailable, deckID)
	}

	return game.Draw{Card: resp.Cards[0], Remaining: *resp.Remaining}, nil
}

func (c *Client) get(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", game.ErrProviderUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", game.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %s", game.ErrProviderUnavailable, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", game.ErrProviderUnavailable, req.URL.Path, err)
	}
	return nil
}
