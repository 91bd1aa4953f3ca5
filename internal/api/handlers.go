package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/calvinwijaya/high-card-be/internal/session"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const noGameMessage = "No game in progress. Please start a new game to draw a card."

// Handlers contains all the API handlers
type Handlers struct {
	manager *session.Manager
	hub     *Hub
	players []string
	logger  logrus.FieldLogger
}

// NewHandlers creates a new instance of Handlers. players is the default
// line-up for /start; hub may be nil.
func NewHandlers(manager *session.Manager, hub *Hub, players []string, logger logrus.FieldLogger) *Handlers {
	return &Handlers{
		manager: manager,
		hub:     hub,
		players: players,
		logger:  logger,
	}
}

// RegisterRoutes registers all API routes
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/start", h.StartGame).Methods("GET", "POST")
	r.HandleFunc("/draw-cards", h.DrawCards).Methods("GET", "POST")

	if h.hub != nil {
		r.HandleFunc("/ws", h.hub.WebSocketHandler)
	}
}

// response helper function to send JSON responses
func response(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// error response helper function
func errorResponse(w http.ResponseWriter, status int, message string) {
	response(w, status, map[string]string{"message": message})
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	response(w, http.StatusOK, map[string]string{"message": "Game of Cards..."})
}

// StartGame deals a new game, replacing any game in progress, and plays
// its first round. ?players=A,B overrides the default line-up.
func (h *Handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	players := h.players
	if q := r.URL.Query().Get("players"); q != "" {
		players = game.SplitPlayerNames(q)
	}

	g, res, err := h.manager.Start(r.Context(), players)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.broadcast(EventGameStarted, g.ID, res)
	response(w, http.StatusOK, res)
}

// DrawCards plays the next round of the game in progress.
func (h *Handlers) DrawCards(w http.ResponseWriter, r *http.Request) {
	g, res, err := h.manager.Advance(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.broadcast(EventRoundPlayed, g.ID, res)
	response(w, http.StatusOK, res)
}

func (h *Handlers) broadcast(event, gameID string, res game.Result) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(Message{Type: event, GameID: gameID, Data: res})
	if res.Finished {
		h.hub.Broadcast(Message{Type: EventGameOver, GameID: gameID, Data: map[string]*string{"winner": res.Winner}})
	}
}

func (h *Handlers) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNoActiveSession):
		h.logger.Warn(noGameMessage)
		errorResponse(w, http.StatusNotFound, noGameMessage)

	case errors.Is(err, game.ErrInsufficientPlayers),
		errors.Is(err, game.ErrTooManyPlayers),
		errors.Is(err, game.ErrDuplicatePlayer),
		errors.Is(err, game.ErrEmptyPlayerName):
		errorResponse(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, game.ErrProviderUnavailable),
		errors.Is(err, game.ErrInvalidCardValue):
		h.logger.WithError(err).Error("Deck provider failure")
		errorResponse(w, http.StatusBadGateway, "The deck of cards service is unavailable. Please try again later.")

	default:
		h.logger.WithError(err).Error("Unexpected game error")
		errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
