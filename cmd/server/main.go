package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calvinwijaya/high-card-be/internal/api"
	"github.com/calvinwijaya/high-card-be/internal/config"
	"github.com/calvinwijaya/high-card-be/internal/deck"
	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/calvinwijaya/high-card-be/internal/middleware"
	"github.com/calvinwijaya/high-card-be/internal/session"
	"github.com/calvinwijaya/high-card-be/internal/store"
	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logger := cfg.Logger()

	// Pick the deck provider
	var provider game.DeckProvider
	switch cfg.DeckSource {
	case config.DeckSourceLocal:
		provider = deck.NewLocal(nil)
	default:
		provider = deck.NewClient(cfg.DeckAPIURL, cfg.DeckTimeout)
	}
	logger.WithField("source", cfg.DeckSource).Info("Deck provider initialized")

	// Initialize the session store
	sessions := store.NewMemoryStore(cfg.SessionTTL)
	logger.WithField("ttl", sessions.TTL()).Info("In-memory session store initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize WebSocket hub
	hub := api.NewHub(logger)
	go hub.Run(ctx)
	logger.Info("WebSocket hub started")

	handlers := api.NewHandlers(session.NewManager(sessions, provider), hub, cfg.Players, logger)

	// Set up router
	r := mux.NewRouter()
	handlers.RegisterRoutes(r)
	r.Use(middleware.LogMiddleware(logger))

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
	cancel()
}
