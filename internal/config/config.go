// Package config reads server settings from flags, with defaults taken from
// the environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/calvinwijaya/high-card-be/internal/deck"
	"github.com/calvinwijaya/high-card-be/internal/game"
	"github.com/calvinwijaya/high-card-be/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	DeckSourceRemote = "remote"
	DeckSourceLocal  = "local"
)

type Config struct {
	Port        string
	FrontendURL string
	DeckSource  string
	DeckAPIURL  string
	DeckTimeout time.Duration
	SessionTTL  time.Duration
	Players     []string
	LogLevel    logrus.Level
	LogFormat   string
}

// Load parses args (without the program name).
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var (
		port        = fs.String("port", getEnv("PORT", "8080"), "Server port")
		frontendURL = fs.String("frontend", getEnv("FRONTEND_URL", "http://localhost:3000"), "Frontend URL for CORS")
		deckSource  = fs.String("deck-source", getEnv("DECK_SOURCE", DeckSourceRemote), "Deck provider: remote or local")
		deckAPIURL  = fs.String("deck-api", getEnv("DECK_API_URL", deck.DefaultBaseURL), "Deck of cards API base URL")
		deckTimeout = fs.String("deck-timeout", getEnv("DECK_TIMEOUT", "10s"), "Timeout for each deck API request")
		sessionTTL  = fs.String("session-ttl", getEnv("SESSION_TTL", store.DefaultTTL.String()), "Lifetime of an idle game session")
		players     = fs.String("players", getEnv("PLAYERS", "A,B"), "Comma separated player names")
		logLevel    = fs.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level")
		logFormat   = fs.String("log-format", getEnv("LOG_FORMAT", "text"), "Log format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        *port,
		FrontendURL: *frontendURL,
		DeckSource:  *deckSource,
		DeckAPIURL:  *deckAPIURL,
		Players:     game.SplitPlayerNames(*players),
		LogFormat:   *logFormat,
	}

	var err error
	if cfg.DeckTimeout, err = time.ParseDuration(*deckTimeout); err != nil {
		return nil, fmt.Errorf("invalid deck timeout %q: %w", *deckTimeout, err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(*sessionTTL); err != nil {
		return nil, fmt.Errorf("invalid session ttl %q: %w", *sessionTTL, err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.LogLevel, err = logrus.ParseLevel(*logLevel); err != nil {
		return nil, err
	}

	switch cfg.DeckSource {
	case DeckSourceRemote, DeckSourceLocal:
	default:
		return nil, fmt.Errorf("unknown deck source %q", cfg.DeckSource)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the process logger.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
