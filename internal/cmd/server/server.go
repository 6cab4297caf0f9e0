// Package server parses server command flags and runs the MCP adapter.
package server

import (
	"context"
	"flag"
	"log"
	"time"

	mcpserver "github.com/louisbranch/wayfarer/internal/mcp"
	"github.com/louisbranch/wayfarer/internal/platform/config"
	"github.com/louisbranch/wayfarer/internal/platform/otel"
	"github.com/louisbranch/wayfarer/internal/service"
	"github.com/louisbranch/wayfarer/internal/storage/sqlite"
)

// Config holds server command configuration.
type Config struct {
	DBPath string `env:"WAYFARER_DB_PATH" envDefault:"wayfarer.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the store and serves the MCP tools over stdio until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "wayfarer")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	svc := service.New(store)
	return mcpserver.NewServer(svc).Run(ctx)
}
