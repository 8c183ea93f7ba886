// Package main is the entry point for the contacts backend.
//
// main stays minimal: build the logger, load configuration, make sure the
// database directory exists, and hand off to internal/server. All actual
// logic lives in the imported packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z1f7/832301306-contacts-backend/internal/config"
	"github.com/z1f7/832301306-contacts-backend/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The database file is auto-created by SQLite, but its parent
	// directory must exist first (relevant when DB_PATH points somewhere
	// like /var/lib/contacts/db.sqlite).
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", dbDir),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DBPath:      cfg.DBPath,
		FrontendDir: cfg.FrontendDir,
	}, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
