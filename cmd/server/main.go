// Command taskdeck-server serves the taskdeck REST API over a local SQLite database.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/logging"
	"github.com/thenoetrevino/taskdeck/internal/server"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.InitServer(os.Stderr, cfg.LogLevel)
	if logging.ParseLevel(cfg.LogLevel) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	srv := server.New(database.NewRepository(db), cfg.JWTSecret,
		server.WithTokenTTL(cfg.TokenTTL),
		server.WithLogger(slog.Default()),
	)

	slog.Info("taskdeck server starting", "addr", cfg.Addr, "db_path", cfg.DBPath, "pid", os.Getpid())

	if err := srv.Run(ctx, cfg.Addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("taskdeck server shut down gracefully")
}
