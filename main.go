package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := LoadConfig()
	setupLogger(cfg.Debug)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var visits *VisitLog
	if cfg.TrackVisits() {
		var err error
		visits, err = OpenVisitLog(ctx, cfg.DatabasePath)
		if err != nil {
			slog.Error("Failed to open visit log", "path", cfg.DatabasePath, "error", err)
			os.Exit(1)
		}
		defer func() { _ = visits.Close() }()

		// Visit records are kept for 12 months
		if n, err := visits.Prune(ctx, time.Now().AddDate(-1, 0, 0)); err != nil {
			slog.Error("Error pruning old visits", "error", err)
		} else if n > 0 {
			slog.Info("Pruned old visits", "count", n)
		}
		slog.Info("Visit tracking enabled with hashed IP addresses", "path", cfg.DatabasePath)
	}

	client := NewGitHubClient(cfg.GitHubAPIURL, cfg.GitHubUser, nil)
	feed := NewRenderer(client, cfg.GitHubUser, BaselineSkills)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, feed, visits),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Listening", "addr", srv.Addr, "github_user", cfg.GitHubUser)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
