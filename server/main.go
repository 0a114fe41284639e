package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"roomhub/server/adaptor"
	"roomhub/server/auth"
	"roomhub/server/codec"
	"roomhub/server/config"
	"roomhub/server/domain"
	"roomhub/server/messages"
	"roomhub/server/repository"
	"roomhub/server/usecase"
)

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Error("failed to open db", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()
	if err := repository.Migrate(db); err != nil {
		logger.Error("failed to migrate db", slog.Any("error", err))
		os.Exit(1)
	}

	ids, err := codec.New(cfg.HashSalt, cfg.HashMinLength)
	if err != nil {
		logger.Error("failed to build id codec", slog.Any("error", err))
		os.Exit(1)
	}

	repo := repository.NewRepository(db)
	registry := usecase.NewConnectionRegistry(repo)
	groups := domain.NewGroups()
	presence := usecase.NewPresenceBroadcaster(messages.NewCatalog(), groups)
	lifecycle := usecase.NewRoomLifecycleManager(ids, repo, registry, presence, groups, logger)
	hub := adaptor.NewHub(lifecycle, groups, auth.New(cfg.JWTSecret), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", slog.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server shut down")
}
