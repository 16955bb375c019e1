package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/authgate/authgate-go/internal/config"
	"github.com/authgate/authgate-go/internal/handler"
	"github.com/authgate/authgate-go/internal/repository"
	"github.com/authgate/authgate-go/internal/service"
	"github.com/authgate/authgate-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.BcryptCost)

	sessions := session.NewManager([]byte(cfg.SessionHashKey), []byte(cfg.SessionBlockKey), cfg.SessionTTL, cfg.SecureCookies)
	csrf := session.NewCSRF([]byte(cfg.SessionHashKey), []byte(cfg.SessionBlockKey), cfg.SecureCookies)

	renderer, err := handler.NewRenderer()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.NewRouter(authService, sessions, csrf, renderer),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
