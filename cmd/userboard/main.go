package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/msomdec/userboard/internal/config"
	"github.com/msomdec/userboard/internal/handler"
	"github.com/msomdec/userboard/internal/service"
	"github.com/msomdec/userboard/internal/session"
	"github.com/msomdec/userboard/internal/storeclient"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.LoadApp()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	store := storeclient.New(cfg.StoreURL)
	sessions := session.NewStore(cfg.SessionSecret, cfg.CookieSecure)

	// Five login attempts up front, one more every twelve seconds.
	limiter := service.NewLoginLimiter(1.0/12, 5)

	router := handler.NewRouter(sessions, handler.Services{
		Auth:   service.NewAuthService(store, limiter),
		Todos:  service.NewTodoService(store),
		Posts:  service.NewPostService(store),
		Albums: service.NewAlbumService(store),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "store", cfg.StoreURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
