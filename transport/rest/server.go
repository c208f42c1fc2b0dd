package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type RouterConfig struct {
	Logger    *slog.Logger
	Users     userService
	Auth      authService
	Tokens    tokenIssuer
	Websocket http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(Recovery(cfg.Logger))
	router.Use(Logging(cfg.Logger))

	users := newUserHandler(cfg.Logger, cfg.Users, cfg.Auth)
	games := newGameHandler(cfg.Logger, cfg.Users, cfg.Tokens)
	authMiddleware := Auth(cfg.Auth)

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	router.HandleFunc("/user/create", users.Create).Methods(http.MethodPost)
	router.HandleFunc("/user/login", users.Login).Methods(http.MethodPost)
	router.Handle("/user/", authMiddleware(http.HandlerFunc(users.Me))).Methods(http.MethodGet)

	router.Handle("/game/websocket-token", authMiddleware(http.HandlerFunc(games.WebsocketToken))).Methods(http.MethodPost)
	router.HandleFunc("/game/leaderboard", games.Leaderboard).Methods(http.MethodGet)

	if cfg.Websocket != nil {
		router.Handle("/game/ws", cfg.Websocket).Methods(http.MethodGet)
	}

	return router
}

// Start - serves the handler until ctx is done, then shuts the server down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
