package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/config"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/service"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-matchmaker/transport/rest"
	"github.com/rocketscienceinc/tictactoe-matchmaker/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	db, err := storage.NewPostgresStorage(ctx, conf.Postgres.GetDSN(), logger)
	if err != nil {
		return fmt.Errorf("could not connect to postgres: %w", err)
	}

	defer func() {
		if err = storage.ClosePostgres(db); err != nil {
			log.Error("could not close postgres", "error", err)
		}
	}()

	accountRepo := repository.NewAccountRepository(db)
	gameRepo := repository.NewGameRepository(db)
	tokenRepo := repository.NewTokenRepository(redisStorage)

	authService := service.NewAuthService(conf.JWT.SecretKey, conf.JWT.TTL)
	userService := service.NewUserService(logger, accountRepo, service.LeaderboardOptions{
		MinGames: conf.Leaderboard.MinGames,
		Limit:    conf.Leaderboard.Limit,
	})
	tokenService := service.NewTokenService(logger, tokenRepo, accountRepo, service.TokenOptions{
		TTL:       conf.Token.TTL,
		SingleUse: conf.Token.SingleUse,
	})

	connections := usecase.NewConnectionRegistry(logger)
	gameManager := usecase.NewGameManager(logger, gameRepo, accountRepo, connections, usecase.Options{
		PersistAttempts: conf.Matchmaking.PersistAttempts,
		PersistBackoff:  conf.Matchmaking.PersistBackoff,
	})

	reaper := usecase.NewReaper(logger, gameManager, conf.Reaper.Interval, conf.Reaper.IdleAfter)
	if err = reaper.Start(ctx); err != nil {
		return fmt.Errorf("could not start reaper: %w", err)
	}

	defer func() {
		if err = reaper.Shutdown(); err != nil {
			log.Error("could not stop reaper", "error", err)
		}
	}()

	router := rest.NewRouter(rest.RouterConfig{
		Logger:    logger,
		Users:     userService,
		Auth:      authService,
		Tokens:    tokenService,
		Websocket: websocket.New(logger, tokenService, connections, gameManager),
	})

	// run HTTP server, websocket included
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, router)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		if err = <-httpErrCh; err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}
}

// Migrate - creates or updates the relational schema.
func Migrate(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	db, err := storage.NewPostgresStorage(ctx, conf.Postgres.GetDSN(), logger)
	if err != nil {
		return fmt.Errorf("could not connect to postgres: %w", err)
	}

	defer func() {
		if closeErr := storage.ClosePostgres(db); closeErr != nil {
			logger.Error("could not close postgres", "error", closeErr)
		}
	}()

	if err = repository.Migrate(ctx, db); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	logger.Info("schema migrated")

	return nil
}
