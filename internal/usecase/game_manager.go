package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
)

const (
	defaultPersistAttempts = 3
	defaultPersistBackoff  = 200 * time.Millisecond
)

type gameRepo interface {
	Create(ctx context.Context, player1, player2 int64) (*repository.GameRecord, error)
	SaveResult(ctx context.Context, result *entity.GameResult) error
	Cancel(ctx context.Context, id int64) error
}

type accountRepo interface {
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
}

type notifier interface {
	Send(ctx context.Context, playerID int64, message any) error
	IsConnected(playerID int64) bool
}

type Options struct {
	PersistAttempts int
	PersistBackoff  time.Duration
}

// MoveResult - outcome of a move request. Rejected moves carry the reason and change nothing.
type MoveResult struct {
	Accepted bool
	Reason   error
	Outcome  entity.Outcome
}

func Accepted(outcome entity.Outcome) MoveResult {
	return MoveResult{Accepted: true, Outcome: outcome}
}

func Rejected(reason error) MoveResult {
	return MoveResult{Reason: reason}
}

// GameManager - owns the match queue and the in-progress games. It is the only writer of both.
type GameManager struct {
	logger      *slog.Logger
	gameRepo    gameRepo
	accountRepo accountRepo
	connections notifier
	opts        Options

	// mu guards queue and sessions; it is never held across I/O.
	mu       sync.Mutex
	queue    *MatchQueue
	sessions *sessionStore
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, accountRepo accountRepo, connections notifier, opts Options) *GameManager {
	if opts.PersistAttempts <= 0 {
		opts.PersistAttempts = defaultPersistAttempts
	}

	if opts.PersistBackoff <= 0 {
		opts.PersistBackoff = defaultPersistBackoff
	}

	return &GameManager{
		logger: logger,

		gameRepo:    gameRepo,
		accountRepo: accountRepo,
		connections: connections,
		opts:        opts,

		queue:    NewMatchQueue(),
		sessions: newSessionStore(),
	}
}

// Join - queues the player, or starts a game against the longest waiting player.
// Returns nil game when the player was queued.
func (that *GameManager) Join(ctx context.Context, playerID int64) (*entity.Game, error) {
	log := that.logger.With("method", "Join", "playerID", playerID)

	that.mu.Lock()
	if that.sessions.isSeated(playerID) {
		that.mu.Unlock()
		return nil, fmt.Errorf("%w: player %d", apperror.ErrAlreadyInGame, playerID)
	}

	opponent, paired, err := that.queue.JoinOrPair(playerID)
	if err != nil {
		that.mu.Unlock()
		return nil, fmt.Errorf("failed to join queue: %w", err)
	}

	if !paired {
		that.mu.Unlock()
		log.Info("player is waiting for an opponent")
		return nil, nil
	}

	// reserve both players until the game exists
	that.sessions.reserve(opponent, playerID)
	that.mu.Unlock()

	game, err := that.Start(ctx, opponent, playerID)
	if err != nil {
		that.mu.Lock()
		that.sessions.release(opponent, playerID)
		if that.connections.IsConnected(opponent) {
			that.queue.Requeue(opponent)
		}
		that.mu.Unlock()

		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

// Leave - drops a waiting player from the queue.
func (that *GameManager) Leave(playerID int64) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.queue.Leave(playerID)
}

// Start - creates a game where the first player moves first and announces it to both players.
func (that *GameManager) Start(ctx context.Context, player1, player2 int64) (*entity.Game, error) {
	log := that.logger.With("method", "Start", "player1", player1, "player2", player2)

	if player1 == player2 {
		return nil, fmt.Errorf("%w: player %d", apperror.ErrSelfMatch, player1)
	}

	first, err := that.accountRepo.GetByID(ctx, player1)
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", player1, err)
	}

	second, err := that.accountRepo.GetByID(ctx, player2)
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", player2, err)
	}

	record, err := that.gameRepo.Create(ctx, player1, player2)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := entity.NewGame(record.ID, player1, player2)
	sess := &session{game: game}

	// moves wait until both players got GAME_START
	sess.mu.Lock()
	defer sess.mu.Unlock()

	that.mu.Lock()
	that.sessions.put(sess)
	that.mu.Unlock()

	log = log.With("gameID", game.ID)

	that.broadcast(ctx, log, game, &entity.GameStartMessage{
		Type:    entity.MessageGameStart,
		GameID:  game.ID,
		Player1: entity.PlayerInfo{ID: first.ID, Username: first.Username},
		Player2: entity.PlayerInfo{ID: second.ID, Username: second.Username},
		Turn:    game.Turn,
	})

	log.Info("game started")

	snapshot := *game

	return &snapshot, nil
}

// ApplyMove - validates and applies a move, announces it and finishes the game on a win or a draw.
func (that *GameManager) ApplyMove(ctx context.Context, gameID, playerID int64, row, col int) MoveResult {
	log := that.logger.With("method", "ApplyMove", "gameID", gameID, "playerID", playerID)

	that.mu.Lock()
	sess, ok := that.sessions.get(gameID)
	that.mu.Unlock()

	if !ok {
		log.Info("move for unknown game ignored")
		return Rejected(fmt.Errorf("%w: game %d", apperror.ErrGameNotFound, gameID))
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	game := sess.game
	if err := game.MakeMove(playerID, row, col); err != nil {
		log.Info("move rejected", "row", row, "col", col, "reason", err)
		return Rejected(err)
	}

	that.broadcast(ctx, log, game, &entity.GameMoveMessage{
		Type:     entity.MessageGameMove,
		GameID:   game.ID,
		PlayerID: playerID,
		Turn:     game.Turn,
		Row:      row,
		Col:      col,
	})

	outcome := entity.DetectOutcome(game.Board, playerID)
	if outcome == entity.OutcomeContinue {
		return Accepted(outcome)
	}

	game.Status = entity.StatusCompleted
	that.finish(ctx, log, game, outcome, playerID)

	return Accepted(outcome)
}

// finish - announces the result, persists it and forgets the game.
func (that *GameManager) finish(ctx context.Context, log *slog.Logger, game *entity.Game, outcome entity.Outcome, lastMover int64) {
	result := game.Result(outcome, lastMover)

	that.broadcast(ctx, log, game, &entity.GameEndMessage{
		Type:     entity.MessageGameEnd,
		GameID:   game.ID,
		WinnerID: result.WinnerID,
	})

	// the result must survive the mover disconnecting
	if err := that.persistResult(context.WithoutCancel(ctx), log, result); err != nil {
		log.Error("failed to persist game result", "outcome", outcome.String(), "error", err)
	}

	that.remove(game)

	log.Info("game finished", "outcome", outcome.String())
}

func (that *GameManager) persistResult(ctx context.Context, log *slog.Logger, result *entity.GameResult) error {
	var err error

	for attempt := 1; attempt <= that.opts.PersistAttempts; attempt++ {
		err = that.gameRepo.SaveResult(ctx, result)
		if err == nil {
			return nil
		}

		if errors.Is(err, repository.ErrGameNotFound) ||
			errors.Is(err, repository.ErrGameNotInFlight) ||
			errors.Is(err, repository.ErrAccountNotFound) {
			return err
		}

		log.Warn("failed to save game result, retrying", "attempt", attempt, "error", err)

		if attempt == that.opts.PersistAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(that.opts.PersistBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("gave up after %d attempts: %w", that.opts.PersistAttempts, err)
}

func (that *GameManager) remove(game *entity.Game) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions.remove(game)
}

// Game - a copy of the in-progress game state.
func (that *GameManager) Game(gameID int64) (*entity.Game, bool) {
	that.mu.Lock()
	sess, ok := that.sessions.get(gameID)
	that.mu.Unlock()

	if !ok {
		return nil, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	snapshot := *sess.game

	return &snapshot, true
}

// ActiveGames - number of games in memory.
func (that *GameManager) ActiveGames() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sessions.count()
}

// Waiting - players queued for an opponent, oldest first.
func (that *GameManager) Waiting() []int64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.queue.Waiting()
}

// broadcast - sends the message to both players; a failed delivery never stops the other one.
func (that *GameManager) broadcast(ctx context.Context, log *slog.Logger, game *entity.Game, message any) {
	for _, playerID := range []int64{game.Player1, game.Player2} {
		if err := that.connections.Send(ctx, playerID, message); err != nil {
			if errors.Is(err, apperror.ErrNotConnected) {
				log.Warn("player is not connected", "playerID", playerID)
				continue
			}

			log.Error("failed to send message", "playerID", playerID, "error", err)
		}
	}
}

// SweepIdle - cancels games without moves for idleAfter whose players have both disconnected.
func (that *GameManager) SweepIdle(ctx context.Context, idleAfter time.Duration) int {
	log := that.logger.With("method", "SweepIdle")

	that.mu.Lock()
	candidates := that.sessions.all()
	that.mu.Unlock()

	swept := 0
	now := time.Now()

	for _, sess := range candidates {
		sess.mu.Lock()
		game := sess.game
		stalled := game.IsInProgress() &&
			now.Sub(game.LastMoveAt) >= idleAfter &&
			!that.connections.IsConnected(game.Player1) &&
			!that.connections.IsConnected(game.Player2)
		if stalled {
			game.Status = entity.StatusCancelled
		}
		sess.mu.Unlock()

		if !stalled {
			continue
		}

		if err := that.gameRepo.Cancel(ctx, game.ID); err != nil {
			log.Error("failed to cancel stalled game", "gameID", game.ID, "error", err)
		}

		that.remove(game)
		swept++

		log.Info("stalled game cancelled", "gameID", game.ID, "idle", now.Sub(game.LastMoveAt))
	}

	return swept
}
