package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameNotInFlight = errors.New("game is not in progress")
)

type GameRepository interface {
	Create(ctx context.Context, player1, player2 int64) (*GameRecord, error)
	GetByID(ctx context.Context, id int64) (*GameRecord, error)
	SaveResult(ctx context.Context, result *entity.GameResult) error
	Cancel(ctx context.Context, id int64) error
}

type dbGame struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &dbGame{
		db: db,
	}
}

func (that *dbGame) Create(ctx context.Context, player1, player2 int64) (*GameRecord, error) {
	model := &gameModel{
		Player1ID: player1,
		Player2ID: player2,
		Status:    entity.StatusInProgress,
	}

	if err := that.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return model.toRecord(), nil
}

func (that *dbGame) GetByID(ctx context.Context, id int64) (*GameRecord, error) {
	var model gameModel

	err := that.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return model.toRecord(), nil
}

// SaveResult - updates both players' counters and the game row in one transaction.
func (that *dbGame) SaveResult(ctx context.Context, result *entity.GameResult) error {
	snapshot, err := result.Board.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to snapshot board: %w", err)
	}

	return that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game gameModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&game, result.GameID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to lock game: %w", err)
		}

		if game.Status != entity.StatusInProgress {
			return fmt.Errorf("%w: game %d is %s", ErrGameNotInFlight, game.ID, game.Status)
		}

		if result.IsDraw {
			if err = incrementCounter(tx, "draws", result.Player1, result.Player2); err != nil {
				return err
			}
		} else {
			if err = incrementCounter(tx, "wins", *result.WinnerID); err != nil {
				return err
			}

			if err = incrementCounter(tx, "losses", *result.LoserID); err != nil {
				return err
			}
		}

		err = tx.Model(&gameModel{ID: result.GameID}).Updates(map[string]interface{}{
			"status":             entity.StatusCompleted,
			"winner_id":          result.WinnerID,
			"loser_id":           result.LoserID,
			"is_draw":            result.IsDraw,
			"player1_move_count": result.Player1Moves,
			"player2_move_count": result.Player2Moves,
			"final_state":        snapshot,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update game: %w", err)
		}

		return nil
	})
}

func (that *dbGame) Cancel(ctx context.Context, id int64) error {
	res := that.db.WithContext(ctx).
		Model(&gameModel{}).
		Where("id = ? AND status = ?", id, entity.StatusInProgress).
		Update("status", entity.StatusCancelled)
	if res.Error != nil {
		return fmt.Errorf("failed to cancel game: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrGameNotInFlight
	}

	return nil
}

func incrementCounter(tx *gorm.DB, column string, ids ...int64) error {
	res := tx.Model(&accountModel{}).
		Where("id IN ?", ids).
		Update(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to increment %s: %w", column, res.Error)
	}

	if res.RowsAffected != int64(len(ids)) {
		return fmt.Errorf("%w: expected %d rows for %s, updated %d", ErrAccountNotFound, len(ids), column, res.RowsAffected)
	}

	return nil
}
