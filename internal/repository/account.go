package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	Leaderboard(ctx context.Context, minGames, limit int) ([]*entity.LeaderboardEntry, error)
}

type dbAccount struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &dbAccount{
		db: db,
	}
}

func (that *dbAccount) Create(ctx context.Context, account *entity.Account) error {
	model := &accountModel{
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
	}

	err := that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&accountModel{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}

		if count > 0 {
			return ErrUsernameTaken
		}

		return tx.Create(model).Error
	})
	if errors.Is(err, ErrUsernameTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}

	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	account.ID = model.ID
	account.CreatedAt = model.CreatedAt

	return nil
}

func (that *dbAccount) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	var model accountModel

	err := that.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return model.toEntity(), nil
}

func (that *dbAccount) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var model accountModel

	err := that.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}

	return model.toEntity(), nil
}

// Leaderboard - top accounts by wins among those with at least minGames finished games.
// Efficiency is the average number of the winner's own moves over the games they won.
func (that *dbAccount) Leaderboard(ctx context.Context, minGames, limit int) ([]*entity.LeaderboardEntry, error) {
	ranked := that.db.Model(&accountModel{}).
		Select("id, username, wins, losses, draws").
		Where("wins + losses + draws >= ?", minGames).
		Order("wins DESC").
		Order("id ASC").
		Limit(limit)

	var entries []*entity.LeaderboardEntry

	err := that.db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Select(`ranked.id AS user_id, ranked.username, ranked.wins, ranked.losses, ranked.draws,
			CASE WHEN ranked.wins = 0 THEN NULL ELSE AVG(
				CASE WHEN games.player1_id = ranked.id THEN games.player1_move_count ELSE games.player2_move_count END
			)::float8 END AS efficiency`).
		Joins("LEFT JOIN games ON games.winner_id = ranked.id AND games.status = ?", entity.StatusCompleted).
		Group("ranked.id, ranked.username, ranked.wins, ranked.losses, ranked.draws").
		Order("ranked.wins DESC").
		Order("efficiency ASC NULLS LAST").
		Order("ranked.id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}

	return entries, nil
}
