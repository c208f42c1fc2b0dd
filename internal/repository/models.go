package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type accountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"type:varchar(30);not null"`
	LastName     string `gorm:"type:varchar(30);not null"`
	Wins         int    `gorm:"not null;default:0"`
	Losses       int    `gorm:"not null;default:0"`
	Draws        int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (accountModel) TableName() string {
	return "users"
}

func (that *accountModel) toEntity() *entity.Account {
	return &entity.Account{
		ID:           that.ID,
		Username:     that.Username,
		PasswordHash: that.PasswordHash,
		FirstName:    that.FirstName,
		LastName:     that.LastName,
		Wins:         that.Wins,
		Losses:       that.Losses,
		Draws:        that.Draws,
		CreatedAt:    that.CreatedAt,
	}
}

type gameModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	Player1ID        int64   `gorm:"not null;index"`
	Player2ID        int64   `gorm:"not null;index"`
	FinalState       *string `gorm:"type:jsonb"`
	Status           string  `gorm:"type:varchar(16);not null;check:status IN ('in_progress','completed','cancelled')"`
	IsDraw           bool    `gorm:"not null;default:false"`
	WinnerID         *int64  `gorm:"index"`
	LoserID          *int64
	Player1MoveCount int `gorm:"not null;default:0"`
	Player2MoveCount int `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Player1 *accountModel `gorm:"foreignKey:Player1ID"`
	Player2 *accountModel `gorm:"foreignKey:Player2ID"`
	Winner  *accountModel `gorm:"foreignKey:WinnerID"`
	Loser   *accountModel `gorm:"foreignKey:LoserID"`
}

func (gameModel) TableName() string {
	return "games"
}

// GameRecord - the durable row of a game.
type GameRecord struct {
	ID               int64
	Player1ID        int64
	Player2ID        int64
	FinalState       *string
	Status           string
	IsDraw           bool
	WinnerID         *int64
	LoserID          *int64
	Player1MoveCount int
	Player2MoveCount int
	CreatedAt        time.Time
}

func (that *gameModel) toRecord() *GameRecord {
	return &GameRecord{
		ID:               that.ID,
		Player1ID:        that.Player1ID,
		Player2ID:        that.Player2ID,
		FinalState:       that.FinalState,
		Status:           that.Status,
		IsDraw:           that.IsDraw,
		WinnerID:         that.WinnerID,
		LoserID:          that.LoserID,
		Player1MoveCount: that.Player1MoveCount,
		Player2MoveCount: that.Player2MoveCount,
		CreatedAt:        that.CreatedAt,
	}
}

// Migrate - creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&accountModel{}, &gameModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}
