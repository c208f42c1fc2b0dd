package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*entity.Account, error)
	Authenticate(ctx context.Context, username, password string) (*entity.Account, error)
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type accountRepo interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	Leaderboard(ctx context.Context, minGames, limit int) ([]*entity.LeaderboardEntry, error)
}

type LeaderboardOptions struct {
	MinGames int
	Limit    int
}

type userService struct {
	logger      *slog.Logger
	accountRepo accountRepo
	leaderboard LeaderboardOptions
}

func NewUserService(logger *slog.Logger, accountRepo accountRepo, leaderboard LeaderboardOptions) UserService {
	return &userService{
		logger:      logger,
		accountRepo: accountRepo,
		leaderboard: leaderboard,
	}
}

func (that *userService) Register(ctx context.Context, req RegisterRequest) (*entity.Account, error) {
	log := that.logger.With("method", "Register", "username", req.Username)

	if req.Username == "" || req.Password == "" {
		return nil, apperror.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entity.Account{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	err = that.accountRepo.Create(ctx, account)
	if errors.Is(err, repository.ErrUsernameTaken) {
		return nil, apperror.ErrUserAlreadyExists
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("account registered", "userID", account.ID)

	return account, nil
}

func (that *userService) Authenticate(ctx context.Context, username, password string) (*entity.Account, error) {
	account, err := that.accountRepo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return account, nil
}

func (that *userService) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := that.accountRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, apperror.ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (that *userService) Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	entries, err := that.accountRepo.Leaderboard(ctx, that.leaderboard.MinGames, that.leaderboard.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}
