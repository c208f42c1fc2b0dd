package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
)

const DefaultTokenTTL = 300 * time.Second

type tokenRepo interface {
	Save(ctx context.Context, token string, claims *repository.TokenClaims, ttl time.Duration) error
	Get(ctx context.Context, token string) (*repository.TokenClaims, error)
	GetAndDelete(ctx context.Context, token string) (*repository.TokenClaims, error)
}

type accountLookup interface {
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
}

type TokenOptions struct {
	TTL time.Duration
	// SingleUse - redeeming deletes the token; otherwise it stays valid until it expires.
	SingleUse bool
}

// TokenService - exchanges an authenticated identity for a short-lived websocket token.
type TokenService struct {
	logger   *slog.Logger
	tokens   tokenRepo
	accounts accountLookup
	opts     TokenOptions
}

func NewTokenService(logger *slog.Logger, tokens tokenRepo, accounts accountLookup, opts TokenOptions) *TokenService {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTokenTTL
	}

	return &TokenService{
		logger:   logger,
		tokens:   tokens,
		accounts: accounts,
		opts:     opts,
	}
}

func (that *TokenService) Issue(ctx context.Context, account *entity.Account) (string, error) {
	token := uuid.NewString()

	claims := &repository.TokenClaims{
		UserID:   account.ID,
		Username: account.Username,
	}

	if err := that.tokens.Save(ctx, token, claims, that.opts.TTL); err != nil {
		return "", fmt.Errorf("failed to save websocket token: %w", err)
	}

	return token, nil
}

func (that *TokenService) Redeem(ctx context.Context, token string) (*entity.Account, error) {
	log := that.logger.With("method", "Redeem")

	if token == "" {
		return nil, apperror.ErrInvalidToken
	}

	var (
		claims *repository.TokenClaims
		err    error
	)

	if that.opts.SingleUse {
		claims, err = that.tokens.GetAndDelete(ctx, token)
	} else {
		claims, err = that.tokens.Get(ctx, token)
	}

	if errors.Is(err, repository.ErrTokenNotFound) {
		log.Warn("no data found for token")
		return nil, apperror.ErrInvalidToken
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read websocket token: %w", err)
	}

	account, err := that.accounts.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrAccountNotFound) || errors.Is(err, apperror.ErrUserNotFound) {
		log.Warn("user not found for token", "userID", claims.UserID)
		return nil, apperror.ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to resolve token owner: %w", err)
	}

	return account, nil
}
