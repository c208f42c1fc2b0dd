package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("token not found")

const tokenKeyPrefix = "ws_token:"

// TokenClaims - what an ephemeral websocket token resolves to.
type TokenClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type TokenRepository interface {
	Save(ctx context.Context, token string, claims *TokenClaims, ttl time.Duration) error
	Get(ctx context.Context, token string) (*TokenClaims, error)
	GetAndDelete(ctx context.Context, token string) (*TokenClaims, error)
}

type dbToken struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) TokenRepository {
	return &dbToken{
		client: client,
	}
}

func tokenKey(token string) string {
	return tokenKeyPrefix + token
}

func (that *dbToken) Save(ctx context.Context, token string, claims *TokenClaims, ttl time.Duration) error {
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("failed to marshal token claims: %w", err)
	}

	if err = that.client.Set(ctx, tokenKey(token), claimsJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set token: %w", err)
	}

	return nil
}

func (that *dbToken) Get(ctx context.Context, token string) (*TokenClaims, error) {
	response, err := that.client.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return decodeClaims(response)
}

func (that *dbToken) GetAndDelete(ctx context.Context, token string) (*TokenClaims, error) {
	response, err := that.client.GetDel(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get and delete token: %w", err)
	}

	return decodeClaims(response)
}

func decodeClaims(raw string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token claims: %w", err)
	}

	return &claims, nil
}
