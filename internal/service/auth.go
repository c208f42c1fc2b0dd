package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

var ErrInvalidAccessToken = errors.New("invalid access token")

type AuthService interface {
	GenerateToken(account *entity.Account) (string, error)
	ParseToken(tokenString string) (*AccessClaims, error)
}

// AccessClaims - identity carried by a bearer token.
type AccessClaims struct {
	ID       int64
	Username string
}

type authServiceImpl struct {
	secretKey string
	ttl       time.Duration
}

func NewAuthService(secretKey string, ttl time.Duration) AuthService {
	return &authServiceImpl{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

func (that *authServiceImpl) GenerateToken(account *entity.Account) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = account.ID
	claims["username"] = account.Username
	claims["exp"] = time.Now().Add(that.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(that.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (that *authServiceImpl) ParseToken(tokenString string) (*AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidAccessToken, token.Header["alg"])
		}

		return []byte(that.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidAccessToken
	}

	// numbers decode as float64
	id, ok := claims["id"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidAccessToken)
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return nil, fmt.Errorf("%w: missing username", ErrInvalidAccessToken)
	}

	return &AccessClaims{ID: int64(id), Username: username}, nil
}
