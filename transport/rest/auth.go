package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "claims"

type authService interface {
	GenerateToken(account *entity.Account) (string, error)
	ParseToken(tokenString string) (*service.AccessClaims, error)
}

// Auth - rejects requests without a valid bearer token and stores its claims in the request context.
func Auth(auth authService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, service.ErrInvalidAccessToken)
				return
			}

			claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, service.ErrInvalidAccessToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimsFromContext(ctx context.Context) *service.AccessClaims {
	claims, ok := ctx.Value(claimsContextKey).(*service.AccessClaims)
	if !ok {
		panic("no claims in context, auth middleware not applied")
	}

	return claims
}
