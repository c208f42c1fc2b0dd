package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type tokenIssuer interface {
	Issue(ctx context.Context, account *entity.Account) (string, error)
}

type websocketTokenResponse struct {
	WebsocketToken string `json:"websocket_token"`
}

type gameHandler struct {
	logger *slog.Logger
	users  userService
	tokens tokenIssuer
}

func newGameHandler(logger *slog.Logger, users userService, tokens tokenIssuer) *gameHandler {
	return &gameHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// WebsocketToken handles POST /game/websocket-token
func (that *gameHandler) WebsocketToken(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "WebsocketToken")
	claims := claimsFromContext(r.Context())

	account, err := that.users.GetByID(r.Context(), claims.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := that.tokens.Issue(r.Context(), account)
	if err != nil {
		log.Error("failed to issue websocket token", "userID", account.ID, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &websocketTokenResponse{WebsocketToken: token})
}

// Leaderboard handles GET /game/leaderboard
func (that *gameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.users.Leaderboard(r.Context())
	if err != nil {
		that.logger.Error("failed to get leaderboard", "error", err)
		writeError(w, err)
		return
	}

	if entries == nil {
		entries = []*entity.LeaderboardEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
