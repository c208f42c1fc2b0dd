package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/service"
)

const tokenTypeBearer = "bearer"

type userService interface {
	Register(ctx context.Context, req service.RegisterRequest) (*entity.Account, error)
	Authenticate(ctx context.Context, username, password string) (*entity.Account, error)
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ID          int64  `json:"id"`
}

type userHandler struct {
	logger *slog.Logger
	users  userService
	auth   authService
}

func newUserHandler(logger *slog.Logger, users userService, auth authService) *userHandler {
	return &userHandler{
		logger: logger,
		users:  users,
		auth:   auth,
	}
}

// Create handles POST /user/create
func (that *userHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Create")

	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	account, err := that.users.Register(r.Context(), req)
	if err != nil {
		log.Warn("failed to register user", "username", req.Username, "error", err)
		writeError(w, err)
		return
	}

	that.respondWithToken(w, log, http.StatusCreated, account)
}

// Login handles POST /user/login
func (that *userHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Login")

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	account, err := that.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		log.Info("login failed", "username", req.Username, "error", err)
		writeError(w, err)
		return
	}

	that.respondWithToken(w, log, http.StatusOK, account)
}

// Me handles GET /user/
func (that *userHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	account, err := that.users.GetByID(r.Context(), claims.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (that *userHandler) respondWithToken(w http.ResponseWriter, log *slog.Logger, status int, account *entity.Account) {
	token, err := that.auth.GenerateToken(account)
	if err != nil {
		log.Error("failed to generate access token", "userID", account.ID, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, status, &accessTokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ID:          account.ID,
	})
}
