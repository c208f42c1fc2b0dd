package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
)

type tokenRedeemer interface {
	Redeem(ctx context.Context, token string) (*entity.Account, error)
}

type registry interface {
	Register(playerID int64, channel usecase.Channel) (usecase.Channel, bool)
	Release(playerID int64, channel usecase.Channel) error
}

type matchmaker interface {
	Join(ctx context.Context, playerID int64) (*entity.Game, error)
	Leave(playerID int64) bool
	ApplyMove(ctx context.Context, gameID, playerID int64, row, col int) usecase.MoveResult
}

type handlerFunc func(ctx context.Context, player *entity.Account, conn *connection, data []byte) error

type Server struct {
	logger   *slog.Logger
	tokens   tokenRedeemer
	registry registry
	games    matchmaker

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	pongWait       time.Duration
	maxMessageSize int64
}

func New(logger *slog.Logger, tokens tokenRedeemer, registry registry, games matchmaker) *Server {
	server := &Server{
		logger:   logger,
		tokens:   tokens,
		registry: registry,
		games:    games,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),

		pongWait:       defaultPongWait,
		maxMessageSize: defaultMaxMessageSize,
	}

	server.handlers[entity.MessageGameMove] = server.handleMove

	return server
}

// ServeHTTP - upgrades the request, authenticates it with the ?token= query and serves the player until disconnect.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	token := req.URL.Query().Get("token")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(ws)
	defer ws.Close()

	ctx := req.Context()

	player, ok := that.authenticate(ctx, log, conn, token)
	if !ok {
		return
	}

	log = log.With("playerID", player.ID)

	if err = conn.expectPongs(that.maxMessageSize, that.pongWait); err != nil {
		log.Error("failed to configure connection", "error", err)
		return
	}

	done := make(chan struct{})
	defer close(done)

	go conn.keepAlive(done, that.pongWait*9/10)

	if previous, replaced := that.registry.Register(player.ID, conn); replaced {
		that.closeReplaced(log, previous)
	}

	log.Info("player connected")

	defer that.disconnect(log, player, conn)

	if _, err = that.games.Join(ctx, player.ID); err != nil {
		log.Warn("failed to join matchmaking", "error", err)
		that.sendError(ctx, log, conn, 0, err)
	}

	if err = that.handleMessages(ctx, player, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

func (that *Server) authenticate(ctx context.Context, log *slog.Logger, conn *connection, token string) (*entity.Account, bool) {
	if token == "" {
		that.reject(log, conn, CloseMissingToken, "Missing token")
		return nil, false
	}

	player, err := that.tokens.Redeem(ctx, token)
	switch {
	case err == nil:
		return player, true
	case errors.Is(err, apperror.ErrInvalidToken):
		that.reject(log, conn, CloseInvalidToken, "Invalid token")
	case errors.Is(err, apperror.ErrUserNotFound):
		that.reject(log, conn, CloseUserNotFound, "User not found")
	default:
		log.Error("failed to redeem token", "error", err)
		that.reject(log, conn, websocket.CloseInternalServerErr, "Internal error")
	}

	return nil, false
}

func (that *Server) reject(log *slog.Logger, conn *connection, code int, reason string) {
	log.Warn("handshake rejected", "code", code, "reason", reason)

	if err := conn.close(code, reason); err != nil {
		log.Error("failed to close connection", "error", err)
	}
}

// closeReplaced - ends the older socket of a player who connected again, so only one connection acts for them.
func (that *Server) closeReplaced(log *slog.Logger, previous usecase.Channel) {
	old, ok := previous.(*connection)
	if !ok {
		return
	}

	if err := old.close(CloseReplaced, "Replaced"); err != nil {
		log.Warn("failed to close replaced connection", "error", err)
		return
	}

	log.Info("replaced connection closed")
}

// disconnect - forgets the connection unless a newer one already replaced it.
func (that *Server) disconnect(log *slog.Logger, player *entity.Account, conn *connection) {
	if err := that.registry.Release(player.ID, conn); err != nil {
		log.Info("connection was already replaced", "error", err)
		return
	}

	if that.games.Leave(player.ID) {
		log.Info("player left the queue")
	}

	log.Info("player disconnected")
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, player *entity.Account, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "playerID", player.ID)

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return fmt.Errorf("failed to read message: %w", err)
			}

			return nil
		}

		if !gjson.ValidBytes(data) {
			log.Warn("malformed message")
			that.sendError(ctx, log, conn, 0, ErrMalformedMessage)
			continue
		}

		msgType := gjson.GetBytes(data, "type").String()

		handler, ok := that.handlers[msgType]
		if !ok {
			log.Warn("unknown message type", "type", msgType)
			that.sendError(ctx, log, conn, 0, fmt.Errorf("%w: %q", ErrUnknownMessage, msgType))
			continue
		}

		if err = handler(ctx, player, conn, data); err != nil {
			log.Error("error processing message", "type", msgType, "error", err)
		}
	}
}

func (that *Server) sendError(ctx context.Context, log *slog.Logger, conn *connection, gameID int64, reason error) {
	message := &entity.ErrorMessage{
		Type:   entity.MessageError,
		GameID: gameID,
		Reason: reason.Error(),
	}

	if err := conn.Send(ctx, message); err != nil {
		log.Error("failed to send error message", "error", err)
	}
}
