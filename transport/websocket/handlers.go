package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrUnknownMessage   = errors.New("unknown message type")
)

var moveFields = []string{"game_id", "row", "col"}

func (that *Server) handleMove(ctx context.Context, player *entity.Account, conn *connection, data []byte) error {
	log := that.logger.With("method", "handleMove", "playerID", player.ID)

	for i, field := range gjson.GetManyBytes(data, moveFields...) {
		if field.Type != gjson.Number {
			that.sendError(ctx, log, conn, 0, fmt.Errorf("%w: %s must be a number", ErrMalformedMessage, moveFields[i]))
			return nil
		}
	}

	var move entity.MoveRequest
	if err := json.Unmarshal(data, &move); err != nil {
		that.sendError(ctx, log, conn, 0, ErrMalformedMessage)
		return fmt.Errorf("failed to unmarshal move: %w", err)
	}

	result := that.games.ApplyMove(ctx, move.GameID, player.ID, move.Row, move.Col)
	if result.Accepted {
		return nil
	}

	// nobody hears about moves for games that don't exist
	if errors.Is(result.Reason, apperror.ErrGameNotFound) {
		log.Info("move for unknown game dropped", "gameID", move.GameID)
		return nil
	}

	that.sendError(ctx, log, conn, move.GameID, result.Reason)

	return nil
}
