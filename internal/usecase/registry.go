package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

// Channel - a live, bidirectional connection to one player.
type Channel interface {
	Send(ctx context.Context, message any) error
}

// ConnectionRegistry - maps a player to their live channel. At most one channel per player.
type ConnectionRegistry struct {
	logger      *slog.Logger
	connections cmap.ConcurrentMap[string, Channel]
}

func NewConnectionRegistry(logger *slog.Logger) *ConnectionRegistry {
	return &ConnectionRegistry{
		logger:      logger,
		connections: cmap.New[Channel](),
	}
}

func connectionKey(playerID int64) string {
	return strconv.FormatInt(playerID, 10)
}

// Register - stores the channel and returns the one it replaced, if any. The caller owns closing it.
func (that *ConnectionRegistry) Register(playerID int64, channel Channel) (Channel, bool) {
	log := that.logger.With("method", "Register", "playerID", playerID)

	var previous Channel

	that.connections.Upsert(connectionKey(playerID), channel, func(exist bool, current, next Channel) Channel {
		if exist {
			previous = current
		}

		return next
	})

	if previous == nil {
		return nil, false
	}

	log.Info("replacing existing connection")

	return previous, true
}

func (that *ConnectionRegistry) Unregister(playerID int64) error {
	if _, ok := that.connections.Pop(connectionKey(playerID)); !ok {
		return fmt.Errorf("%w: player %d", apperror.ErrNotConnected, playerID)
	}

	return nil
}

// Release - unregisters the player only while the stored channel is still the given one.
func (that *ConnectionRegistry) Release(playerID int64, channel Channel) error {
	removed := that.connections.RemoveCb(connectionKey(playerID), func(_ string, current Channel, exists bool) bool {
		return exists && current == channel
	})
	if !removed {
		return fmt.Errorf("%w: player %d", apperror.ErrNotConnected, playerID)
	}

	return nil
}

func (that *ConnectionRegistry) Send(ctx context.Context, playerID int64, message any) error {
	channel, ok := that.connections.Get(connectionKey(playerID))
	if !ok {
		return fmt.Errorf("%w: player %d", apperror.ErrNotConnected, playerID)
	}

	if err := channel.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send message to player %d: %w", playerID, err)
	}

	return nil
}

func (that *ConnectionRegistry) IsConnected(playerID int64) bool {
	return that.connections.Has(connectionKey(playerID))
}
