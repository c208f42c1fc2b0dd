package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

func TestConnectionRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Send delivers to the registered channel", func(t *testing.T) {
		// Given: alice is registered
		registry := NewConnectionRegistry(newTestLogger())
		channel := &recordingChannel{}
		registry.Register(alice, channel)

		// When: a message is sent to her
		err := registry.Send(ctx, alice, "hello")

		// Then: her channel receives it
		require.NoError(t, err)
		assert.Equal(t, []any{"hello"}, channel.Messages())
		assert.True(t, registry.IsConnected(alice))
	})

	t.Run("Unknown player is not connected", func(t *testing.T) {
		registry := NewConnectionRegistry(newTestLogger())

		require.ErrorIs(t, registry.Send(ctx, bob, "hello"), apperror.ErrNotConnected)
		require.ErrorIs(t, registry.Unregister(bob), apperror.ErrNotConnected)
		assert.False(t, registry.IsConnected(bob))
	})

	t.Run("New registration replaces the old channel", func(t *testing.T) {
		// Given: alice is registered twice
		registry := NewConnectionRegistry(newTestLogger())
		first, second := &recordingChannel{}, &recordingChannel{}
		_, replaced := registry.Register(alice, first)
		require.False(t, replaced)

		previous, replaced := registry.Register(alice, second)
		require.True(t, replaced)
		assert.Same(t, first, previous)

		// When: a message is sent
		require.NoError(t, registry.Send(ctx, alice, "hello"))

		// Then: only the newest channel receives it
		assert.Empty(t, first.Messages())
		assert.Equal(t, []any{"hello"}, second.Messages())
	})

	t.Run("Stale channel can't release its replacement", func(t *testing.T) {
		// Given: alice reconnected
		registry := NewConnectionRegistry(newTestLogger())
		first, second := &recordingChannel{}, &recordingChannel{}
		registry.Register(alice, first)
		registry.Register(alice, second)

		// When: the first channel goes away
		err := registry.Release(alice, first)

		// Then: the second stays registered
		require.ErrorIs(t, err, apperror.ErrNotConnected)
		assert.True(t, registry.IsConnected(alice))

		require.NoError(t, registry.Release(alice, second))
		assert.False(t, registry.IsConnected(alice))
	})

	t.Run("Unregister removes the player", func(t *testing.T) {
		registry := NewConnectionRegistry(newTestLogger())
		registry.Register(alice, &recordingChannel{})

		require.NoError(t, registry.Unregister(alice))
		assert.False(t, registry.IsConnected(alice))
	})
}
