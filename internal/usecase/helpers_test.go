package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-matchmaker/mocks/usecase"
)

const (
	alice int64 = 1
	bob   int64 = 2
	carol int64 = 3

	testGameID int64 = 42
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingChannel - a Channel that keeps everything sent to it.
type recordingChannel struct {
	mu       sync.Mutex
	messages []any
	err      error
}

func (that *recordingChannel) Send(_ context.Context, message any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.err != nil {
		return that.err
	}

	that.messages = append(that.messages, message)

	return nil
}

func (that *recordingChannel) Messages() []any {
	that.mu.Lock()
	defer that.mu.Unlock()

	messages := make([]any, len(that.messages))
	copy(messages, that.messages)

	return messages
}

func (that *recordingChannel) Last() any {
	messages := that.Messages()
	if len(messages) == 0 {
		return nil
	}

	return messages[len(messages)-1]
}

type fixture struct {
	manager     *GameManager
	gameRepo    *mockedUseCase.MockgameRepo
	accountRepo *mockedUseCase.MockaccountRepo
	registry    *ConnectionRegistry
	channels    map[int64]*recordingChannel
}

// newFixture - a manager whose players are all connected and known to the account store.
func newFixture(t *testing.T, players ...int64) *fixture {
	t.Helper()

	logger := newTestLogger()

	f := &fixture{
		gameRepo:    mockedUseCase.NewMockgameRepo(t),
		accountRepo: mockedUseCase.NewMockaccountRepo(t),
		registry:    NewConnectionRegistry(logger),
		channels:    make(map[int64]*recordingChannel),
	}

	for _, id := range players {
		channel := &recordingChannel{}
		f.registry.Register(id, channel)
		f.channels[id] = channel

		f.accountRepo.EXPECT().
			GetByID(mock.Anything, id).
			Return(&entity.Account{ID: id, Username: username(id)}, nil).
			Maybe()
	}

	f.manager = NewGameManager(logger, f.gameRepo, f.accountRepo, f.registry, Options{
		PersistAttempts: 3,
		PersistBackoff:  time.Millisecond,
	})

	return f
}

func username(id int64) string {
	return fmt.Sprintf("player%d", id)
}

// startGame - pairs first and second through the queue.
func (that *fixture) startGame(t *testing.T, first, second int64) *entity.Game {
	t.Helper()

	that.gameRepo.EXPECT().
		Create(mock.Anything, first, second).
		Return(&repository.GameRecord{ID: testGameID, Player1ID: first, Player2ID: second, Status: entity.StatusInProgress}, nil).
		Once()

	game, err := that.manager.Join(context.Background(), first)
	require.NoError(t, err)
	require.Nil(t, game)

	game, err = that.manager.Join(context.Background(), second)
	require.NoError(t, err)
	require.NotNil(t, game)

	return game
}

func (that *fixture) play(t *testing.T, moves ...move) {
	t.Helper()

	for _, m := range moves {
		result := that.manager.ApplyMove(context.Background(), testGameID, m.player, m.row, m.col)
		require.True(t, result.Accepted, "move %+v rejected: %v", m, result.Reason)
	}
}

func (that *fixture) messageCount() int {
	count := 0
	for _, channel := range that.channels {
		count += len(channel.Messages())
	}

	return count
}

type move struct {
	player   int64
	row, col int
}

// eagerChannel - moves as soon as GAME_START arrives, from its own goroutine like a real client.
type eagerChannel struct {
	recordingChannel
	onStart func()
}

func (that *eagerChannel) Send(ctx context.Context, message any) error {
	if err := that.recordingChannel.Send(ctx, message); err != nil {
		return err
	}

	if _, ok := message.(*entity.GameStartMessage); ok && that.onStart != nil {
		go that.onStart()
	}

	return nil
}

// slowChannel - a recordingChannel with a write delay.
type slowChannel struct {
	recordingChannel
	delay time.Duration
}

func (that *slowChannel) Send(ctx context.Context, message any) error {
	time.Sleep(that.delay)

	return that.recordingChannel.Send(ctx, message)
}
