package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
)

var (
	errDatabaseDown = errors.New("database down")
	errBrokenPipe   = errors.New("broken pipe")
)

func TestGameManager_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("Second player starts a game where the first one moves first", func(t *testing.T) {
		// Given: alice and bob are connected
		f := newFixture(t, alice, bob)
		f.gameRepo.EXPECT().
			Create(mock.Anything, alice, bob).
			Return(&repository.GameRecord{ID: testGameID}, nil).
			Once()

		// When: alice joins, then bob joins
		game, err := f.manager.Join(ctx, alice)
		require.NoError(t, err)
		assert.Nil(t, game)
		assert.Equal(t, []int64{alice}, f.manager.Waiting())

		game, err = f.manager.Join(ctx, bob)

		// Then: a game starts with alice's turn and both players get the same GAME_START
		require.NoError(t, err)
		require.NotNil(t, game)
		assert.Equal(t, testGameID, game.ID)
		assert.Equal(t, alice, game.Player1)
		assert.Equal(t, bob, game.Player2)
		assert.Equal(t, alice, game.Turn)
		assert.Empty(t, f.manager.Waiting())

		expected := &entity.GameStartMessage{
			Type:    entity.MessageGameStart,
			GameID:  testGameID,
			Player1: entity.PlayerInfo{ID: alice, Username: username(alice)},
			Player2: entity.PlayerInfo{ID: bob, Username: username(bob)},
			Turn:    alice,
		}
		assert.Equal(t, []any{expected}, f.channels[alice].Messages())
		assert.Equal(t, []any{expected}, f.channels[bob].Messages())
	})

	t.Run("Queued player can't join twice", func(t *testing.T) {
		// Given: alice is waiting
		f := newFixture(t, alice)
		_, err := f.manager.Join(ctx, alice)
		require.NoError(t, err)

		// When: alice joins again
		game, err := f.manager.Join(ctx, alice)

		// Then: she is rejected and never paired with herself
		require.ErrorIs(t, err, apperror.ErrAlreadyQueued)
		assert.Nil(t, game)
		assert.Equal(t, []int64{alice}, f.manager.Waiting())
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Seated player can't join", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		// When: alice joins again
		_, err := f.manager.Join(ctx, alice)

		// Then: she is rejected
		require.ErrorIs(t, err, apperror.ErrAlreadyInGame)
		assert.Empty(t, f.manager.Waiting())
	})

	t.Run("Waiting player goes back to the head of the queue when the game can't be created", func(t *testing.T) {
		// Given: alice is waiting and the game store is down
		f := newFixture(t, alice, bob)
		f.gameRepo.EXPECT().
			Create(mock.Anything, alice, bob).
			Return(nil, errDatabaseDown).
			Once()

		_, err := f.manager.Join(ctx, alice)
		require.NoError(t, err)

		// When: bob joins
		game, err := f.manager.Join(ctx, bob)

		// Then: the error surfaces, alice waits again and bob is free to retry
		require.ErrorIs(t, err, errDatabaseDown)
		assert.Nil(t, game)
		assert.Equal(t, []int64{alice}, f.manager.Waiting())
		assert.Zero(t, f.manager.ActiveGames())
		assert.Empty(t, f.channels[alice].Messages())
	})

	t.Run("Disconnected waiting player is dropped when the game can't be created", func(t *testing.T) {
		// Given: alice is waiting but her connection is gone and the game store is down
		f := newFixture(t, alice, bob)
		f.gameRepo.EXPECT().
			Create(mock.Anything, alice, bob).
			Return(nil, errDatabaseDown).
			Once()

		_, err := f.manager.Join(ctx, alice)
		require.NoError(t, err)
		require.NoError(t, f.registry.Unregister(alice))

		// When: bob joins
		_, err = f.manager.Join(ctx, bob)

		// Then: nobody is waiting
		require.Error(t, err)
		assert.Empty(t, f.manager.Waiting())
	})
}

func TestGameManager_Leave(t *testing.T) {
	ctx := context.Background()

	// Given: alice is waiting
	f := newFixture(t, alice, bob)
	_, err := f.manager.Join(ctx, alice)
	require.NoError(t, err)

	// When: alice leaves
	left := f.manager.Leave(alice)

	// Then: bob waits instead of being paired with her
	assert.True(t, left)
	assert.False(t, f.manager.Leave(alice))

	game, err := f.manager.Join(ctx, bob)
	require.NoError(t, err)
	assert.Nil(t, game)
	assert.Equal(t, []int64{bob}, f.manager.Waiting())
}

func TestGameManager_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Same player on both sides is rejected", func(t *testing.T) {
		// Given: alice is connected
		f := newFixture(t, alice)

		// When: a game is started against herself
		game, err := f.manager.Start(ctx, alice, alice)

		// Then: nothing is created
		require.ErrorIs(t, err, apperror.ErrSelfMatch)
		assert.Nil(t, game)
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Unknown account aborts the start", func(t *testing.T) {
		// Given: carol has no account
		f := newFixture(t, alice)
		f.accountRepo.EXPECT().
			GetByID(mock.Anything, carol).
			Return(nil, repository.ErrAccountNotFound).
			Once()

		// When: a game is started
		_, err := f.manager.Start(ctx, alice, carol)

		// Then: the error surfaces and no row is created
		require.ErrorIs(t, err, repository.ErrAccountNotFound)
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Disconnected player doesn't stop the other one from being notified", func(t *testing.T) {
		// Given: bob is known but not connected
		f := newFixture(t, alice, bob)
		require.NoError(t, f.registry.Unregister(bob))

		f.gameRepo.EXPECT().
			Create(mock.Anything, alice, bob).
			Return(&repository.GameRecord{ID: testGameID}, nil).
			Once()

		// When: the game starts
		game, err := f.manager.Start(ctx, alice, bob)

		// Then: alice still receives GAME_START
		require.NoError(t, err)
		assert.Equal(t, alice, game.Turn)
		require.Len(t, f.channels[alice].Messages(), 1)
		assert.IsType(t, &entity.GameStartMessage{}, f.channels[alice].Last())
	})
}

func TestGameManager_Start_FirstMoveWaitsForAnnouncement(t *testing.T) {
	for i := 0; i < 10; i++ {
		// Given: alice moves the moment she hears GAME_START and bob's channel is slow
		f := newFixture(t, alice, bob)

		moved := make(chan MoveResult, 1)
		eager := &eagerChannel{onStart: func() {
			moved <- f.manager.ApplyMove(context.Background(), testGameID, alice, 0, 0)
		}}
		slow := &slowChannel{delay: 5 * time.Millisecond}
		f.registry.Register(alice, eager)
		f.registry.Register(bob, slow)

		// When: the game starts
		game := f.startGame(t, alice, bob)

		var result MoveResult
		select {
		case result = <-moved:
		case <-time.After(2 * time.Second):
			t.Fatal("alice's move never completed")
		}

		// Then: the returned game predates the move and bob hears GAME_START before GAME_MOVE
		require.True(t, result.Accepted, "move rejected: %v", result.Reason)
		assert.Equal(t, entity.EmptyCell, game.Board[0][0])
		assert.Equal(t, alice, game.Turn)

		messages := slow.Messages()
		require.Len(t, messages, 2)
		assert.IsType(t, &entity.GameStartMessage{}, messages[0])
		assert.IsType(t, &entity.GameMoveMessage{}, messages[1])
	}
}

func TestGameManager_ApplyMove(t *testing.T) {
	ctx := context.Background()

	t.Run("First move updates the board and flips the turn", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		// When: alice plays the top left corner
		result := f.manager.ApplyMove(ctx, testGameID, alice, 0, 0)

		// Then: the move is applied and announced, and the game goes on
		require.True(t, result.Accepted)
		assert.Equal(t, entity.OutcomeContinue, result.Outcome)

		game, ok := f.manager.Game(testGameID)
		require.True(t, ok)
		assert.Equal(t, alice, game.Board[0][0])
		assert.Equal(t, bob, game.Turn)
		assert.Equal(t, 1, game.Player1Moves)
		assert.Zero(t, game.Player2Moves)

		expected := &entity.GameMoveMessage{
			Type:     entity.MessageGameMove,
			GameID:   testGameID,
			PlayerID: alice,
			Turn:     bob,
			Row:      0,
			Col:      0,
		}
		for _, id := range []int64{alice, bob} {
			messages := f.channels[id].Messages()
			require.Len(t, messages, 2)
			assert.Equal(t, expected, messages[1])
		}
	})

	t.Run("Completed row wins the game", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		f.gameRepo.EXPECT().
			SaveResult(mock.Anything, mock.MatchedBy(func(result *entity.GameResult) bool {
				return result.GameID == testGameID &&
					result.WinnerID != nil && *result.WinnerID == alice &&
					result.LoserID != nil && *result.LoserID == bob &&
					!result.IsDraw &&
					result.Player1Moves == 3 && result.Player2Moves == 2
			})).
			Run(func(_ context.Context, _ *entity.GameResult) {
				// the result is announced before it is stored
				assert.IsType(t, &entity.GameEndMessage{}, f.channels[alice].Last())
				assert.IsType(t, &entity.GameEndMessage{}, f.channels[bob].Last())
			}).
			Return(nil).
			Once()

		// When: alice completes the top row
		f.play(t, move{alice, 0, 0}, move{bob, 1, 0}, move{alice, 0, 1}, move{bob, 1, 1})
		result := f.manager.ApplyMove(ctx, testGameID, alice, 0, 2)

		// Then: both players learn alice won and the game is forgotten
		require.True(t, result.Accepted)
		assert.Equal(t, entity.OutcomeWin, result.Outcome)

		winner := alice
		expected := &entity.GameEndMessage{Type: entity.MessageGameEnd, GameID: testGameID, WinnerID: &winner}
		assert.Equal(t, expected, f.channels[alice].Last())
		assert.Equal(t, expected, f.channels[bob].Last())

		_, ok := f.manager.Game(testGameID)
		assert.False(t, ok)
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		f.gameRepo.EXPECT().
			SaveResult(mock.Anything, mock.MatchedBy(func(result *entity.GameResult) bool {
				return result.IsDraw && result.WinnerID == nil && result.LoserID == nil &&
					result.Player1Moves == 5 && result.Player2Moves == 4
			})).
			Return(nil).
			Once()

		// When: the board fills up as
		//   A B A
		//   A B B
		//   B A A
		f.play(t,
			move{alice, 0, 0}, move{bob, 0, 1}, move{alice, 0, 2},
			move{bob, 1, 1}, move{alice, 1, 0}, move{bob, 1, 2},
			move{alice, 2, 1}, move{bob, 2, 0},
		)
		result := f.manager.ApplyMove(ctx, testGameID, alice, 2, 2)

		// Then: both players get GAME_END without a winner
		require.True(t, result.Accepted)
		assert.Equal(t, entity.OutcomeDraw, result.Outcome)

		expected := &entity.GameEndMessage{Type: entity.MessageGameEnd, GameID: testGameID}
		assert.Equal(t, expected, f.channels[alice].Last())
		assert.Equal(t, expected, f.channels[bob].Last())
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Move for an unknown game changes nothing and sends nothing", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		before := f.messageCount()

		// When: alice moves in a game that doesn't exist
		result := f.manager.ApplyMove(ctx, testGameID+1, alice, 0, 0)

		// Then: the move is rejected silently
		require.False(t, result.Accepted)
		require.ErrorIs(t, result.Reason, apperror.ErrGameNotFound)
		assert.Equal(t, before, f.messageCount())

		game, ok := f.manager.Game(testGameID)
		require.True(t, ok)
		assert.Equal(t, entity.EmptyCell, game.Board[0][0])
	})

	rejections := []struct {
		name   string
		setup  []move
		move   move
		reason error
	}{
		{name: "Out of turn", move: move{bob, 0, 0}, reason: apperror.ErrNotYourTurn},
		{name: "Occupied cell", setup: []move{{alice, 1, 1}}, move: move{bob, 1, 1}, reason: apperror.ErrCellOccupied},
		{name: "Out of range", move: move{alice, 3, 0}, reason: apperror.ErrCellOutOfRange},
		{name: "Negative coordinate", move: move{alice, 0, -1}, reason: apperror.ErrCellOutOfRange},
		{name: "Stranger", move: move{carol, 0, 0}, reason: apperror.ErrNotParticipant},
	}

	for _, tc := range rejections {
		t.Run(tc.name+" is rejected without side effects", func(t *testing.T) {
			// Given: a game in some state
			f := newFixture(t, alice, bob)
			f.startGame(t, alice, bob)
			f.play(t, tc.setup...)

			before, ok := f.manager.Game(testGameID)
			require.True(t, ok)
			sent := f.messageCount()

			// When: the invalid move is applied
			result := f.manager.ApplyMove(ctx, testGameID, tc.move.player, tc.move.row, tc.move.col)

			// Then: it is rejected with the reason and nothing changes
			require.False(t, result.Accepted)
			require.ErrorIs(t, result.Reason, tc.reason)

			after, ok := f.manager.Game(testGameID)
			require.True(t, ok)
			assert.Equal(t, before.Board, after.Board)
			assert.Equal(t, before.Turn, after.Turn)
			assert.Equal(t, before.Player1Moves, after.Player1Moves)
			assert.Equal(t, before.Player2Moves, after.Player2Moves)
			assert.Equal(t, sent, f.messageCount())
		})
	}

	t.Run("Broadcast turn names the next mover", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		moves := []move{{alice, 0, 0}, {bob, 1, 1}, {alice, 2, 2}, {bob, 0, 2}}

		for i, m := range moves {
			// When: each move is applied
			f.play(t, m)

			// Then: the announced turn is the other player
			announced, ok := f.channels[alice].Last().(*entity.GameMoveMessage)
			require.True(t, ok)
			assert.Equal(t, m.player, announced.PlayerID)
			if i+1 < len(moves) {
				assert.Equal(t, moves[i+1].player, announced.Turn)
			}
		}
	})

	t.Run("Failed delivery to one player still reaches the other", func(t *testing.T) {
		// Given: bob's socket is broken
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		f.channels[bob].err = errBrokenPipe

		// When: alice moves
		result := f.manager.ApplyMove(ctx, testGameID, alice, 0, 0)

		// Then: the move stands and alice sees it
		require.True(t, result.Accepted)
		assert.IsType(t, &entity.GameMoveMessage{}, f.channels[alice].Last())

		game, ok := f.manager.Game(testGameID)
		require.True(t, ok)
		assert.Equal(t, bob, game.Turn)
	})

	t.Run("Concurrent moves on the same cell are applied once", func(t *testing.T) {
		// Given: alice and bob are playing
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		// When: alice sends the same move from many goroutines
		const attempts = 20

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if f.manager.ApplyMove(ctx, testGameID, alice, 1, 1).Accepted {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}()
		}

		wg.Wait()

		// Then: exactly one is accepted
		assert.Equal(t, 1, accepted)

		game, ok := f.manager.Game(testGameID)
		require.True(t, ok)
		assert.Equal(t, 1, game.Player1Moves)
	})
}

func TestGameManager_Persistence(t *testing.T) {
	ctx := context.Background()
	winningMoves := []move{{alice, 0, 0}, {bob, 1, 0}, {alice, 0, 1}, {bob, 1, 1}, {alice, 0, 2}}

	t.Run("Transient failures are retried", func(t *testing.T) {
		// Given: the store fails twice before succeeding
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		f.gameRepo.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(errDatabaseDown).Twice()
		f.gameRepo.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(nil).Once()

		// When: alice wins
		f.play(t, winningMoves...)

		// Then: the result was stored on the third attempt and the game is gone
		f.gameRepo.AssertNumberOfCalls(t, "SaveResult", 3)
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Game is forgotten even when storing keeps failing", func(t *testing.T) {
		// Given: the store is down
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		f.gameRepo.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(errDatabaseDown).Times(3)

		// When: alice wins
		f.play(t, winningMoves...)

		// Then: all attempts are spent and the finished game accepts no more moves
		f.gameRepo.AssertNumberOfCalls(t, "SaveResult", 3)
		assert.Zero(t, f.manager.ActiveGames())

		result := f.manager.ApplyMove(ctx, testGameID, bob, 2, 2)
		require.ErrorIs(t, result.Reason, apperror.ErrGameNotFound)
	})

	t.Run("Permanent failures are not retried", func(t *testing.T) {
		// Given: the row was already finalized
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)

		f.gameRepo.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(repository.ErrGameNotInFlight).Once()

		// When: alice wins
		f.play(t, winningMoves...)

		// Then: a single attempt is made
		f.gameRepo.AssertNumberOfCalls(t, "SaveResult", 1)
		assert.Zero(t, f.manager.ActiveGames())
	})

	t.Run("Players can queue again after the game", func(t *testing.T) {
		// Given: a finished game
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		f.gameRepo.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(nil).Once()
		f.play(t, winningMoves...)

		// When: alice joins again
		game, err := f.manager.Join(ctx, alice)

		// Then: she waits for a new opponent
		require.NoError(t, err)
		assert.Nil(t, game)
		assert.Equal(t, []int64{alice}, f.manager.Waiting())
	})
}

func TestGameManager_SweepIdle(t *testing.T) {
	ctx := context.Background()

	t.Run("Abandoned game is cancelled", func(t *testing.T) {
		// Given: both players left a game
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		require.NoError(t, f.registry.Unregister(alice))
		require.NoError(t, f.registry.Unregister(bob))

		f.gameRepo.EXPECT().Cancel(mock.Anything, testGameID).Return(nil).Once()

		// When: the sweep runs
		swept := f.manager.SweepIdle(ctx, 0)

		// Then: the game is cancelled and both players are free
		assert.Equal(t, 1, swept)
		assert.Zero(t, f.manager.ActiveGames())

		_, err := f.manager.Join(ctx, alice)
		require.NoError(t, err)
	})

	t.Run("Game with a connected player is kept", func(t *testing.T) {
		// Given: only alice left
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		require.NoError(t, f.registry.Unregister(alice))

		// When: the sweep runs
		swept := f.manager.SweepIdle(ctx, 0)

		// Then: nothing is cancelled
		assert.Zero(t, swept)
		assert.Equal(t, 1, f.manager.ActiveGames())
	})

	t.Run("Recent game is kept", func(t *testing.T) {
		// Given: both players left a game that just started
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		require.NoError(t, f.registry.Unregister(alice))
		require.NoError(t, f.registry.Unregister(bob))

		// When: the sweep runs with a long idle window
		swept := f.manager.SweepIdle(ctx, time.Hour)

		// Then: nothing is cancelled
		assert.Zero(t, swept)
		assert.Equal(t, 1, f.manager.ActiveGames())
	})

	t.Run("Game is dropped even if the row can't be cancelled", func(t *testing.T) {
		// Given: both players left and the store is down
		f := newFixture(t, alice, bob)
		f.startGame(t, alice, bob)
		require.NoError(t, f.registry.Unregister(alice))
		require.NoError(t, f.registry.Unregister(bob))

		f.gameRepo.EXPECT().Cancel(mock.Anything, testGameID).Return(errDatabaseDown).Once()

		// When: the sweep runs
		swept := f.manager.SweepIdle(ctx, 0)

		// Then: the game is gone from memory
		assert.Equal(t, 1, swept)
		assert.Zero(t, f.manager.ActiveGames())
	})
}
