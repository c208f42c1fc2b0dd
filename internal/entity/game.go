package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

	BoardSize = 3

	// EmptyCell - identities are positive, so zero marks a free cell.
	EmptyCell int64 = 0
)

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "continue"
	}
}

// Position - a cell address on the board.
type Position struct {
	Row int
	Col int
}

// WinLines - 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [BoardSize][BoardSize]int64

func (that *Board) InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Snapshot - serializes the board as a 3x3 array of identity-or-null.
func (that *Board) Snapshot() (string, error) {
	rows := make([][]*int64, BoardSize)
	for i := range that {
		rows[i] = make([]*int64, BoardSize)
		for j := range that[i] {
			if that[i][j] == EmptyCell {
				continue
			}
			cell := that[i][j]
			rows[i][j] = &cell
		}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal board: %w", err)
	}

	return string(data), nil
}

// DetectOutcome - evaluates the board for the candidate who just moved.
func DetectOutcome(board Board, candidate int64) Outcome {
	if candidate != EmptyCell {
		for _, line := range WinLines {
			if board[line[0].Row][line[0].Col] == candidate &&
				board[line[1].Row][line[1].Col] == candidate &&
				board[line[2].Row][line[2].Col] == candidate {
				return OutcomeWin
			}
		}
	}

	if board.IsFull() {
		return OutcomeDraw
	}

	return OutcomeContinue
}

// Game - in-memory state of one session between two players.
type Game struct {
	ID      int64
	Player1 int64
	Player2 int64
	Board   Board
	Turn    int64
	Status  string

	Player1Moves int
	Player2Moves int

	LastMoveAt time.Time
}

func NewGame(id, player1, player2 int64) *Game {
	return &Game{
		ID:         id,
		Player1:    player1,
		Player2:    player2,
		Turn:       player1,
		Status:     StatusInProgress,
		LastMoveAt: time.Now(),
	}
}

func (that *Game) IsParticipant(playerID int64) bool {
	return playerID == that.Player1 || playerID == that.Player2
}

func (that *Game) Opponent(playerID int64) int64 {
	if playerID == that.Player1 {
		return that.Player2
	}

	return that.Player1
}

func (that *Game) MoveCount(playerID int64) int {
	switch playerID {
	case that.Player1:
		return that.Player1Moves
	case that.Player2:
		return that.Player2Moves
	default:
		return 0
	}
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// MakeMove - validates and applies a move, leaving the game untouched on error.
func (that *Game) MakeMove(playerID int64, row, col int) error {
	if !that.IsInProgress() {
		return apperror.ErrGameNotFound
	}

	if !that.IsParticipant(playerID) {
		return apperror.ErrNotParticipant
	}

	if !that.Board.InRange(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOutOfRange, row, col)
	}

	if that.Turn != playerID {
		return apperror.ErrNotYourTurn
	}

	if that.Board[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[row][col] = playerID
	that.Turn = that.Opponent(playerID)

	if playerID == that.Player1 {
		that.Player1Moves++
	} else {
		that.Player2Moves++
	}

	that.LastMoveAt = time.Now()

	return nil
}

// Result - computes the terminal record for an outcome reached by the last mover.
func (that *Game) Result(outcome Outcome, lastMover int64) *GameResult {
	result := &GameResult{
		GameID:       that.ID,
		Player1:      that.Player1,
		Player2:      that.Player2,
		Board:        that.Board,
		Player1Moves: that.Player1Moves,
		Player2Moves: that.Player2Moves,
		IsDraw:       outcome == OutcomeDraw,
	}

	if outcome == OutcomeWin {
		winner := lastMover
		loser := that.Opponent(lastMover)
		result.WinnerID = &winner
		result.LoserID = &loser
	}

	return result
}

// GameResult - what is persisted when a game reaches a terminal state.
type GameResult struct {
	GameID       int64
	Player1      int64
	Player2      int64
	Board        Board
	WinnerID     *int64
	LoserID      *int64
	IsDraw       bool
	Player1Moves int
	Player2Moves int
}
