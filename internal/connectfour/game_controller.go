package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const DefaultRunLength = 4

type direction struct {
	dx, dy int
}

// Scan order: right, up, up-right, up-left. The two diagonals mirror each other.
var directions = [4]direction{
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: 1, dy: 1},
	{dx: -1, dy: 1},
}

// InitialState - returns an empty board with First to move and a run length of four.
func InitialState(width, height int) (entity.GameState, error) {
	return InitialStateWithRunLength(width, height, DefaultRunLength)
}

// InitialStateWithRunLength - same as InitialState with a custom winning run.
func InitialStateWithRunLength(width, height, runLength int) (entity.GameState, error) {
	if runLength <= 0 {
		return entity.GameState{}, fmt.Errorf("%w: run length %d", apperror.ErrInvalidDimensions, runLength)
	}

	board, err := entity.NewBoard(width, height)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to create board: %w", err)
	}

	return entity.GameState{
		Board:     board,
		Turn:      entity.PlayerFirst,
		Winner:    entity.Empty,
		RunLength: runLength,
	}, nil
}

// Reset - equivalent to InitialState.
func Reset(width, height int) (entity.GameState, error) {
	return InitialState(width, height)
}

// ResetState - returns the initial state for the dimensions and run length of state.
func ResetState(state entity.GameState) entity.GameState {
	initial, err := InitialStateWithRunLength(state.Board.Width(), state.Board.Height(), state.RunLength)
	if err != nil {
		return state
	}

	return initial
}

// DropPiece - drops the current player's piece into column.
// Finished games, out-of-range columns and full columns return state unchanged.
func DropPiece(state entity.GameState, column int) entity.GameState {
	if state.IsFinished() {
		return state
	}

	row, ok := LandingRow(state.Board, column)
	if !ok {
		return state
	}

	next := state
	next.Board = state.Board.Place(column, row, state.Turn.Piece())

	if winner, won := CheckWinner(next.Board, state.RunLength); won {
		next.Winner = winner

		return next
	}

	next.Turn = state.Turn.Other()

	return next
}

// CanDrop - reports whether DropPiece would change state.
func CanDrop(state entity.GameState, column int) bool {
	if state.IsFinished() {
		return false
	}

	_, ok := LandingRow(state.Board, column)

	return ok
}

// LandingRow - returns the lowest empty row of column.
func LandingRow(board entity.Board, column int) (int, bool) {
	for row := 0; row < board.Height(); row++ {
		piece, ok := board.At(column, row)
		if !ok {
			return 0, false
		}

		if piece == entity.Empty {
			return row, true
		}
	}

	return 0, false
}

// CheckWinner - returns the piece owning the first run of runLength found on the board.
func CheckWinner(board entity.Board, runLength int) (entity.Piece, bool) {
	line, ok := FindWinningLine(board, runLength)
	if !ok {
		return entity.Empty, false
	}

	return line.Piece, true
}

// FindWinningLine - scans every cell, bottom row first, as the start of a run in each direction.
func FindWinningLine(board entity.Board, runLength int) (entity.Line, bool) {
	if runLength <= 0 {
		return entity.Line{}, false
	}

	for row := 0; row < board.Height(); row++ {
		for column := 0; column < board.Width(); column++ {
			for _, dir := range directions {
				if line, ok := runFrom(board, column, row, dir, runLength); ok {
					return line, true
				}
			}
		}
	}

	return entity.Line{}, false
}

// runFrom - reads runLength cells from (column, row) along dir.
// Any cell off the board fails the match.
func runFrom(board entity.Board, column, row int, dir direction, runLength int) (entity.Line, bool) {
	first, ok := board.At(column, row)
	if !ok || first == entity.Empty {
		return entity.Line{}, false
	}

	cells := make([]entity.Cell, 0, runLength)
	for step := 0; step < runLength; step++ {
		c, r := column+dir.dx*step, row+dir.dy*step

		piece, ok := board.At(c, r)
		if !ok || piece != first {
			return entity.Line{}, false
		}

		cells = append(cells, entity.Cell{Column: c, Row: r})
	}

	return entity.Line{Piece: first, Cells: cells}, true
}

// Snapshot - builds the presentation view of state under the given handle.
func Snapshot(id string, state entity.GameState) entity.Snapshot {
	snapshot := entity.Snapshot{
		ID:     id,
		Width:  state.Board.Width(),
		Height: state.Board.Height(),
		Board:  state.Board.Rows(),
		Turn:   state.Turn,
		Full:   state.Board.IsFull(),
	}

	if state.IsFinished() {
		winner := state.Winner
		snapshot.Winner = &winner

		if line, ok := FindWinningLine(state.Board, state.RunLength); ok {
			snapshot.WinningLine = line.Cells
		}
	}

	return snapshot
}
