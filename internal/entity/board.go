package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Board is an immutable width x height grid addressed by (column, row).
// Row 0 is the bottom of every column.
type Board struct {
	width  int
	height int
	cells  []Piece
}

// Cell is a board coordinate.
type Cell struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// NewBoard - creates an empty board.
func NewBoard(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	return Board{
		width:  width,
		height: height,
		cells:  make([]Piece, width*height),
	}, nil
}

func (that Board) Width() int {
	return that.width
}

func (that Board) Height() int {
	return that.height
}

func (that Board) InBounds(column, row int) bool {
	return column >= 0 && column < that.width && row >= 0 && row < that.height
}

// At - returns the piece at (column, row); ok is false off the board.
func (that Board) At(column, row int) (Piece, bool) {
	if !that.InBounds(column, row) {
		return Empty, false
	}

	return that.cells[that.index(column, row)], true
}

// Place - returns a copy of the board with piece written at (column, row).
// The receiver is left untouched. Off-board coordinates return the board as is.
func (that Board) Place(column, row int, piece Piece) Board {
	if !that.InBounds(column, row) {
		return that
	}

	cells := make([]Piece, len(that.cells))
	copy(cells, that.cells)
	cells[that.index(column, row)] = piece

	return Board{
		width:  that.width,
		height: that.height,
		cells:  cells,
	}
}

// IsFull - reports whether no column can take another piece.
func (that Board) IsFull() bool {
	for column := 0; column < that.width; column++ {
		if piece, _ := that.At(column, that.height-1); piece == Empty {
			return false
		}
	}

	return len(that.cells) > 0
}

// Rows - returns a copy of the grid as rows, bottom row first.
func (that Board) Rows() [][]Piece {
	rows := make([][]Piece, that.height)
	for row := range rows {
		rows[row] = make([]Piece, that.width)
		copy(rows[row], that.cells[row*that.width:(row+1)*that.width])
	}

	return rows
}

func (that Board) index(column, row int) int {
	return row*that.width + column
}
