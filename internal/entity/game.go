package entity

// GameState is a single value of the game. Transitions replace it wholesale.
type GameState struct {
	Board     Board
	Turn      Player
	Winner    Piece
	RunLength int
}

func (that GameState) IsFinished() bool {
	return that.Winner != Empty
}

func (that GameState) IsOngoing() bool {
	return !that.IsFinished()
}

// Line is a completed run on the board, start cell first.
type Line struct {
	Piece Piece
	Cells []Cell
}

// Snapshot is the read-only view handed to presentation layers.
type Snapshot struct {
	ID          string    `json:"id"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Board       [][]Piece `json:"board"`
	Turn        Player    `json:"turn"`
	Winner      *Piece    `json:"winner"`
	Full        bool      `json:"full"`
	WinningLine []Cell    `json:"winning_line,omitempty"`
}

// IsFinished - a decoded "empty" winner counts as no winner.
func (that Snapshot) IsFinished() bool {
	return that.Winner != nil && *that.Winner != Empty
}

// At - returns the piece at (column, row) of the snapshot board.
func (that Snapshot) At(column, row int) Piece {
	if row < 0 || row >= len(that.Board) || column < 0 || column >= len(that.Board[row]) {
		return Empty
	}

	return that.Board[row][column]
}

// Game binds a state to the handle it is stored under.
type Game struct {
	ID    string
	State GameState
}
