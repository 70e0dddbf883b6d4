package entity

import (
	"errors"
	"fmt"
)

const (
	emptyName  = "empty"
	firstName  = "first"
	secondName = "second"
)

var ErrUnknownPiece = errors.New("unknown piece")

// Piece is the content of a board cell.
type Piece uint8

const (
	Empty Piece = iota
	First
	Second
)

func (that Piece) String() string {
	switch that {
	case First:
		return firstName
	case Second:
		return secondName
	default:
		return emptyName
	}
}

func (that Piece) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Piece) UnmarshalText(text []byte) error {
	switch string(text) {
	case emptyName:
		*that = Empty
	case firstName:
		*that = First
	case secondName:
		*that = Second
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPiece, text)
	}

	return nil
}
