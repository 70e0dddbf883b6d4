package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Player is whose turn it is. Unlike Piece it has no empty value.
type Player uint8

const (
	PlayerFirst Player = iota
	PlayerSecond
)

// Piece - returns the cell value this player drops.
func (that Player) Piece() Piece {
	if that == PlayerSecond {
		return Second
	}
	return First
}

// Other - returns the opponent.
func (that Player) Other() Player {
	if that == PlayerFirst {
		return PlayerSecond
	}
	return PlayerFirst
}

func (that Player) String() string {
	return that.Piece().String()
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case firstName:
		*that = PlayerFirst
	case secondName:
		*that = PlayerSecond
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}

	return nil
}
