package apperror

import "errors"

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrGameNotFound      = errors.New("game not found")
	ErrNotYourTurn       = errors.New("it's not your turn")
)
