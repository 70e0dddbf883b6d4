package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// memoryGame keeps games in process memory. Values are copied in and out,
// so callers never share a *entity.Game with the store.
type memoryGame struct {
	mutex sync.RWMutex
	games map[string]entity.Game
}

func NewGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	that.mutex.Lock()
	defer that.mutex.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memoryGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	that.mutex.RLock()
	defer that.mutex.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	that.mutex.Lock()
	defer that.mutex.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	delete(that.games, id)

	return nil
}
