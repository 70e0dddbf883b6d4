package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager hands out game handles and applies intents to them.
// Intents on one handle are applied one at a time; separate handles do not block each other.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	runLength int

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, runLength int) *GameManager {
	if runLength <= 0 {
		runLength = connectfour.DefaultRunLength
	}

	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		runLength: runLength,

		locks: make(map[string]*sync.Mutex),
	}
}

// NewGame - creates a game and returns its first snapshot.
func (that *GameManager) NewGame(ctx context.Context, width, height int) (entity.Snapshot, error) {
	state, err := connectfour.InitialStateWithRunLength(width, height, that.runLength)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to create game: %w", err)
	}

	game := &entity.Game{
		ID:    uuid.NewString(),
		State: state,
	}

	if err = that.updateGame(ctx, game); err != nil {
		return entity.Snapshot{}, err
	}

	that.logger.Info("game created", "game_id", game.ID, "width", width, "height", height, "run_length", that.runLength)

	return connectfour.Snapshot(game.ID, game.State), nil
}

// Drop - drops the piece of whoever is to move into column.
// Illegal drops leave the game unchanged and are not errors.
func (that *GameManager) Drop(ctx context.Context, id string, column int) (entity.Snapshot, error) {
	return that.drop(ctx, id, column, nil)
}

// DropAs - like Drop, but refuses with ErrNotYourTurn when player is not the one to move.
func (that *GameManager) DropAs(ctx context.Context, id string, player entity.Player, column int) (entity.Snapshot, error) {
	return that.drop(ctx, id, column, &player)
}

// CurrentState - returns the snapshot of the game.
func (that *GameManager) CurrentState(ctx context.Context, id string) (entity.Snapshot, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, err
	}

	return connectfour.Snapshot(game.ID, game.State), nil
}

// Reset - puts the game back into its initial state.
func (that *GameManager) Reset(ctx context.Context, id string) (entity.Snapshot, error) {
	unlock := that.lockGame(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		that.forgetMissingGame(id, err)

		return entity.Snapshot{}, err
	}

	game.State = connectfour.ResetState(game.State)

	if err = that.updateGame(ctx, game); err != nil {
		return entity.Snapshot{}, err
	}

	that.logger.Info("game reset", "game_id", id)

	return connectfour.Snapshot(game.ID, game.State), nil
}

// EndGame - forgets the game. Later calls with id return ErrGameNotFound.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	unlock := that.lockGame(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		that.forgetMissingGame(id, err)

		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.forgetLock(id)

	that.logger.Info("game ended", "game_id", id)

	return nil
}

func (that *GameManager) drop(ctx context.Context, id string, column int, player *entity.Player) (entity.Snapshot, error) {
	log := that.logger.With("method", "drop", "game_id", id, "column", column)

	unlock := that.lockGame(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		that.forgetMissingGame(id, err)

		return entity.Snapshot{}, err
	}

	if player != nil && game.State.IsOngoing() && *player != game.State.Turn {
		log.Debug("drop refused", "player", player.String(), "turn", game.State.Turn.String())

		return connectfour.Snapshot(game.ID, game.State), apperror.ErrNotYourTurn
	}

	if !connectfour.CanDrop(game.State, column) {
		log.Debug("drop ignored", "finished", game.State.IsFinished())

		return connectfour.Snapshot(game.ID, game.State), nil
	}

	mover := game.State.Turn
	game.State = connectfour.DropPiece(game.State, column)

	if err = that.updateGame(ctx, game); err != nil {
		return entity.Snapshot{}, err
	}

	log.Debug("piece dropped", "player", mover.String())

	if game.State.IsFinished() {
		log.Info("game won", "winner", game.State.Winner.String())
	}

	return connectfour.Snapshot(game.ID, game.State), nil
}

// lockGame - serializes intents per game handle.
func (that *GameManager) lockGame(id string) func() {
	that.locksMutex.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[id] = lock
	}
	that.locksMutex.Unlock()

	lock.Lock()

	return lock.Unlock
}

// forgetMissingGame - drops the lock of an id the repository does not know.
// Must be called while holding that lock.
func (that *GameManager) forgetMissingGame(id string, err error) {
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.forgetLock(id)
	}
}

func (that *GameManager) forgetLock(id string) {
	that.locksMutex.Lock()
	delete(that.locks, id)
	that.locksMutex.Unlock()
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
