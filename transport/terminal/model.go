package terminal

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type gameUseCase interface {
	Drop(ctx context.Context, id string, column int) (entity.Snapshot, error)
	Reset(ctx context.Context, id string) (entity.Snapshot, error)
}

// Model is the bubbletea shell around one game. The hover column is
// presentation state and never reaches the engine.
type Model struct {
	ctx    context.Context //nolint: containedctx // bubbletea models have no per-call context
	logger *slog.Logger
	game   gameUseCase
	keys   KeyMap

	snapshot entity.Snapshot
	hover    int
	err      error

	width  int
	height int
}

// New - creates the shell for the game of snapshot with the hover on the middle column.
func New(ctx context.Context, logger *slog.Logger, game gameUseCase, snapshot entity.Snapshot) Model {
	return Model{
		ctx:      ctx,
		logger:   logger.With("component", "terminal", "game_id", snapshot.ID),
		game:     game,
		keys:     Keys,
		snapshot: snapshot,
		hover:    snapshot.Width / 2,
	}
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var keyMsg tea.KeyMsg

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.width, that.height = msg.Width, msg.Height

		return that, nil
	case tea.KeyMsg:
		keyMsg = msg
	default:
		return that, nil
	}

	switch {
	case key.Matches(keyMsg, that.keys.Quit):
		return that, tea.Quit
	case key.Matches(keyMsg, that.keys.Left):
		that.hover = that.moveHover(-1)
	case key.Matches(keyMsg, that.keys.Right):
		that.hover = that.moveHover(1)
	case key.Matches(keyMsg, that.keys.Drop):
		return that.drop(that.hover), nil
	case key.Matches(keyMsg, that.keys.Column):
		column := int(keyMsg.String()[0] - '1')
		if column < that.snapshot.Width {
			that.hover = column
		}
		return that.drop(column), nil
	case key.Matches(keyMsg, that.keys.Reset):
		return that.reset(), nil
	}

	return that, nil
}

// Snapshot - returns the last state received from the game.
func (that Model) Snapshot() entity.Snapshot {
	return that.snapshot
}

// Hover - returns the highlighted column.
func (that Model) Hover() int {
	return that.hover
}

func (that Model) moveHover(delta int) int {
	if that.snapshot.Width == 0 {
		return 0
	}

	return (that.hover + delta + that.snapshot.Width) % that.snapshot.Width
}

func (that Model) drop(column int) Model {
	snapshot, err := that.game.Drop(that.ctx, that.snapshot.ID, column)
	if err != nil {
		that.logger.Error("failed to drop piece", "column", column, "error", err)
		that.err = err

		return that
	}

	that.snapshot = snapshot
	that.err = nil

	return that
}

func (that Model) reset() Model {
	snapshot, err := that.game.Reset(that.ctx, that.snapshot.ID)
	if err != nil {
		that.logger.Error("failed to reset game", "error", err)
		that.err = err

		return that
	}

	that.snapshot = snapshot
	that.err = nil

	return that
}
