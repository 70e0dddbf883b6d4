package terminal

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

func newModel(t *testing.T) (Model, *usecase.GameManager) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewGameRepository(), 4)

	snapshot, err := manager.NewGame(context.Background(), 7, 6)
	require.NoError(t, err)

	return New(context.Background(), logger, manager, snapshot), manager
}

func press(t *testing.T, model Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, msg := range keys {
		next, _ := model.Update(msg)

		var ok bool
		model, ok = next.(Model)
		require.True(t, ok)
	}

	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_Hover(t *testing.T) {
	t.Run("Starts in the middle column", func(t *testing.T) {
		model, _ := newModel(t)

		assert.Equal(t, 3, model.Hover())
	})

	t.Run("Moves and wraps around the edges", func(t *testing.T) {
		// Given: the hover on the middle column
		model, _ := newModel(t)

		// When: moving right four times
		model = press(t, model,
			tea.KeyMsg{Type: tea.KeyRight}, runeKey('l'), runeKey('l'), runeKey('l'))

		// Then: the hover should wrap to column 0
		assert.Equal(t, 0, model.Hover())

		// When: moving left once
		model = press(t, model, tea.KeyMsg{Type: tea.KeyLeft})

		// Then: the hover should wrap to the last column
		assert.Equal(t, 6, model.Hover())
	})

	t.Run("Does not touch the game", func(t *testing.T) {
		model, manager := newModel(t)

		model = press(t, model, runeKey('h'), runeKey('h'))

		current, err := manager.CurrentState(context.Background(), model.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, model.Snapshot(), current)
	})
}

func TestModel_Drop(t *testing.T) {
	t.Run("Enter drops into the hovered column", func(t *testing.T) {
		model, _ := newModel(t)

		model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, entity.First, model.Snapshot().At(3, 0))
		assert.Equal(t, entity.PlayerSecond, model.Snapshot().Turn)
	})

	t.Run("Digit keys drop directly and move the hover", func(t *testing.T) {
		model, _ := newModel(t)

		model = press(t, model, runeKey('1'), runeKey('7'))

		assert.Equal(t, entity.First, model.Snapshot().At(0, 0))
		assert.Equal(t, entity.Second, model.Snapshot().At(6, 0))
		assert.Equal(t, 6, model.Hover())
	})

	t.Run("Digit beyond the board is ignored", func(t *testing.T) {
		model, _ := newModel(t)
		before := model.Snapshot()

		model = press(t, model, runeKey('9'))

		assert.Equal(t, before, model.Snapshot())
		assert.Equal(t, 3, model.Hover())
	})

	t.Run("Shows the winner", func(t *testing.T) {
		// Given: a new game
		model, _ := newModel(t)

		// When: Red completes the bottom row
		model = press(t, model,
			runeKey('1'), runeKey('7'), runeKey('2'), runeKey('7'), runeKey('3'), runeKey('7'), runeKey('4'))

		// Then: the snapshot and the view should report the win
		require.NotNil(t, model.Snapshot().Winner)
		assert.Equal(t, entity.First, *model.Snapshot().Winner)
		assert.Contains(t, model.View(), "Red wins!")
	})
}

func TestModel_Reset(t *testing.T) {
	model, _ := newModel(t)
	model = press(t, model, runeKey('1'), runeKey('2'))

	model = press(t, model, runeKey('r'))

	assert.Equal(t, entity.Empty, model.Snapshot().At(0, 0))
	assert.Equal(t, entity.PlayerFirst, model.Snapshot().Turn)
	assert.Contains(t, model.View(), "Red to move")
}

func TestModel_Quit(t *testing.T) {
	model, _ := newModel(t)

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := model.Update(msg)

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_GameError(t *testing.T) {
	// Given: a model whose game has been ended behind its back
	model, manager := newModel(t)
	require.NoError(t, manager.EndGame(context.Background(), model.Snapshot().ID))

	// When: a drop is attempted
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	// Then: the error should be shown and the last snapshot kept
	require.Error(t, model.err)
	assert.ErrorIs(t, model.err, apperror.ErrGameNotFound)
	assert.Contains(t, model.View(), apperror.ErrGameNotFound.Error())
	assert.Equal(t, entity.Empty, model.Snapshot().At(3, 0))
}

func TestModel_WindowSize(t *testing.T) {
	model, _ := newModel(t)

	next, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, 80, next.(Model).width)
	assert.Equal(t, 24, next.(Model).height)
}
