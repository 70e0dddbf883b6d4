package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo := repository.NewGameRepository()
	gameUseCase := usecase.NewGameManager(logger, gameRepo, conf.Board.RunLength)

	snapshot, err := gameUseCase.NewGame(ctx, conf.Board.Width, conf.Board.Height)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	defer func() {
		if err = gameUseCase.EndGame(context.Background(), snapshot.ID); err != nil {
			log.Error("could not end game", "error", err)
		}
	}()

	log.Info("Starting terminal UI", "game_id", snapshot.ID)

	model := terminal.New(ctx, logger, gameUseCase, snapshot)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Terminal UI closed, shutting down")

	return nil
}
