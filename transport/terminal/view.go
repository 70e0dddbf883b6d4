package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var (
	firstStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4136"))
	secondStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFDC00"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	winningStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2ECC40"))
	hoverStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).MarginTop(1)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0074D9")).
			Padding(0, 1)
)

func (that Model) View() string {
	views := []string{
		that.renderHover(),
		boardStyle.Render(that.renderBoard()),
		statusStyle.Render(that.status()),
	}

	if that.err != nil {
		views = append(views, errorStyle.Render(that.err.Error()))
	}

	views = append(views, helpStyle.Render(that.renderHelp()))

	mainView := lipgloss.JoinVertical(lipgloss.Center, views...)
	if that.width == 0 || that.height == 0 {
		return mainView
	}

	return lipgloss.Place(that.width, that.height, lipgloss.Center, lipgloss.Center, mainView)
}

func (that Model) status() string {
	snapshot := that.snapshot

	switch {
	case snapshot.IsFinished():
		return fmt.Sprintf("%s wins! Press r to play again.", playerName(*snapshot.Winner))
	case snapshot.Full:
		return "Draw. Press r to play again."
	default:
		return fmt.Sprintf("%s to move", playerName(snapshot.Turn.Piece()))
	}
}

func (that Model) renderHover() string {
	var b strings.Builder

	for column := 0; column < that.snapshot.Width; column++ {
		if column > 0 {
			b.WriteString(" ")
		}

		if column == that.hover && !that.snapshot.IsFinished() {
			b.WriteString(hoverStyle.Render("▼"))
		} else {
			b.WriteString(" ")
		}
	}

	return b.String()
}

// renderBoard - draws the top row first.
func (that Model) renderBoard() string {
	winning := make(map[entity.Cell]bool, len(that.snapshot.WinningLine))
	for _, cell := range that.snapshot.WinningLine {
		winning[cell] = true
	}

	rows := make([]string, 0, that.snapshot.Height)

	for row := that.snapshot.Height - 1; row >= 0; row-- {
		cells := make([]string, 0, that.snapshot.Width)

		for column := 0; column < that.snapshot.Width; column++ {
			glyph := renderPiece(that.snapshot.At(column, row))
			if winning[entity.Cell{Column: column, Row: row}] {
				glyph = winningStyle.Render(glyph)
			}

			cells = append(cells, glyph)
		}

		rows = append(rows, strings.Join(cells, " "))
	}

	return strings.Join(rows, "\n")
}

func (that Model) renderHelp() string {
	bindings := that.keys.help()
	parts := make([]string, 0, len(bindings))

	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}

	return strings.Join(parts, " • ")
}

func renderPiece(piece entity.Piece) string {
	switch piece {
	case entity.First:
		return firstStyle.Render("●")
	case entity.Second:
		return secondStyle.Render("●")
	default:
		return emptyStyle.Render("·")
	}
}

func playerName(piece entity.Piece) string {
	switch piece {
	case entity.First:
		return firstStyle.Render("Red")
	case entity.Second:
		return secondStyle.Render("Yellow")
	default:
		return piece.String()
	}
}
