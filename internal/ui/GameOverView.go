package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	playAgainButton = iota
	exitButton
)

// GameOverState holds the data and local state for rendering the game over panel.
type GameOverState struct {
	FinalLength    int
	SelectedButton int
}

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				Padding(1, 3).
				Align(lipgloss.Center)
)

func (g *GameOverState) selectPrevious() {
	g.SelectedButton = max(playAgainButton, g.SelectedButton-1)
}

func (g *GameOverState) selectNext() {
	g.SelectedButton = min(exitButton, g.SelectedButton+1)
}

// RenderGameOverScreen draws the death message and buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	title := gameOverTitleStyle.Render("G A M E   O V E R")
	stats := fmt.Sprintf("Final length: %d\n", g.FinalLength)

	playAgain := gameOverButtonStyle.Render("PLAY AGAIN")
	exit := gameOverButtonStyle.Render("EXIT")
	if g.SelectedButton == playAgainButton {
		playAgain = selectedButtonStyle.Render("PLAY AGAIN")
	} else {
		exit = selectedButtonStyle.Render("EXIT")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, playAgain, exit)
	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, buttons)

	return lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content)
}
