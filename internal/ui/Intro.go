package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	introPlay = iota
	introDemo
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: introPlay, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			if m.selected == introPlay {
				m.selected = introDemo
			} else {
				m.selected = introPlay
			}
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var snakeAscii = `
  ███████ ███    ██  █████  ██   ██ ███████
  ██      ████   ██ ██   ██ ██  ██  ██
  ███████ ██ ██  ██ ███████ █████   █████
       ██ ██  ██ ██ ██   ██ ██  ██  ██
  ███████ ██   ████ ██   ██ ██   ██ ███████
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("10")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	play := introButtonStyle.Render("Play")
	demo := introButtonStyle.Render("Watch Demo")

	if m.selected == introPlay {
		play = introSelectedButtonStyle.Render("Play")
	} else {
		demo = introSelectedButtonStyle.Render("Watch Demo")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, play, demo)
	content := lipgloss.JoinVertical(lipgloss.Center, asciiStyle.Render(snakeAscii), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
