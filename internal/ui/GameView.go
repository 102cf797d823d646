package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	runningColor  = lipgloss.Color("22")
	gameOverColor = lipgloss.Color("52")

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	headRunes = map[game.Direction]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}

	bodyRune = "█"
	foodRune = "●"
)

// GameViewModel renders board snapshots published by a GameManager and
// forwards steering keys to it. It never touches the board itself.
type GameViewModel struct {
	TickCount    int
	ScreenWidth  int
	ScreenHeight int

	gameManager   *game.GameManager
	board         game.Board
	keys          KeyMap
	help          help.Model
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameManager:  gm,
		board:        gm.Board(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameViewModel) listenForGameUpdates() tea.Cmd {
	updates := m.gameManager.UpdateChannel
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return nil
		}
		return msg
	}
}

func (m GameViewModel) Board() game.Board {
	return m.board
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.board.IsGameRunning() {
			return m.updateGameOver(msg)
		}
		if dir, ok := m.keys.DirectionFor(msg); ok {
			m.gameManager.RequestDirection(dir)
		}
		return m, nil

	case game.GameTickMsg:
		wasRunning := m.board.IsGameRunning()
		m.board = msg.Board
		m.TickCount++
		if wasRunning && !m.board.IsGameRunning() {
			m.gameOverState = GameOverState{FinalLength: m.board.Snake().Len()}
		}
		return m, m.listenForGameUpdates()
	}

	return m, nil
}

func (m GameViewModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.gameOverState.selectPrevious()
	case key.Matches(msg, m.keys.Right):
		m.gameOverState.selectNext()
	case key.Matches(msg, m.keys.Restart):
		m.gameManager.RequestReset()
	case msg.Type == tea.KeyEnter:
		if m.gameOverState.SelectedButton == exitButton {
			return m, tea.Quit
		}
		m.gameManager.RequestReset()
	}
	return m, nil
}

func (m GameViewModel) View() string {
	mapContent := mapViewStyle.Render(m.renderMap())

	var side string
	if m.board.IsGameRunning() {
		side = statusPanelStyle.Render(m.renderStatusPanel())
	} else {
		side = m.gameOverState.RenderGameOverScreen()
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, mapContent, side)
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

// renderMap draws one terminal cell per movement-grid cell. Coordinates run
// from 0 to the board bound inclusive.
func (m GameViewModel) renderMap() string {
	cols := m.board.Width()/game.StepSize + 1
	rows := m.board.Height()/game.StepSize + 1

	background := runningColor
	if !m.board.IsGameRunning() {
		background = gameOverColor
	}
	cellStyle := lipgloss.NewStyle().Background(background)
	snakeStyle := cellStyle.Foreground(lipgloss.Color("10"))
	headStyle := snakeStyle.Bold(true)
	foodStyle := cellStyle.Foreground(lipgloss.Color("9"))

	grid := make([][]string, rows)
	empty := cellStyle.Render(" ")
	for row := range grid {
		grid[row] = make([]string, cols)
		for col := range grid[row] {
			grid[row][col] = empty
		}
	}

	put := func(p game.Position, cell string) {
		col, row := p.X/game.StepSize, p.Y/game.StepSize
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = cell
		}
	}

	food := m.board.Food()
	put(food.Position(), foodStyle.Render(foodRune))

	snake := m.board.Snake()
	segments := snake.Segments()
	for i := len(segments) - 1; i > 0; i-- {
		put(segments[i], snakeStyle.Render(bodyRune))
	}
	if len(segments) > 0 {
		put(segments[0], headStyle.Render(headRunes[snake.Direction()]))
	}

	var sb strings.Builder
	for row := range grid {
		sb.WriteString(strings.Join(grid[row], ""))
		if row < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderStatusPanel draws the run state and the key help.
func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder
	snake := m.board.Snake()

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", snake.Len()))
	statusContent.WriteString(fmt.Sprintf("Heading: %s %s\n", headRunes[snake.Direction()], snake.Direction()))
	statusContent.WriteString(fmt.Sprintf("Board: %dx%d\n", m.board.Width(), m.board.Height()))
	statusContent.WriteString(fmt.Sprintf("Ticks: %d\n", m.TickCount))
	if m.gameManager.Strategy != nil {
		statusContent.WriteString(lipgloss.NewStyle().Faint(true).Render("autopilot") + "\n")
	}
	statusContent.WriteString("\n" + m.help.View(m.keys))

	return statusContent.String()
}
