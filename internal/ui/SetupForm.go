package ui

import (
	"strconv"
	"strings"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedColor = lipgloss.Color("10")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

const (
	focusWidth = iota
	focusHeight
	focusSubmit
)

// SetupModel lets the player pick the board size before a game.
type SetupModel struct {
	widthInput  textinput.Model
	heightInput textinput.Model
	focusIndex  int
	baseConfig  game.Config
	err         error
	width       int
	height      int
}

func newDimensionInput(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 4
	ti.Width = 6
	ti.SetValue(strconv.Itoa(value))
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}
	return ti
}

func NewInitialSetupModel(cfg game.Config, w, h int) SetupModel {
	m := SetupModel{
		widthInput:  newDimensionInput("width", cfg.Width),
		heightInput: newDimensionInput("height", cfg.Height),
		focusIndex:  focusWidth,
		baseConfig:  cfg,
		width:       w,
		height:      h,
	}
	m.applyFocus()
	return m
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % (focusSubmit + 1)
			m.applyFocus()
			return m, nil
		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex + focusSubmit) % (focusSubmit + 1)
			m.applyFocus()
			return m, nil
		case "enter":
			if m.focusIndex != focusSubmit {
				m.focusIndex++
				m.applyFocus()
				return m, nil
			}
			cfg, err := m.config()
			if err != nil {
				m.err = err
				return m, nil
			}
			return m, func() tea.Msg { return SetupSubmitMsg{Config: cfg} }
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.widthInput, cmd = m.widthInput.Update(msg)
	cmds = append(cmds, cmd)
	m.heightInput, cmd = m.heightInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *SetupModel) applyFocus() {
	m.widthInput.Blur()
	m.heightInput.Blur()
	m.widthInput.PromptStyle, m.widthInput.TextStyle = blurredStyle, blurredStyle
	m.heightInput.PromptStyle, m.heightInput.TextStyle = blurredStyle, blurredStyle

	switch m.focusIndex {
	case focusWidth:
		m.widthInput.Focus()
		m.widthInput.PromptStyle, m.widthInput.TextStyle = focusedStyle, focusedStyle
	case focusHeight:
		m.heightInput.Focus()
		m.heightInput.PromptStyle, m.heightInput.TextStyle = focusedStyle, focusedStyle
	}
}

// config builds the game config from the inputs and validates it.
func (m SetupModel) config() (game.Config, error) {
	cfg := m.baseConfig
	var err error
	if cfg.Width, err = strconv.Atoi(strings.TrimSpace(m.widthInput.Value())); err != nil {
		return cfg, err
	}
	if cfg.Height, err = strconv.Atoi(strings.TrimSpace(m.heightInput.Value())); err != nil {
		return cfg, err
	}
	// Keep the starting snake on small boards.
	if cfg.StartX > cfg.Width {
		cfg.StartX = cfg.Width / 2 / game.StepSize * game.StepSize
	}
	if cfg.StartY > cfg.Height {
		cfg.StartY = cfg.Height / 2 / game.StepSize * game.StepSize
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Board setup") + "\n\n")
	b.WriteString("Width:  " + m.widthInput.View() + "\n")
	b.WriteString("Height: " + m.heightInput.View() + "\n\n")

	button := blurredButtonStyle.Render("Start")
	if m.focusIndex == focusSubmit {
		button = submitButtonStyle.Render("Start")
	}
	b.WriteString(button + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("Multiples of 10. tab: next field, enter: confirm, ctrl+c: quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
