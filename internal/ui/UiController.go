package ui

import (
	"context"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // introPlay or introDemo
type SetupSubmitMsg struct {
	Config game.Config
}

// NewSource hands each new game its own random source.
type NewSource func() game.RandomSource

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ctx          context.Context
	cancelGame   context.CancelFunc
	config       game.Config
	newSource    NewSource
	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel wires the screens together. Game loops started from
// here stop when ctx is done or the player quits.
func NewControllerModel(ctx context.Context, cfg game.Config, newSource NewSource, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(cfg, screenWidth, screenHeight),

		ctx:          ctx,
		config:       cfg,
		newSource:    newSource,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// StartDemo skips the menus and runs the autopilot.
func (m ControllerModel) StartDemo() ControllerModel {
	m, _ = m.startGame(m.config, game.NewLuaStrategy("default", game.DefaultLuaStrategy))
	return m
}

func (m ControllerModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case GameScreen:
		return m.gameCmd()
	case SetupScreen:
		return m.SetupModel.Init()
	default:
		return m.IntroModel.Init()
	}
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.CurrentScreen != SetupScreen) {
			m.stopGame()
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		var cmds []tea.Cmd
		m.IntroModel, cmd = m.IntroModel.Update(msg)
		cmds = append(cmds, cmd)
		m.SetupModel, cmd = m.SetupModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case IntroSubmitMsg:
		if msg == introDemo {
			return m.startGame(m.config, game.NewLuaStrategy("default", game.DefaultLuaStrategy))
		}
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	case SetupSubmitMsg:
		return m.startGame(msg.Config, nil)

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
			}
		}
		if cmd != nil && m.CurrentScreen == GameScreen {
			return m, m.wrapQuit(cmd)
		}
	}

	return m, cmd
}

func (m ControllerModel) startGame(cfg game.Config, strategy game.Strategy) (ControllerModel, tea.Cmd) {
	m.stopGame()

	gm := game.NewGameManager(cfg, m.newSource())
	gm.Strategy = strategy
	m.GameModel = NewGameModel(gm, m.ScreenWidth, m.ScreenHeight)
	m.CurrentScreen = GameScreen

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelGame = cancel
	log.Debug("Starting game.", "width", cfg.Width, "height", cfg.Height, "autopilot", strategy != nil)

	go gm.StartGameLoop(ctx)
	return m, m.GameModel.Init()
}

func (m ControllerModel) gameCmd() tea.Cmd {
	if m.GameModel == nil {
		return nil
	}
	return m.GameModel.Init()
}

func (m ControllerModel) stopGame() {
	if m.cancelGame != nil {
		m.cancelGame()
	}
}

// wrapQuit stops the game loop when the game screen asks to quit.
func (m ControllerModel) wrapQuit(cmd tea.Cmd) tea.Cmd {
	cancel := m.cancelGame
	return func() tea.Msg {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok && cancel != nil {
			cancel()
		}
		return msg
	}
}
