package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGameModel() (GameViewModel, *game.GameManager) {
	gm := game.NewGameManager(game.DefaultConfig(), game.NewRandomSource(1))
	return NewGameModel(gm, 120, 40), gm
}

func TestDirectionFor(t *testing.T) {
	keys := DefaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want game.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, game.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, game.Down},
		{tea.KeyMsg{Type: tea.KeyLeft}, game.Left},
		{tea.KeyMsg{Type: tea.KeyRight}, game.Right},
		{runeKey("w"), game.Up},
		{runeKey("s"), game.Down},
		{runeKey("a"), game.Left},
		{runeKey("d"), game.Right},
	}
	for _, tc := range cases {
		got, ok := keys.DirectionFor(tc.msg)
		if !ok || got != tc.want {
			t.Errorf("DirectionFor(%q) = %v, %v; want %v", tc.msg.String(), got, ok, tc.want)
		}
	}

	if _, ok := keys.DirectionFor(runeKey("x")); ok {
		t.Error("unrecognised key mapped to a direction")
	}
}

func TestGameViewForwardsSteering(t *testing.T) {
	m, gm := newTestGameModel()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(runeKey("x"))

	if len(gm.DirectionChannel) != 1 {
		t.Fatalf("queued %d directions, want 1", len(gm.DirectionChannel))
	}
	if dir := <-gm.DirectionChannel; dir != game.Down {
		t.Errorf("queued %v, want down", dir)
	}
}

func TestGameViewTracksTicks(t *testing.T) {
	m, gm := newTestGameModel()
	board := gm.Step()

	updated, cmd := m.Update(game.GameTickMsg{Board: board})
	view := updated.(GameViewModel)

	if view.TickCount != 1 {
		t.Errorf("TickCount = %d, want 1", view.TickCount)
	}
	if view.Board().Snake().Head() != board.Snake().Head() {
		t.Error("view did not take the published board")
	}
	if cmd == nil {
		t.Error("view stopped listening for updates")
	}
}

func gameOverModel(t *testing.T) (GameViewModel, *game.GameManager) {
	t.Helper()
	m, gm := newTestGameModel()
	over := gm.Board().SetGameIsRunning(false)
	updated, _ := m.Update(game.GameTickMsg{Board: over})
	return updated.(GameViewModel), gm
}

func TestGameOverViewAndRestart(t *testing.T) {
	m, gm := gameOverModel(t)

	if !strings.Contains(m.View(), "G A M E   O V E R") {
		t.Error("game over panel not shown")
	}
	if m.gameOverState.FinalLength != game.StartSegments {
		t.Errorf("FinalLength = %d", m.gameOverState.FinalLength)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(gm.ResetChannel) != 1 {
		t.Error("PLAY AGAIN did not request a reset")
	}
	if len(gm.DirectionChannel) != 0 {
		t.Error("keys during game over reached the snake")
	}
}

func TestGameOverExit(t *testing.T) {
	m, _ := gameOverModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(GameViewModel)
	if m.gameOverState.SelectedButton != exitButton {
		t.Fatalf("selected %d, want exit", m.gameOverState.SelectedButton)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("EXIT returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("EXIT did not quit")
	}
}

func TestRenderMapSize(t *testing.T) {
	m, _ := newTestGameModel()
	cfg := game.DefaultConfig()

	lines := strings.Split(m.renderMap(), "\n")
	if len(lines) != cfg.Height/game.StepSize+1 {
		t.Fatalf("rows = %d, want %d", len(lines), cfg.Height/game.StepSize+1)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != cfg.Width/game.StepSize+1 {
			t.Fatalf("row %d width = %d", i, w)
		}
	}
	if !strings.Contains(m.renderMap(), headRunes[game.Right]) {
		t.Error("head not drawn")
	}
}

func TestSetupConfig(t *testing.T) {
	m := NewInitialSetupModel(game.DefaultConfig(), 80, 24)

	cfg, err := m.config()
	if err != nil {
		t.Fatalf("default setup invalid: %v", err)
	}
	if cfg != game.DefaultConfig() {
		t.Errorf("cfg = %+v", cfg)
	}

	m.widthInput.SetValue("40")
	m.heightInput.SetValue("40")
	cfg, err = m.config()
	if err != nil {
		t.Fatalf("small board rejected: %v", err)
	}
	if cfg.StartX > cfg.Width || cfg.StartY > cfg.Height {
		t.Errorf("start (%d,%d) left outside %dx%d", cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	}

	m.widthInput.SetValue("25")
	if _, err := m.config(); !errors.Is(err, game.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestControllerFlow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var m tea.Model = NewControllerModel(ctx, game.DefaultConfig(), game.NewTimeSeededSource, 120, 40)

	m, _ = m.Update(IntroSubmitMsg(introPlay))
	if got := m.(ControllerModel).CurrentScreen; got != SetupScreen {
		t.Fatalf("screen = %v, want setup", got)
	}

	m, _ = m.Update(runeKey("q"))
	if got := m.(ControllerModel).CurrentScreen; got != SetupScreen {
		t.Fatalf("q left the setup screen")
	}

	m, cmd := m.Update(SetupSubmitMsg{Config: game.DefaultConfig()})
	controller := m.(ControllerModel)
	if controller.CurrentScreen != GameScreen || controller.GameModel == nil {
		t.Fatal("setup did not start a game")
	}
	if cmd == nil {
		t.Error("game screen is not listening for updates")
	}
	controller.stopGame()
}

func TestControllerDemo(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := NewControllerModel(ctx, game.DefaultConfig(), game.NewTimeSeededSource, 120, 40).StartDemo()
	if m.CurrentScreen != GameScreen {
		t.Fatalf("screen = %v, want game", m.CurrentScreen)
	}
	if m.GameModel.(GameViewModel).gameManager.Strategy == nil {
		t.Error("demo has no autopilot")
	}
	m.stopGame()
}

func TestStoppedGameReleasesListener(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var m tea.Model = NewControllerModel(ctx, game.DefaultConfig(), game.NewTimeSeededSource, 120, 40)
	m, _ = m.Update(SetupSubmitMsg{Config: game.DefaultConfig()})
	controller := m.(ControllerModel)
	listen := controller.GameModel.(GameViewModel).listenForGameUpdates()

	controller.stopGame()

	done := make(chan struct{})
	go func() {
		for listen() != nil {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("update listener still blocked after the game stopped")
	}
}
