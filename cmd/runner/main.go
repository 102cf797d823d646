package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	demo := flag.Bool("demo", false, "let the autopilot play")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	setLogLevel(os.Getenv("SNAKE_LOG_LEVEL"))

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to the game from here on; logs only go to a file if asked.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "snake")
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal("Could not open log file", "path", *logFile, "error", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller := ui.NewControllerModel(ctx, cfg, game.NewTimeSeededSource, 0, 0)
	if *demo {
		controller = controller.StartDemo()
	}

	p := tea.NewProgram(controller, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Error("Game exited with error", "error", err)
		os.Exit(1)
	}
}

func setLogLevel(raw string) {
	if raw == "" {
		return
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		log.Warn("Unknown log level, keeping default", "level", raw)
		return
	}
	log.SetLevel(level)
}
