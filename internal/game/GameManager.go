package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// GameTickMsg carries the board as it stands after a tick or a reset.
type GameTickMsg struct {
	Board Board
}

// GameManager is the tick driver. It owns the authoritative Board; everyone
// else gets value snapshots through Board() or UpdateChannel.
type GameManager struct {
	DirectionChannel chan Direction
	ResetChannel     chan struct{}
	UpdateChannel    chan GameTickMsg
	// Strategy, when set, replaces player input (demo mode).
	Strategy Strategy

	config    Config
	rng       RandomSource
	requested Direction

	boardMutex sync.RWMutex
	board      Board

	loopStarted atomic.Bool
}

func NewGameManager(cfg Config, rng RandomSource) *GameManager {
	return &GameManager{
		DirectionChannel: make(chan Direction, 10),
		ResetChannel:     make(chan struct{}, 1),
		UpdateChannel:    make(chan GameTickMsg, 1),
		config:           cfg,
		rng:              rng,
		requested:        cfg.StartDirection,
		board:            NewGame(cfg, rng),
	}
}

func (gm *GameManager) Config() Config {
	return gm.config
}

func (gm *GameManager) Board() Board {
	gm.boardMutex.RLock()
	defer gm.boardMutex.RUnlock()
	return gm.board
}

// RequestDirection queues a heading for the next tick. It never blocks; when
// the queue is full the request is dropped.
func (gm *GameManager) RequestDirection(dir Direction) {
	select {
	case gm.DirectionChannel <- dir:
	default:
		log.Debug("Direction channel full, dropping request.", "direction", dir)
	}
}

func (gm *GameManager) RequestReset() {
	select {
	case gm.ResetChannel <- struct{}{}:
	default:
	}
}

// StartGameLoop ticks the board every TickInterval until ctx is cancelled.
// It runs at most once per manager and closes UpdateChannel on return.
func (gm *GameManager) StartGameLoop(ctx context.Context) {
	if !gm.loopStarted.CompareAndSwap(false, true) {
		return
	}
	defer close(gm.UpdateChannel)

	log.Info("Game loop started.", "tick", gm.config.TickInterval,
		"width", gm.config.Width, "height", gm.config.Height)

	ticker := time.NewTicker(gm.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Game loop stopped.")
			return
		case <-ticker.C:
			gm.publish(GameTickMsg{Board: gm.Step()})
		}
	}
}

// Step drains pending input and runs exactly one tick. A reset counts as
// the tick; input queued alongside it carries over to the new game.
func (gm *GameManager) Step() Board {
	gm.boardMutex.Lock()
	defer gm.boardMutex.Unlock()

	reset := gm.processReset()
	gm.processPlayerInput()
	if reset {
		return gm.board
	}

	if gm.Strategy != nil && gm.board.IsGameRunning() {
		gm.requested = gm.Strategy.NextDirection(gm.board)
	}

	wasRunning := gm.board.IsGameRunning()
	gm.board = gm.board.Tick(gm.requested, gm.rng)
	if wasRunning && !gm.board.IsGameRunning() {
		log.Info("Game over.", "length", gm.board.Snake().Len())
	}
	return gm.board
}

// processPlayerInput keeps only the latest requested heading. It runs after
// processReset so a reset cannot clobber a fresh request.
func (gm *GameManager) processPlayerInput() {
	for {
		select {
		case dir := <-gm.DirectionChannel:
			gm.requested = dir
		default:
			return
		}
	}
}

// processReset must be called with boardMutex held.
func (gm *GameManager) processReset() bool {
	select {
	case <-gm.ResetChannel:
	default:
		return false
	}
	if gm.board.IsGameRunning() {
		log.Debug("Ignoring reset while the game is running.")
		return false
	}
	gm.board = gm.board.Reset(gm.config, gm.rng)
	gm.requested = gm.config.StartDirection
	log.Info("Game reset.")
	return true
}

// publish replaces any snapshot the renderer has not picked up yet, so the
// loop never blocks on a slow reader.
func (gm *GameManager) publish(msg GameTickMsg) {
	for {
		select {
		case gm.UpdateChannel <- msg:
			return
		default:
		}
		select {
		case <-gm.UpdateChannel:
		default:
		}
	}
}
