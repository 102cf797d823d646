package game

import "testing"

func farFood() Food { return Food{X: 300, Y: 150} }

func TestNewBoardStartsRunning(t *testing.T) {
	snake := SpawnSnake(50, 50, Right)
	board := NewBoard(390, 190, farFood(), snake)

	if !board.IsGameRunning() {
		t.Error("new board is not running")
	}
	if board.Width() != 390 || board.Height() != 190 {
		t.Errorf("dimensions = %dx%d, want 390x190", board.Width(), board.Height())
	}
	if board.Food() != farFood() {
		t.Errorf("food = %+v", board.Food())
	}
	if !samePositions(board.Snake().Segments(), snake.Segments()) {
		t.Errorf("snake = %v", board.Snake().Segments())
	}
}

func TestSettersChangeOneField(t *testing.T) {
	board := NewBoard(390, 190, farFood(), SpawnSnake(50, 50, Right))

	withFood := board.SetFood(Food{X: 10, Y: 20})
	if withFood.Food() != (Food{X: 10, Y: 20}) || board.Food() != farFood() {
		t.Errorf("SetFood: new %+v, old %+v", withFood.Food(), board.Food())
	}

	moved := SpawnSnake(100, 100, Down)
	withSnake := board.SetSnake(moved)
	if withSnake.Snake().Head() != moved.Head() || board.Snake().Head() != (Position{X: 50, Y: 50}) {
		t.Errorf("SetSnake: new head %v, old head %v", withSnake.Snake().Head(), board.Snake().Head())
	}

	stopped := board.SetGameIsRunning(false)
	if stopped.IsGameRunning() || !board.IsGameRunning() {
		t.Error("SetGameIsRunning leaked into the original board")
	}
	if stopped.Food() != board.Food() || stopped.Width() != board.Width() {
		t.Error("SetGameIsRunning changed other fields")
	}
}

func TestTickAdvancesThenTurns(t *testing.T) {
	board := NewBoard(390, 190, farFood(), SpawnSnake(50, 50, Right))
	rng := &sequenceSource{}

	board = board.Tick(Up, rng)
	if board.Snake().Head() != (Position{X: 60, Y: 50}) {
		t.Errorf("first tick head = %v, want (60,50)", board.Snake().Head())
	}
	if board.Snake().Direction() != Up {
		t.Errorf("direction = %v, want up", board.Snake().Direction())
	}

	board = board.Tick(Up, rng)
	if board.Snake().Head() != (Position{X: 60, Y: 40}) {
		t.Errorf("second tick head = %v, want (60,40)", board.Snake().Head())
	}
}

func TestTickIgnoresReversal(t *testing.T) {
	board := NewBoard(390, 190, farFood(), SpawnSnake(50, 50, Right))

	board = board.Tick(Left, &sequenceSource{})

	if board.Snake().Direction() != Right {
		t.Errorf("direction = %v, want right", board.Snake().Direction())
	}
	if !board.IsGameRunning() {
		t.Error("reversal request ended the game")
	}
}

func TestTickEatsFoodUnderHead(t *testing.T) {
	board := NewBoard(390, 190, Food{X: 50, Y: 50}, SpawnSnake(50, 50, Right))
	rng := &sequenceSource{values: []int{123, 77}}

	board = board.Tick(Down, rng)

	want := positions(60, 50, 50, 50, 40, 50, 30, 50)
	if !samePositions(board.Snake().Segments(), want) {
		t.Errorf("segments = %v, want %v", board.Snake().Segments(), want)
	}
	if board.Food() != (Food{X: 120, Y: 70}) {
		t.Errorf("food = %+v, want {120 70}", board.Food())
	}
	if board.Snake().Direction() != Right {
		t.Errorf("direction = %v, want right: the turn is dropped on the eating tick", board.Snake().Direction())
	}

	board = board.Tick(Down, rng)
	if board.Snake().Head() != (Position{X: 70, Y: 50}) || board.Snake().Direction() != Down {
		t.Errorf("after next tick head %v heading %v, want (70,50) heading down",
			board.Snake().Head(), board.Snake().Direction())
	}
}

func TestTickCollisionFreezesBoard(t *testing.T) {
	curled := NewSnake(positions(20, 20, 20, 30, 10, 30, 10, 20, 10, 10), Left)
	board := NewBoard(390, 190, farFood(), curled)

	over := board.Tick(Left, &sequenceSource{})

	if over.IsGameRunning() {
		t.Fatal("expected game over")
	}
	if !samePositions(over.Snake().Segments(), curled.Segments()) {
		t.Errorf("snake after collision = %v, want the pre-collision layout %v", over.Snake().Segments(), curled.Segments())
	}
	if over.Food() != farFood() || over.Width() != 390 || over.Height() != 190 {
		t.Error("collision changed food or dimensions")
	}

	again := over.Tick(Up, &sequenceSource{})
	if again.IsGameRunning() || !samePositions(again.Snake().Segments(), curled.Segments()) {
		t.Error("tick after game over moved the snake")
	}
}

func TestResetOnlyFromGameOver(t *testing.T) {
	cfg := DefaultConfig()
	rng := NewRandomSource(1)
	board := NewGame(cfg, rng).Tick(Right, rng)

	if got := board.Reset(cfg, rng); got.Snake().Head() != board.Snake().Head() {
		t.Errorf("reset of a running board moved the snake to %v", got.Snake().Head())
	}

	fresh := board.SetGameIsRunning(false).Reset(cfg, rng)
	if !fresh.IsGameRunning() {
		t.Error("reset board is not running")
	}
	if fresh.Snake().Head() != (Position{X: cfg.StartX, Y: cfg.StartY}) {
		t.Errorf("reset head = %v", fresh.Snake().Head())
	}
	if fresh.Snake().Len() != StartSegments {
		t.Errorf("reset length = %d", fresh.Snake().Len())
	}
}

func TestNewGameUsesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartDirection = Down
	board := NewGame(cfg, &sequenceSource{values: []int{205, 99}})

	if board.Snake().Direction() != Down {
		t.Errorf("direction = %v, want down", board.Snake().Direction())
	}
	if board.Food() != (Food{X: 200, Y: 90}) {
		t.Errorf("food = %+v, want {200 90}", board.Food())
	}
	if board.Width() != cfg.Width || board.Height() != cfg.Height {
		t.Errorf("dimensions = %dx%d", board.Width(), board.Height())
	}
}

func TestLengthNeverShrinks(t *testing.T) {
	cfg := DefaultConfig()
	rng := NewRandomSource(99)
	board := NewGame(cfg, rng)
	strategy := DefaultStrategy{}

	length := board.Snake().Len()
	for i := 0; i < 2000 && board.IsGameRunning(); i++ {
		board = board.Tick(strategy.NextDirection(board), rng)
		if board.Snake().Len() < length {
			t.Fatalf("tick %d: length dropped from %d to %d", i, length, board.Snake().Len())
		}
		if board.Snake().Len() > length+1 {
			t.Fatalf("tick %d: length jumped from %d to %d", i, length, board.Snake().Len())
		}
		length = board.Snake().Len()
	}
	if length == StartSegments {
		t.Error("strategy never ate anything in 2000 ticks")
	}
}
