package game

// Board is the single owner of the snake and the food. It is a value type:
// every setter and Tick hand back a new Board and leave the receiver intact.
type Board struct {
	width         int
	height        int
	food          Food
	snake         Snake
	gameIsRunning bool
}

func NewBoard(width, height int, food Food, snake Snake) Board {
	return Board{
		width:         width,
		height:        height,
		food:          food,
		snake:         snake,
		gameIsRunning: true,
	}
}

// NewGame builds a running board with the configured starting snake and a
// freshly spawned food cell.
func NewGame(cfg Config, rng RandomSource) Board {
	snake := SpawnSnake(cfg.StartX, cfg.StartY, cfg.StartDirection)
	return NewBoard(cfg.Width, cfg.Height, SpawnFood(rng, cfg.Width, cfg.Height), snake)
}

func (b Board) Width() int  { return b.width }
func (b Board) Height() int { return b.height }

func (b Board) Snake() Snake { return b.snake }
func (b Board) Food() Food   { return b.food }

func (b Board) IsGameRunning() bool { return b.gameIsRunning }

func (b Board) SetSnake(snake Snake) Board {
	b.snake = snake
	return b
}

func (b Board) SetFood(food Food) Board {
	b.food = food
	return b
}

func (b Board) SetGameIsRunning(running bool) Board {
	b.gameIsRunning = running
	return b
}

// Tick runs one game step. The candidate move is checked for self-collision
// before anything is committed; a colliding candidate is thrown away and the
// board freezes on the last valid snake. Food is matched against the head as
// it was before the move, and the grown snake keeps the heading it had then.
func (b Board) Tick(requested Direction, rng RandomSource) Board {
	if !b.gameIsRunning {
		return b
	}

	candidate := b.snake.Advance(b.width, b.height)
	if candidate.HasCollision() {
		return b.SetGameIsRunning(false)
	}
	candidate = candidate.ChangeDirection(requested)

	// Eating discards the turned candidate; the grown snake keeps the old heading.
	next := b
	if b.snake.Head() == b.food.Position() {
		candidate = b.snake.EatFood(b.food, b.width, b.height)
		next = next.SetFood(SpawnFood(rng, b.width, b.height))
	}
	return next.SetSnake(candidate)
}

// Reset starts over, but only once the game is over.
func (b Board) Reset(cfg Config, rng RandomSource) Board {
	if b.gameIsRunning {
		return b
	}
	return NewGame(cfg, rng)
}
