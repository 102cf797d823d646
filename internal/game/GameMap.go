package game

// Position is a single grid cell in board units. Snake segments and food
// always sit on multiples of StepSize.
type Position struct {
	X int
	Y int
}

func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// wrap maps a coordinate that left the board back onto the opposite edge.
// Below zero lands on the bound itself, past the bound lands on zero.
func (p Position) wrap(width, height int) Position {
	return Position{X: wrapCoordinate(p.X, width), Y: wrapCoordinate(p.Y, height)}
}

func wrapCoordinate(value, bound int) int {
	if value < 0 {
		return bound
	}
	if value > bound {
		return 0
	}
	return value
}
