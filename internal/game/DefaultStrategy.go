package game

// DefaultStrategy heads for the food along the shortest Manhattan route and
// skips any heading that would bite the body. A requested heading only takes
// effect after the move already committed for this tick, so every candidate
// is judged two steps ahead.
type DefaultStrategy struct{}

func (s DefaultStrategy) NextDirection(board Board) Direction {
	snake := board.Snake().Advance(board.Width(), board.Height())
	current := snake.Direction()
	food := board.Food().Position()

	best := current
	bestDistance := -1
	for _, dir := range Directions {
		if dir == current.Opposite() {
			continue
		}

		next := snake.ChangeDirection(dir).Advance(board.Width(), board.Height())
		if next.HasCollision() {
			continue
		}

		distance := GetManhattanDistance(next.Head(), food)
		if bestDistance < 0 || distance < bestDistance || (distance == bestDistance && dir == current) {
			best = dir
			bestDistance = distance
		}
	}
	return best
}
