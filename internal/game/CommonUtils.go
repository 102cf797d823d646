package game

var Directions = []Direction{Up, Right, Down, Left}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

func GetManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}
