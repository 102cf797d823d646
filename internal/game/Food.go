package game

import "fmt"

type Food struct {
	X int
	Y int
}

func (f Food) Position() Position {
	return Position{X: f.X, Y: f.Y}
}

// SpawnFood draws each coordinate uniformly from [0, max] and snaps it down to
// the movement grid so the head can land on it exactly.
func SpawnFood(rng RandomSource, maxX, maxY int) Food {
	if maxX < 0 || maxY < 0 {
		panic(fmt.Sprintf("spawn food: negative bounds %dx%d", maxX, maxY))
	}
	x := roundToStep(rng.Intn(maxX + 1))
	y := roundToStep(rng.Intn(maxY + 1))
	return Food{X: x, Y: y}
}

func roundToStep(value int) int {
	return (value / StepSize) * StepSize
}
