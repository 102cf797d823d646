package game

import (
	"errors"
	"fmt"
	"strings"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var ErrUnknownDirection = errors.New("unknown direction")

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Opposite returns the heading a snake can never turn into in one tick.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("opposite of invalid direction %d", int(d)))
}

// delta is one step along the heading, in grid units.
func (d Direction) delta() Position {
	switch d {
	case Up:
		return Position{X: 0, Y: -StepSize}
	case Down:
		return Position{X: 0, Y: StepSize}
	case Left:
		return Position{X: -StepSize, Y: 0}
	case Right:
		return Position{X: StepSize, Y: 0}
	}
	panic(fmt.Sprintf("delta of invalid direction %d", int(d)))
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func ParseDirection(name string) (Direction, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for dir, dirName := range directionNames {
		if dirName == lowered {
			return dir, nil
		}
	}
	return Up, fmt.Errorf("parse %q: %w", name, ErrUnknownDirection)
}
