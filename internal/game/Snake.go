package game

import "fmt"

// Snake is an immutable value: every transition below allocates a fresh
// segment slice, so older snapshots handed to a renderer stay valid.
type Snake struct {
	segments  []Position
	direction Direction
}

// SpawnSnake lays StartSegments cells behind the head, opposite to the heading.
func SpawnSnake(headX, headY int, direction Direction) Snake {
	trail := direction.Opposite().delta()
	segments := make([]Position, 0, StartSegments)
	current := Position{X: headX, Y: headY}
	for i := 0; i < StartSegments; i++ {
		segments = append(segments, current)
		current = current.Add(trail)
	}
	return Snake{segments: segments, direction: direction}
}

// NewSnake builds a snake from an explicit head-first layout.
func NewSnake(segments []Position, direction Direction) Snake {
	if len(segments) == 0 {
		panic("new snake: no segments")
	}
	return Snake{segments: append([]Position(nil), segments...), direction: direction}
}

func (s Snake) Segments() []Position {
	return append([]Position(nil), s.segments...)
}

func (s Snake) Len() int {
	return len(s.segments)
}

func (s Snake) Direction() Direction {
	return s.direction
}

func (s Snake) Head() Position {
	s.mustHaveSegments("head")
	return s.segments[0]
}

// Advance moves the snake one step: the tail is dropped and a new head is
// inserted ahead of the old one.
func (s Snake) Advance(boardWidth, boardHeight int) Snake {
	s.mustHaveSegments("advance")
	body := s.segments[:len(s.segments)-1]
	newHead := s.segments[0].Add(s.direction.delta())
	return Snake{
		segments:  wrapSegments(newHead, body, boardWidth, boardHeight),
		direction: s.direction,
	}
}

// EatFood grows the snake by one: the new head goes one step past the food
// and the tail stays where it is.
func (s Snake) EatFood(food Food, boardWidth, boardHeight int) Snake {
	s.mustHaveSegments("eat food")
	newHead := food.Position().Add(s.direction.delta())
	return Snake{
		segments:  wrapSegments(newHead, s.segments, boardWidth, boardHeight),
		direction: s.direction,
	}
}

// ChangeDirection only records the heading; it takes effect on the next move.
// Reversing straight into the body is refused.
func (s Snake) ChangeDirection(requested Direction) Snake {
	direction := requested
	if requested == s.direction.Opposite() {
		direction = s.direction
	}
	return Snake{segments: s.Segments(), direction: direction}
}

func (s Snake) HasCollision() bool {
	if len(s.segments) < 2 {
		return false
	}
	head := s.segments[0]
	for _, segment := range s.segments[1:] {
		if segment == head {
			return true
		}
	}
	return false
}

// wrapSegments prepends head to body and wraps every cell, not only the head.
func wrapSegments(head Position, body []Position, boardWidth, boardHeight int) []Position {
	segments := make([]Position, 0, len(body)+1)
	segments = append(segments, head)
	segments = append(segments, body...)
	for i := range segments {
		segments[i] = segments[i].wrap(boardWidth, boardHeight)
	}
	return segments
}

func (s Snake) mustHaveSegments(op string) {
	if len(s.segments) == 0 {
		panic(fmt.Sprintf("snake %s: no segments", op))
	}
}
