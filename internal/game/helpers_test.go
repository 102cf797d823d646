package game

// sequenceSource replays fixed values, each reduced into [0, n).
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	value := s.values[s.next%len(s.values)]
	s.next++
	return value % n
}

func positions(coords ...int) []Position {
	result := make([]Position, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		result = append(result, Position{X: coords[i], Y: coords[i+1]})
	}
	return result
}

func samePositions(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
