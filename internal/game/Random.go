package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource is the only randomness the engine consumes. Intn returns a
// value in [0, n).
type RandomSource interface {
	Intn(n int) int
}

func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

func NewTimeSeededSource() RandomSource {
	return NewRandomSource(uint64(time.Now().UnixNano()))
}
