package game

// Strategy picks the heading to request for the next tick. It stands in for
// the keyboard in demo mode.
type Strategy interface {
	NextDirection(board Board) Direction
}
