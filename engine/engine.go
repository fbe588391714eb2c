package engine

import "connect4/game"

// MaxMoves is the number of cells on the board, so no game runs longer
const MaxMoves = game.Rows * game.Columns

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrGameOver    Error = "game is over - no moves allowed"
	ErrInvalidMove Error = "invalid move"
	ErrNoAgent     Error = "no agent for the side to move"
)

// Update records a move applied by the engine
type Update struct {
	Step   int
	Player game.Player
	Column int
	Row    int
}
