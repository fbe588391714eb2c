package searcher

import "connect4/game"

// DefaultDepth is the search horizon in plies
const DefaultDepth = 4

// NoColumn is returned when the board has no legal move
const NoColumn = game.NoColumn

// State is the part of the board engine the search borrows. Every MakeMove
// issued by the search is paired with an UndoMove before the search returns.
type State interface {
	IsValidMove(col int) bool
	MakeMove(col int, player game.Player) bool
	UndoMove(col int)
	IsGameOver() bool
	Board() game.Board
}

var _ State = (*game.Game)(nil)

// Move pairs a column with the score the search assigned to it. Column is
// NoColumn for positions scored directly by the evaluator.
type Move struct {
	Column int
	Score  int
}
