package game

import "fmt"

// Game owns the board and is the only source of truth for its state.
// It is not safe for concurrent use: a single caller mutates and queries it at a time.
type Game struct {
	board    Board
	moves    int
	observer Observer
}

type Option func(g *Game)

// WithObserver registers an observer notified of every applied and undone move
func WithObserver(observer Observer) Option {
	return func(g *Game) {
		g.observer = observer
	}
}

// NewGame returns an empty board. PlayerA moves first, but turn order is kept by the caller.
func NewGame(options ...Option) *Game {
	g := &Game{}
	for _, option := range options {
		option(g)
	}
	return g
}

// FromBoard returns a game positioned at b after checking that every cell
// holds a known value and that no disc floats above an empty cell
func FromBoard(b Board, options ...Option) (*Game, error) {
	moves := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			p := b[row][col]
			if p != Empty && !p.Valid() {
				return nil, fmt.Errorf("%w: unknown value %d at row %d column %d", ErrInvalidBoard, p, row, col)
			}
			if p != Empty {
				moves++
			}
		}
	}
	if row, col, ok := b.checkGravity(); !ok {
		return nil, fmt.Errorf("%w: floating disc at row %d column %d", ErrInvalidBoard, row, col)
	}

	g := NewGame(options...)
	g.board = b
	g.moves = moves
	return g, nil
}

// IsValidMove reports whether col is on the grid and not full
func (g *Game) IsValidMove(col int) bool {
	return col >= 0 && col < Columns && g.board[0][col] == Empty
}

// MakeMove drops a disc for player into col. It returns false and leaves the
// board untouched when the column is full or off the grid, or player is not a side.
func (g *Game) MakeMove(col int, player Player) bool {
	if !player.Valid() || !g.IsValidMove(col) {
		return false
	}
	row, ok := g.board.drop(col, player)
	if !ok {
		return false
	}
	g.moves++

	if g.observer != nil {
		g.observer.MovePlayed(col, row, player, outcomeOf(&g.board, row, col, true))
	}
	return true
}

// UndoMove removes the topmost disc of col. Calls must mirror MakeMove in reverse
// order to keep the board reachable. An empty or unknown column is a no-op.
func (g *Game) UndoMove(col int) {
	row, player, ok := g.board.lift(col)
	if !ok {
		return
	}
	g.moves--

	if g.observer != nil {
		g.observer.MoveUndone(col, row, player)
	}
}

// IsGameOver reports whether a player has four in a row or the board is full
func (g *Game) IsGameOver() bool {
	return g.Outcome().IsOver()
}

// Winner scans the whole board and returns the first player found with four
// in a row, or Empty
func (g *Game) Winner() Player {
	w, ok := g.board.FindWindow(isWin)
	if !ok {
		return Empty
	}
	return w.Owner()
}

// Outcome classifies the current board
func (g *Game) Outcome() Outcome {
	return outcomeOf(&g.board, -1, -1, false)
}

// Board returns a copy of the grid
func (g *Game) Board() Board {
	return g.board
}

// LegalMoves returns the playable columns in ascending order
func (g *Game) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if g.IsValidMove(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// MoveCount returns the number of discs on the board
func (g *Game) MoveCount() int {
	return g.moves
}
