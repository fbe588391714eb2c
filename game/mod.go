package game

import "fmt"

const (
	Rows         = 6
	Columns      = 7
	WindowLength = 4 // Discs in a row needed to win
)

// NoColumn is returned in place of a column when no legal move exists
const NoColumn = -1

// Player identifies the contents of a cell and the side making a move.
// PlayerA is the human side and moves first, PlayerB is the automated side.
type Player uint8

const (
	Empty Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other side, or Empty for Empty
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Valid reports whether p can occupy a cell
func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	switch p {
	case Empty:
		return "empty"
	case PlayerA:
		return "player A"
	case PlayerB:
		return "player B"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// Symbol is the single character used by Board.String
func (p Player) Symbol() byte {
	switch p {
	case PlayerA:
		return 'X'
	case PlayerB:
		return 'O'
	default:
		return '.'
	}
}

// Direction is the step between consecutive cells of a window. Rows grow downwards.
type Direction struct {
	DRow int
	DCol int
}

var (
	Right     = Direction{DRow: 0, DCol: 1}  // →
	Down      = Direction{DRow: 1, DCol: 0}  // ↓
	DownRight = Direction{DRow: 1, DCol: 1}  // ↘
	DownLeft  = Direction{DRow: 1, DCol: -1} // ↙
)

// Directions covers every line on the board exactly once
var Directions = [4]Direction{Right, Down, DownRight, DownLeft}

// Error is a sentinel error of the game package
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidBoard Error = "invalid board"
)
