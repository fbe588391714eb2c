package game

import "fmt"

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is derived from the board on demand and never stored by the engine
type Outcome struct {
	Status Status
	Winner Player // Empty unless Status is Win
}

// IsOver reports whether the game has ended in a win or a draw
func (o Outcome) IsOver() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	if o.Status == Win {
		return fmt.Sprintf("%s wins", o.Winner)
	}
	return o.Status.String()
}

// outcomeOf classifies a board, checking only the windows through (row, col)
// when a cell is given and every window otherwise
func outcomeOf(b *Board, row, col int, incremental bool) Outcome {
	var w Window
	var won bool
	if incremental {
		w, won = b.FindWindowThrough(row, col, isWin)
	} else {
		w, won = b.FindWindow(isWin)
	}
	if won {
		return Outcome{Status: Win, Winner: w.Owner()}
	}
	if b.IsFull() {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}
