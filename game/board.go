package game

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid. Row 0 is the top row, so discs fall towards Rows-1.
// The zero value is an empty board and copies are independent snapshots.
type Board [Rows][Columns]Player

// Window is a run of WindowLength cells starting at (Row, Col) and stepping by Dir
type Window struct {
	Row   int
	Col   int
	Dir   Direction
	Cells [WindowLength]Player
}

// Count returns the number of cells in the window holding p
func (w Window) Count(p Player) int {
	n := 0
	for _, cell := range w.Cells {
		if cell == p {
			n++
		}
	}
	return n
}

// Owner returns the player holding every cell of the window, or Empty
func (w Window) Owner() Player {
	first := w.Cells[0]
	if first == Empty {
		return Empty
	}
	for _, cell := range w.Cells[1:] {
		if cell != first {
			return Empty
		}
	}
	return first
}

// InBounds reports whether (row, col) lies on the grid
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// At returns the cell at (row, col), or Empty when it is off the grid
func (b *Board) At(row, col int) Player {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b[row][col]
}

// ColumnFull reports whether the topmost cell of col is occupied.
// Columns off the grid count as full since nothing can be dropped there.
func (b *Board) ColumnFull(col int) bool {
	if col < 0 || col >= Columns {
		return true
	}
	return b[0][col] != Empty
}

// IsFull reports whether every column is full
func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			return false
		}
	}
	return true
}

// Height returns the number of discs stacked in col
func (b *Board) Height(col int) int {
	if col < 0 || col >= Columns {
		return 0
	}
	height := 0
	for row := Rows - 1; row >= 0 && b[row][col] != Empty; row-- {
		height++
	}
	return height
}

// drop places p in the lowest empty cell of col and returns its row
func (b *Board) drop(col int, p Player) (int, bool) {
	if b.ColumnFull(col) {
		return -1, false
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][col] == Empty {
			b[row][col] = p
			return row, true
		}
	}
	return -1, false
}

// lift clears the topmost occupied cell of col and returns its row and previous owner
func (b *Board) lift(col int) (int, Player, bool) {
	if col < 0 || col >= Columns {
		return -1, Empty, false
	}
	for row := 0; row < Rows; row++ {
		if b[row][col] != Empty {
			p := b[row][col]
			b[row][col] = Empty
			return row, p, true
		}
	}
	return -1, Empty, false
}

// Window returns the window starting at (row, col) in direction dir.
// It fails when any of its cells would fall off the grid.
func (b *Board) Window(row, col int, dir Direction) (Window, bool) {
	lastRow := row + (WindowLength-1)*dir.DRow
	lastCol := col + (WindowLength-1)*dir.DCol
	if !b.InBounds(row, col) || !b.InBounds(lastRow, lastCol) {
		return Window{}, false
	}
	w := Window{Row: row, Col: col, Dir: dir}
	for i := 0; i < WindowLength; i++ {
		w.Cells[i] = b[row+i*dir.DRow][col+i*dir.DCol]
	}
	return w, true
}

// EachWindow calls fn for every in-bounds window of the board
func (b *Board) EachWindow(fn func(Window)) {
	b.FindWindow(func(w Window) bool {
		fn(w)
		return false
	})
}

// FindWindow scans every starting cell and direction and returns the first
// window satisfying match
func (b *Board) FindWindow(match func(Window) bool) (Window, bool) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, dir := range Directions {
				w, ok := b.Window(row, col, dir)
				if ok && match(w) {
					return w, true
				}
			}
		}
	}
	return Window{}, false
}

// FindWindowThrough is FindWindow restricted to the windows containing (row, col)
func (b *Board) FindWindowThrough(row, col int, match func(Window) bool) (Window, bool) {
	if !b.InBounds(row, col) {
		return Window{}, false
	}
	for _, dir := range Directions {
		// Slide the start back along dir so that (row, col) takes every position in the window
		for i := 0; i < WindowLength; i++ {
			w, ok := b.Window(row-i*dir.DRow, col-i*dir.DCol, dir)
			if ok && match(w) {
				return w, true
			}
		}
	}
	return Window{}, false
}

// checkGravity returns the first occupied cell sitting above an empty one
func (b *Board) checkGravity() (row, col int, ok bool) {
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows-1; row++ {
			if b[row][col] != Empty && b[row+1][col] == Empty {
				return row, col, false
			}
		}
	}
	return -1, -1, true
}

func isWin(w Window) bool {
	return w.Owner() != Empty
}

// ParseBoard reads the format written by String: one line per row from the top,
// '.' for empty, 'X' for PlayerA and 'O' for PlayerB
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Rows {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Rows, len(rows))
	}
	for row, line := range rows {
		if len(line) != Columns {
			return b, fmt.Errorf("%w: row %d has %d columns", ErrInvalidBoard, row, len(line))
		}
		for col := 0; col < Columns; col++ {
			switch line[col] {
			case '.':
				b[row][col] = Empty
			case PlayerA.Symbol():
				b[row][col] = PlayerA
			case PlayerB.Symbol():
				b[row][col] = PlayerB
			default:
				return b, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrInvalidBoard, line[col], row, col)
			}
		}
	}
	return b, nil
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteByte(b[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
