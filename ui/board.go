// Package ui draws the Connect Four board in the terminal with tview and plays
// the human side against a computer opponent.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"connect4/config"
	"connect4/engine"
	"connect4/game"
)

const (
	human    = game.PlayerA
	computer = game.PlayerB
)

const (
	youWin  = "You win!"
	aiWins  = "AI wins!"
	drawMsg = "It's a draw!"
)

type BoardUI struct {
	Box      *tview.Box
	hint     *tview.TextView
	cfg      *config.Config
	styles   []tcell.Color
	eng      *engine.Engine
	queue    func(func())
	cursor   int
	thinking bool
	round    int // Incremented on every new game so stale computer moves are dropped
}

// NewBoard returns a board view for e. The human plays PlayerA and moves first.
// queue must run its argument on the UI event goroutine.
func NewBoard(queue func(func()), c *config.Config, hint *tview.TextView, e *engine.Engine) *BoardUI {
	board := &BoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		eng:    e,
		queue:  queue,
		cursor: game.Columns / 2,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		board.draw(screen, x, y)
		return x, y, width, height
	})
	board.refreshHint()
	return board
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.PlayerAColor),      // 1
		tcell.PaletteColor(c.Theme.Colors.PlayerBColor),      // 2
		tcell.PaletteColor(c.Theme.Colors.EmptyColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 4
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 5
		tcell.PaletteColor(c.Theme.Colors.WinColorBG),        // 6
	}
	g.cfg = c
}

// Cursor returns the selected column
func (g *BoardUI) Cursor() int {
	return g.cursor
}

// MoveCursor shifts the selected column by delta, stopping at the edges
func (g *BoardUI) MoveCursor(delta int) {
	g.cursor = min(max(g.cursor+delta, 0), game.Columns-1)
}

// Thinking reports whether a computer move is queued
func (g *BoardUI) Thinking() bool {
	return g.thinking
}

// DropAtCursor plays the selected column for the human
func (g *BoardUI) DropAtCursor() {
	g.Drop(g.cursor)
}

// Drop plays col for the human and queues the computer's reply. It is ignored
// while the computer is to move, and full columns leave the turn unchanged.
func (g *BoardUI) Drop(col int) {
	if g.thinking || g.eng.Turn() != human {
		return
	}
	if _, err := g.eng.Play(col); err != nil {
		log.Debug().Err(err).Msgf("rejected column %d", col+1)
		return
	}
	g.cursor = col
	if g.eng.Outcome().IsOver() {
		g.refreshHint()
		return
	}

	g.thinking = true
	g.refreshHint()
	round := g.round
	g.queue(func() {
		if round != g.round {
			return
		}
		g.reply()
	})
}

// reply runs the computer's search. It must be called on the UI event goroutine.
func (g *BoardUI) reply() {
	defer func() {
		g.thinking = false
		g.refreshHint()
	}()
	moveMetric, err := g.eng.Step()
	if err != nil {
		log.Error().Err(err).Msg("computer move failed")
		return
	}
	log.Debug().Msgf("computer played column %d with score %d after %d nodes", moveMetric.Column+1, moveMetric.Score, moveMetric.Nodes)
}

// NewGame clears the board and gives the first move back to the human
func (g *BoardUI) NewGame() {
	g.round++
	g.thinking = false
	g.eng.Reset()
	g.cursor = game.Columns / 2
	g.refreshHint()
}

// Result returns the end of game message, or an empty string while playing
func (g *BoardUI) Result() string {
	outcome := g.eng.Outcome()
	switch {
	case outcome.Status == game.Draw:
		return drawMsg
	case outcome.Winner == human:
		return youWin
	case outcome.Winner == computer:
		return aiWins
	default:
		return ""
	}
}

func (g *BoardUI) refreshHint() {
	if g.hint == nil {
		return
	}

	var statusLine, turnLine, controlsLine string
	history := g.eng.History()
	for i := max(len(history)-2, 0); i < len(history); i++ {
		who := "You"
		if history[i].Player == computer {
			who = "AI"
		}
		statusLine += fmt.Sprintf("  %s played column %d\n", who, history[i].Column+1)
	}
	if statusLine != "" {
		statusLine += "\n"
	}

	if result := g.Result(); result != "" {
		turnLine = fmt.Sprintf("  %s\n", result)
		controlsLine = "\n  n · new game   q · quit"
	} else {
		if g.thinking {
			turnLine = "  ◌ Thinking...\n"
		} else {
			turnLine = fmt.Sprintf("  %c Your move\n", g.cfg.Theme.Symbols.PlayerADisc)
		}
		controlsLine = `
  1-7 drop   h/l/←→ move   ⏎ drop
  n new game   ? rules   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

func (g *BoardUI) draw(screen tcell.Screen, x, y int) {
	board := g.eng.Board()
	base := tcell.StyleDefault.Background(g.styles[0])

	var winning game.Window
	won := false
	if g.eng.Outcome().Status == game.Win {
		winning, won = board.FindWindow(func(w game.Window) bool { return w.Owner() != game.Empty })
	}
	last := engine.Update{Column: game.NoColumn, Row: -1}
	if history := g.eng.History(); len(history) > 0 {
		last = history[len(history)-1]
	}

	// Column numbers with the cursor marker below them
	for col := 0; col < game.Columns; col++ {
		label := tcell.StyleDefault
		marker := ' '
		if col == g.cursor && g.Result() == "" {
			label = label.Foreground(g.styles[4]).Bold(true)
			marker = g.cfg.Theme.Symbols.Cursor
		}
		drawCell(screen, label, rune('1'+col), col, 0, x+1, y)
		drawCell(screen, tcell.StyleDefault.Foreground(g.styles[4]), marker, col, 1, x+1, y)
	}

	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Columns; col++ {
			style := base
			r := g.cfg.Theme.Symbols.EmptyCell
			switch board.At(row, col) {
			case game.PlayerA:
				r = g.cfg.Theme.Symbols.PlayerADisc
				style = style.Foreground(g.styles[1])
			case game.PlayerB:
				r = g.cfg.Theme.Symbols.PlayerBDisc
				style = style.Foreground(g.styles[2])
			default:
				style = style.Foreground(g.styles[3])
			}
			if won && inWindow(winning, row, col) {
				style = style.Background(g.styles[6])
			} else if g.cfg.Theme.DrawLastPlayedBackground && row == last.Row && col == last.Column {
				style = style.Background(g.styles[5])
			}
			drawCell(screen, style, r, col, row+2, x+1, y)
		}
	}
}

func inWindow(w game.Window, row, col int) bool {
	for i := 0; i < game.WindowLength; i++ {
		if w.Row+i*w.Dir.DRow == row && w.Col+i*w.Dir.DCol == col {
			return true
		}
	}
	return false
}

// drawCell draws a cell 2 characters wide so the grid looks square
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}
