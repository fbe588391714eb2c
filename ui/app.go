package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4/config"
	"connect4/engine"
)

const RulesText = "The first player to form a horizontal, vertical, or diagonal line of four on the board wins."

type App struct {
	app   *tview.Application
	pages *tview.Pages
	Board *BoardUI
}

// NewApp lays out the board, the status panel and the rules dialog for a
// game driven by e
func NewApp(c *config.Config, e *engine.Engine) *App {
	a := &App{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
	}
	a.pages.SetBorder(true).SetTitle(" Connect Four ")

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	// QueueUpdateDraw must not be called directly from the event goroutine
	queue := func(f func()) {
		go a.app.QueueUpdateDraw(f)
	}
	a.Board = NewBoard(queue, c, hint, e)
	a.Board.Box.SetInputCapture(keyHandler(a.Board, a.showRules, a.app.Stop))

	layout := tview.NewFlex().SetDirection(tview.FlexRow)
	layout.AddItem(a.Board.Box, 2+6+1, 0, true)
	layout.AddItem(hint, 0, 1, false)

	rules := tview.NewModal().
		SetText(RulesText).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.pages.HidePage("rules")
			a.app.SetFocus(a.Board.Box)
		})

	a.pages.AddPage("game", layout, true, true)
	a.pages.AddPage("rules", rules, true, false)
	return a
}

func (a *App) showRules() {
	a.pages.ShowPage("rules")
}

// Run blocks until the player quits
func (a *App) Run() error {
	return a.app.SetRoot(a.pages, true).Run()
}

func keyHandler(board *BoardUI, showRules, quit func()) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft:
			board.MoveCursor(-1)
		case tcell.KeyRight:
			board.MoveCursor(1)
		case tcell.KeyEnter:
			board.DropAtCursor()
		case tcell.KeyRune:
			switch r := event.Rune(); {
			case r >= '1' && r <= '7':
				board.Drop(int(r - '1'))
			case r == 'h':
				board.MoveCursor(-1)
			case r == 'l':
				board.MoveCursor(1)
			case r == ' ':
				board.DropAtCursor()
			case r == 'n':
				board.NewGame()
			case r == '?':
				showRules()
			case r == 'q':
				quit()
			default:
				return event
			}
		default:
			return event
		}
		return nil
	}
}
