package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/model"
	"github.com/sheikhrachel/go-lightsout/view"
)

// Board placement on screen, in terminal cells. Each board cell is two columns
// wide so it reads roughly square.
const (
	boardX = 4
	boardY = 3
	cellW  = 2
	cellH  = 1

	helpText = "arrows/wasd move  space/enter toggle  click toggle  h hint  r restart  q quit"
)

var (
	styleDefault = tcell.StyleDefault
	styleLit     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleUnlit   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// UI drives a session from a tcell screen
type UI struct {
	screen    tcell.Screen
	session   *game.Session
	log       logrus.FieldLogger
	cursor    model.Coord
	showHints bool
	mouseDown bool
	message   string
}

// New wraps an initialised screen. The caller owns screen Init and Fini.
func New(screen tcell.Screen, session *game.Session, log logrus.FieldLogger) *UI {
	return &UI{
		screen:    screen,
		session:   session,
		log:       log.WithField("component", "tui"),
		showHints: session.Config().ShowHints,
	}
}

// Run draws and handles events until the player quits or the screen is closed
func (u *UI) Run() error {
	for {
		u.Draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.HandleEvent(ev) {
			u.log.Info("player quit")
			return nil
		}
	}
}

// Cursor returns the keyboard cursor position
func (u *UI) Cursor() model.Coord {
	return u.cursor
}

// HandleEvent applies one event and reports whether the player asked to quit
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
	case tcell.KeyDown:
		u.moveCursor(1, 0)
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
	case tcell.KeyRight:
		u.moveCursor(0, 1)
	case tcell.KeyEnter:
		u.press(u.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			u.moveCursor(-1, 0)
		case 's', 'S':
			u.moveCursor(1, 0)
		case 'a', 'A':
			u.moveCursor(0, -1)
		case 'd', 'D':
			u.moveCursor(0, 1)
		case ' ':
			u.press(u.cursor)
		case 'h', 'H':
			u.showHints = !u.showHints
		case 'r', 'R':
			u.restart()
		}
	}
	return false
}

// handleMouse toggles on the press edge of the left button only, so drags and
// releases do not toggle again
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !u.mouseDown {
		x, y := ev.Position()
		g := u.session.Grid()
		if c, ok := view.CellAt(x, y, boardX, boardY, cellW, cellH, g.Rows(), g.Cols()); ok {
			u.cursor = c
			u.press(c)
		}
	}
	u.mouseDown = down
}

func (u *UI) moveCursor(dRow, dCol int) {
	g := u.session.Grid()
	u.cursor.Row = min(max(u.cursor.Row+dRow, 0), g.Rows()-1)
	u.cursor.Col = min(max(u.cursor.Col+dCol, 0), g.Cols()-1)
}

func (u *UI) press(c model.Coord) {
	u.message = ""
	u.session.Toggle(c)
}

func (u *UI) restart() {
	if err := u.session.Restart(); err != nil {
		u.log.WithError(err).Error("restart failed")
		u.message = err.Error()
		return
	}
	u.message = ""
}

// Draw renders the board, status line and any banner
func (u *UI) Draw() {
	u.screen.Clear()

	v := view.New(u.session, u.showHints)
	u.drawText(0, 0, "LIGHTS OUT", styleBanner)
	u.drawText(0, 1, helpText, styleDefault)

	for col := range v.Cols {
		u.drawText(boardX+col*cellW, boardY-1, string(rune('0'+col%10)), styleUnlit)
	}
	for row := range v.Rows {
		u.drawText(boardX-3, boardY+row, string(rune('0'+row%10)), styleUnlit)
		for col := range v.Cols {
			u.drawCell(v, row, col)
		}
	}

	statusY := boardY + v.Rows + 1
	u.drawText(0, statusY, view.StatusLine(v, u.session.Stats().Runtime()), styleDefault)
	if v.Won {
		u.drawText(0, statusY+1, "All lights are out! Press r for a new board or q to quit.", styleBanner)
	}
	if u.message != "" {
		u.drawText(0, statusY+2, u.message, styleError)
	}
	u.screen.Show()
}

func (u *UI) drawCell(v view.BoardView, row, col int) {
	glyph, style := '·', styleUnlit
	if v.Cells[row][col] {
		glyph, style = '█', styleLit
	}
	if v.Hint != nil && v.Hint.Row == row && v.Hint.Col == col {
		style = styleHint
	}
	if u.cursor.Row == row && u.cursor.Col == col {
		style = style.Reverse(true)
	}

	x, y := boardX+col*cellW, boardY+row*cellH
	for i := range cellW {
		u.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
