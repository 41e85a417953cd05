package tui

import (
	"io"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/model"
	"github.com/sheikhrachel/go-lightsout/utils"
)

func newTestUI(t *testing.T, rows, cols int, p float64) (*UI, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("unexpected screen Init error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	cfg := utils.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.LightProbability = rows, cols, p
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := game.NewSession(cfg, rand.New(rand.NewSource(4)), log)
	if err != nil {
		t.Fatalf("unexpected NewSession error: %v", err)
	}
	return New(screen, s, log), screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDrawShowsLitCells(t *testing.T) {
	ui, screen := newTestUI(t, 3, 3, 1)
	ui.Draw()

	for row := range 3 {
		for col := range 3 {
			if r := runeAt(screen, boardX+col*cellW, boardY+row); r != '█' {
				t.Fatalf("expected lit glyph at (%d,%d), got %q", row, col, r)
			}
		}
	}
}

func TestKeyboardToggle(t *testing.T) {
	ui, screen := newTestUI(t, 3, 3, 1)

	ui.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	ui.HandleEvent(key('d'))
	if ui.Cursor() != (model.Coord{Row: 1, Col: 1}) {
		t.Fatalf("expected cursor at (1,1), got %v", ui.Cursor())
	}
	ui.HandleEvent(key(' '))
	ui.Draw()

	if got := ui.session.Grid().CountLit(); got != 4 {
		t.Fatalf("expected 4 lit cells after interior press, got %d", got)
	}
	if r := runeAt(screen, boardX+1*cellW, boardY+1); r != '·' {
		t.Fatalf("expected center unlit, got %q", r)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	ui, _ := newTestUI(t, 2, 2, 0)
	for i := 0; i < 5; i++ {
		ui.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
		ui.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	}
	if ui.Cursor() != (model.Coord{}) {
		t.Fatalf("expected cursor clamped at origin, got %v", ui.Cursor())
	}
	for i := 0; i < 5; i++ {
		ui.HandleEvent(key('s'))
		ui.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	}
	if ui.Cursor() != (model.Coord{Row: 1, Col: 1}) {
		t.Fatalf("expected cursor clamped at (1,1), got %v", ui.Cursor())
	}
}

func TestMouseTogglesOncePerClick(t *testing.T) {
	ui, _ := newTestUI(t, 3, 3, 1)
	x, y := boardX+2*cellW+1, boardY+2

	ui.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	// Holding the button while moving must not toggle again
	ui.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	ui.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

	if ui.session.Stats().Toggles != 1 {
		t.Fatalf("expected 1 toggle, got %d", ui.session.Stats().Toggles)
	}
	if got := ui.session.Grid().CountLit(); got != 6 {
		t.Fatalf("expected corner press to leave 6 lit, got %d", got)
	}
	if ui.Cursor() != (model.Coord{Row: 2, Col: 2}) {
		t.Fatalf("expected cursor to follow the click, got %v", ui.Cursor())
	}

	// Clicks outside the board do nothing
	ui.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if ui.session.Stats().Toggles != 1 {
		t.Fatalf("expected off-board click to be ignored")
	}
}

func TestRestartAndHintKeys(t *testing.T) {
	ui, _ := newTestUI(t, 3, 3, 0)
	if ui.HandleEvent(key('r')) {
		t.Fatalf("expected restart not to quit")
	}
	if ui.session.Stats().Restarts != 1 {
		t.Fatalf("expected 1 restart, got %d", ui.session.Stats().Restarts)
	}

	ui.HandleEvent(key('h'))
	if !ui.showHints {
		t.Fatalf("expected hints enabled")
	}
}

func TestQuitKeys(t *testing.T) {
	ui, _ := newTestUI(t, 3, 3, 0)
	for _, ev := range []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if !ui.HandleEvent(ev) {
			t.Fatalf("expected %v to quit", ev)
		}
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	ui, screen := newTestUI(t, 3, 3, 0.5)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := ui.Run(); err != nil {
		t.Fatalf("unexpected Run error: %v", err)
	}
}
