package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/view"
)

const (
	outerPadding   = 16
	topPanelHeight = 40
	bottomPanel    = 28
	cellGap        = 4
)

type theme struct {
	Background color.Color
	Lit        color.Color
	Unlit      color.Color
	Hint       color.Color
	Text       color.Color
	Banner     color.Color
}

var defaultTheme = theme{
	Background: color.RGBA{24, 24, 32, 255},
	Lit:        color.RGBA{255, 214, 90, 255},
	Unlit:      color.RGBA{52, 56, 72, 255},
	Hint:       color.RGBA{90, 220, 120, 255},
	Text:       color.RGBA{220, 220, 230, 255},
	Banner:     color.RGBA{90, 220, 120, 255},
}

// Game adapts a session to ebiten's Update/Draw/Layout loop
type Game struct {
	session   *game.Session
	log       logrus.FieldLogger
	cellSize  int
	showHints bool
	face      font.Face
	th        theme
	message   string
}

// New builds the window game for a session
func New(session *game.Session, log logrus.FieldLogger) *Game {
	cfg := session.Config()
	return &Game{
		session:   session,
		log:       log.WithField("component", "gui"),
		cellSize:  cfg.CellSize,
		showHints: cfg.ShowHints,
		face:      basicfont.Face7x13,
		th:        defaultTheme,
	}
}

// WindowSize returns the pixel size the board needs
func (g *Game) WindowSize() (int, int) {
	grid := g.session.Grid()
	w := outerPadding*2 + grid.Cols()*g.cellSize
	h := topPanelHeight + outerPadding + grid.Rows()*g.cellSize + bottomPanel
	return max(w, 480), h
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.WindowSize()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.log.Info("player quit")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(); err != nil {
			g.log.WithError(err).Error("restart failed")
			g.message = err.Error()
		} else {
			g.message = ""
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHints = !g.showHints
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		grid := g.session.Grid()
		if c, ok := view.CellAt(mx, my, outerPadding, topPanelHeight, g.cellSize, g.cellSize, grid.Rows(), grid.Cols()); ok {
			g.session.Toggle(c)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.th.Background)
	v := view.New(g.session, g.showHints)

	text.Draw(screen, "LIGHTS OUT   click: toggle  H: hint  R: restart  Q: quit", g.face, outerPadding, 24, g.th.Text)

	for row := range v.Rows {
		for col := range v.Cols {
			clr := g.th.Unlit
			if v.Cells[row][col] {
				clr = g.th.Lit
			}
			px := float32(outerPadding + col*g.cellSize + cellGap/2)
			py := float32(topPanelHeight + row*g.cellSize + cellGap/2)
			size := float32(g.cellSize - cellGap)
			vector.DrawFilledRect(screen, px, py, size, size, clr, false)
			if v.Hint != nil && v.Hint.Row == row && v.Hint.Col == col {
				vector.StrokeRect(screen, px+2, py+2, size-4, size-4, 3, g.th.Hint, false)
			}
		}
	}

	_, h := g.WindowSize()
	status := view.StatusLine(v, g.session.Stats().Runtime())
	text.Draw(screen, status, g.face, outerPadding, h-10, g.th.Text)

	if v.Won {
		text.Draw(screen, "All lights are out! Press R for a new board.", g.face, outerPadding, topPanelHeight-4, g.th.Banner)
	}
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, outerPadding, h-bottomPanel)
	}
}

// Run opens the window and blocks until it is closed
func (g *Game) Run() error {
	w, h := g.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Lights Out %dx%d", g.session.Grid().Rows(), g.session.Grid().Cols()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(g)
}
