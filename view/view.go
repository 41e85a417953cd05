package view

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/model"
)

// BoardView is the read-only picture of a session handed to front ends
type BoardView struct {
	Rows    int          `json:"rows"`
	Cols    int          `json:"cols"`
	Cells   [][]bool     `json:"cells"`
	Lit     int          `json:"lit"`
	Won     bool         `json:"won"`
	Toggles int          `json:"toggles"`
	Hint    *model.Coord `json:"hint,omitempty"`
}

// New snapshots the session. The hint is only computed when withHint is set.
func New(s *game.Session, withHint bool) BoardView {
	g := s.Grid()
	v := BoardView{
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Cells:   g.Cells(),
		Lit:     g.CountLit(),
		Won:     g.HasWon(),
		Toggles: s.Stats().Toggles,
	}
	if withHint && !v.Won {
		if c, ok := s.Hint(); ok {
			v.Hint = &c
		}
	}
	return v
}

// JSON encodes the view
func (v BoardView) JSON() ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "[JSON] failed to marshal board view")
	}
	return data, nil
}

// StatusLine summarises the game in one line, as shown under the board
func StatusLine(v BoardView, runtime time.Duration) string {
	status := "Playing"
	if v.Won {
		status = "Cleared!"
	}
	line := fmt.Sprintf("Lit: %d/%d | Toggles: %d | Status: %s | Time: %.0fs",
		v.Lit, v.Rows*v.Cols, v.Toggles, status, runtime.Seconds())
	if v.Hint != nil {
		line += fmt.Sprintf(" | Hint: %d %d", v.Hint.Row, v.Hint.Col)
	}
	return line
}

// CellAt maps a point to the cell drawn under it, for a board whose top-left
// corner sits at (originX, originY) and whose cells are cellW x cellH units.
// ok is false when the point misses the board.
func CellAt(px, py, originX, originY, cellW, cellH, rows, cols int) (model.Coord, bool) {
	if cellW <= 0 || cellH <= 0 {
		return model.Coord{}, false
	}
	dx, dy := px-originX, py-originY
	if dx < 0 || dy < 0 {
		return model.Coord{}, false
	}
	c := model.Coord{Row: dy / cellH, Col: dx / cellW}
	if c.Row >= rows || c.Col >= cols {
		return model.Coord{}, false
	}
	return c, true
}
