package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lightsout/rules"
)

// Coord addresses a single cell by row and column
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Grid represents the puzzle board. Dimensions are fixed once created.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates a new unlit grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// FromCells builds a grid from a row-major matrix, copying it
func FromCells(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[FromCells] empty matrix")
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidDimensions, "[FromCells] row %d has %d cells, expected %d", i, len(row), cols)
		}
	}

	g := NewGrid(len(cells), cols)
	for y, row := range cells {
		copy(g.cells[y], row)
	}
	return g, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether c addresses a cell of the grid
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns whether the cell is lit. Out of range cells read as unlit.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row][col]
}

// set is only used while a grid is being built, before anyone else can see it
func (g *Grid) set(row, col int, lit bool) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.cols {
		g.cells[row][col] = lit
	}
}

// reset resizes the grid and clears every cell
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Cells returns a deep copy of the cell matrix
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for y := range g.rows {
		out[y] = make([]bool, g.cols)
		copy(out[y], g.cells[y])
	}
	return out
}

// Clone copies the grid, drawing the copy from pool when one is given
func (g *Grid) Clone(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.rows, g.cols)
	} else {
		next = NewGrid(g.rows, g.cols)
	}
	for y := range g.rows {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// ToggleAround returns a new grid with the cell at c and its orthogonal
// neighbors inverted. Positions off the board are skipped. g is left untouched.
func (g *Grid) ToggleAround(c Coord, pool *GridPool) *Grid {
	next := g.Clone(pool)
	rules.ApplyToggleRule(c.Row, c.Col, g.rows, g.cols, func(row, col int) {
		next.cells[row][col] = !next.cells[row][col]
	})
	return next
}

// HasWon reports whether every cell is unlit
func (g *Grid) HasWon() bool {
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLit returns the total number of lit cells
func (g *Grid) CountLit() (count int) {
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid with O for lit and . for unlit, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
