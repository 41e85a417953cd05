package model

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const (
	T = true
	F = false
)

func mustGrid(t *testing.T, cells [][]bool) *Grid {
	t.Helper()
	g, err := FromCells(cells)
	if err != nil {
		t.Fatalf("unexpected FromCells error: %v", err)
	}
	return g
}

// diffCount counts cells that differ between two grids of equal shape
func diffCount(a, b *Grid) (n int) {
	for y := range a.Rows() {
		for x := range a.Cols() {
			if a.Get(y, x) != b.Get(y, x) {
				n++
			}
		}
	}
	return
}

func TestToggleAroundFlipsNeighborSet(t *testing.T) {
	g := mustGrid(t, [][]bool{
		{F, F, F},
		{T, T, F},
		{F, F, F},
	})
	want := mustGrid(t, [][]bool{
		{T, F, F},
		{F, F, F},
		{T, F, F},
	})

	got := g.ToggleAround(Coord{Row: 1, Col: 0}, nil)
	if !got.Equal(want) {
		t.Fatalf("expected\n%vgot\n%v", want, got)
	}
	// The source grid must not change
	if g.Get(0, 0) || !g.Get(1, 0) || !g.Get(1, 1) {
		t.Fatalf("expected original grid untouched, got\n%v", g)
	}
}

func TestToggleAroundAffectedCells(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
		want  int
	}{
		{"top-left corner", Coord{0, 0}, 3},
		{"bottom-right corner", Coord{2, 2}, 3},
		{"interior", Coord{1, 1}, 5},
		{"top edge", Coord{0, 1}, 4},
		{"target off board above", Coord{-1, 1}, 1},
		{"target off board left", Coord{1, -1}, 1},
		{"far off board", Coord{7, 7}, 0},
		{"diagonal off board", Coord{-1, -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(3, 3)
			next := g.ToggleAround(tt.coord, nil)
			if n := diffCount(g, next); n != tt.want {
				t.Fatalf("expected %d flipped cells, got %d", tt.want, n)
			}
		})
	}
}

func TestToggleAroundSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := Initialize(6, 4, 0.5, rng)
	if err != nil {
		t.Fatalf("unexpected Initialize error: %v", err)
	}
	pool := NewGridPool()

	for y := -1; y <= g.Rows(); y++ {
		for x := -1; x <= g.Cols(); x++ {
			c := Coord{Row: y, Col: x}
			once := g.ToggleAround(c, pool)
			twice := once.ToggleAround(c, pool)
			if !twice.Equal(g) {
				t.Fatalf("expected double toggle at %v to restore grid", c)
			}
			GridToPool(once, pool)
			GridToPool(twice, pool)
		}
	}
}

func TestDimensionsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := Initialize(4, 7, 0.3, rng)
	if err != nil {
		t.Fatalf("unexpected Initialize error: %v", err)
	}
	for i := 0; i < 200; i++ {
		g = g.ToggleAround(Coord{Row: rng.Intn(8) - 2, Col: rng.Intn(11) - 2}, nil)
		if g.Rows() != 4 || g.Cols() != 7 {
			t.Fatalf("expected 4x7 grid, got %dx%d", g.Rows(), g.Cols())
		}
	}
}

func TestHasWon(t *testing.T) {
	if !NewGrid(3, 5).HasWon() {
		t.Fatalf("expected empty grid to be won")
	}
	for y := range 3 {
		for x := range 5 {
			g := NewGrid(3, 5)
			g.set(y, x, true)
			if g.HasWon() {
				t.Fatalf("expected grid with lit (%d,%d) not to be won", y, x)
			}
		}
	}
}

func TestInitializeExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	off, err := Initialize(5, 5, 0, rng)
	if err != nil {
		t.Fatalf("unexpected Initialize error: %v", err)
	}
	if !off.HasWon() {
		t.Fatalf("expected p=0 to give an all-unlit grid, got\n%v", off)
	}

	on, err := Initialize(5, 5, 1, rng)
	if err != nil {
		t.Fatalf("unexpected Initialize error: %v", err)
	}
	if on.CountLit() != 25 {
		t.Fatalf("expected p=1 to light 25 cells, got %d", on.CountLit())
	}
}

func TestInitializeShape(t *testing.T) {
	g, err := Initialize(3, 8, 0.25, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected Initialize error: %v", err)
	}
	cells := g.Cells()
	if len(cells) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(cells))
	}
	for i, row := range cells {
		if len(row) != 8 {
			t.Fatalf("expected row %d to have 8 cells, got %d", i, len(row))
		}
	}
}

func TestInitializeNilRand(t *testing.T) {
	g, err := Initialize(2, 2, 1, nil)
	if err != nil {
		t.Fatalf("unexpected Initialize error: %v", err)
	}
	if g.CountLit() != 4 {
		t.Fatalf("expected 4 lit cells, got %d", g.CountLit())
	}
}

func TestInitializeRejectsBadParams(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
		p    float64
		want error
	}{
		{"zero rows", 0, 3, 0.5, ErrInvalidDimensions},
		{"negative cols", 3, -1, 0.5, ErrInvalidDimensions},
		{"negative probability", 3, 3, -0.1, ErrInvalidProbability},
		{"probability above one", 3, 3, 1.5, ErrInvalidProbability},
		{"NaN probability", 3, 3, math.NaN(), ErrInvalidProbability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Initialize(tt.rows, tt.cols, tt.p, rand.New(rand.NewSource(1)))
			if g != nil {
				t.Fatalf("expected no grid, got\n%v", g)
			}
			if errors.Cause(err) != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFromCellsRejectsRagged(t *testing.T) {
	if _, err := FromCells([][]bool{{T, F}, {T}}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := FromCells(nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestCellsIsACopy(t *testing.T) {
	g := mustGrid(t, [][]bool{{T, F}})
	cells := g.Cells()
	cells[0][0] = false
	if !g.Get(0, 0) {
		t.Fatalf("expected mutation of Cells() result not to reach the grid")
	}
}

func TestGridPoolReusesShape(t *testing.T) {
	pool := NewGridPool()
	g := mustGrid(t, [][]bool{{T, T, T}, {T, T, T}})
	GridToPool(g, pool)

	next := pool.Get(4, 2)
	if next.Rows() != 4 || next.Cols() != 2 {
		t.Fatalf("expected 4x2 grid, got %dx%d", next.Rows(), next.Cols())
	}
	if !next.HasWon() {
		t.Fatalf("expected pooled grid to come back cleared, got\n%v", next)
	}
	GridToPool(nil, pool)
	GridToPool(next, nil)
}

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	r.Display(mustGrid(t, [][]bool{{T, F}, {F, T}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[1], gridPosLit+gridPosUnlit) {
		t.Fatalf("expected row 0 to end with lit/unlit glyphs, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], gridPosUnlit+gridPosLit) {
		t.Fatalf("expected row 1 to end with unlit/lit glyphs, got %q", lines[2])
	}
}

func BenchmarkToggleAround(b *testing.B) {
	for _, size := range []int{5, 32, 128} {
		g := NewGrid(size, size)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			pool := NewGridPool()
			for i := 0; i < b.N; i++ {
				next := g.ToggleAround(Coord{Row: size / 2, Col: size / 2}, pool)
				GridToPool(next, pool)
			}
		})
	}
}
