package solver

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lightsout/model"
	"github.com/sheikhrachel/go-lightsout/rules"
)

// maxEnumeratedNullity bounds the 2^k search for the shortest solution
const maxEnumeratedNullity = 16

// ErrUnsolvable is returned for boards no sequence of presses can clear
var ErrUnsolvable = errors.New("board has no solution")

// Solution is a set of presses that clears a board. Order does not matter.
type Solution struct {
	Presses []model.Coord `json:"presses"`
	// Nullity is the number of independent press patterns that leave any board unchanged
	Nullity int `json:"nullity"`
	// Minimal is false when the null space was too large to search exhaustively
	Minimal bool `json:"minimal"`
}

/*
Solve finds a set of presses that turns every light off.

Each cell gives one linear equation over GF(2): the presses in its neighbor set must
sum to its current state. The system is reduced by Gaussian elimination; among all
solutions the one with the fewest presses is returned.
*/
func Solve(g *model.Grid) (Solution, error) {
	var (
		rows = g.Rows()
		cols = g.Cols()
		n    = rows * cols
		aug  = n // column holding the lit state
	)

	matrix := make([]bitset, n)
	for i := range n {
		r, c := i/cols, i%cols
		row := newBitset(n + 1)
		rules.ApplyToggleRule(r, c, rows, cols, func(pr, pc int) {
			row.set(pr*cols + pc)
		})
		if g.Get(r, c) {
			row.set(aug)
		}
		matrix[i] = row
	}

	pivots := make([]int, 0, n)
	isPivot := make([]bool, n)
	rank := 0
	for col := 0; col < n && rank < n; col++ {
		sel := -1
		for k := rank; k < n; k++ {
			if matrix[k].get(col) {
				sel = k
				break
			}
		}
		if sel < 0 {
			continue
		}
		matrix[rank], matrix[sel] = matrix[sel], matrix[rank]
		for k := range n {
			if k != rank && matrix[k].get(col) {
				matrix[k].xor(matrix[rank])
			}
		}
		pivots = append(pivots, col)
		isPivot[col] = true
		rank++
	}

	for k := rank; k < n; k++ {
		if matrix[k].get(aug) {
			return Solution{}, errors.Wrapf(ErrUnsolvable, "[Solve] %dx%d board is inconsistent", rows, cols)
		}
	}

	// Particular solution with every free variable set to zero
	best := newBitset(n)
	for k, col := range pivots {
		if matrix[k].get(aug) {
			best.set(col)
		}
	}

	free := make([]int, 0, n-rank)
	for col := range n {
		if !isPivot[col] {
			free = append(free, col)
		}
	}

	minimal := len(free) <= maxEnumeratedNullity
	if minimal && len(free) > 0 {
		basis := make([]bitset, len(free))
		for i, f := range free {
			v := newBitset(n)
			v.set(f)
			for k, col := range pivots {
				if matrix[k].get(f) {
					v.set(col)
				}
			}
			basis[i] = v
		}

		particular := best.clone()
		bestCount := particular.count()
		for mask := 1; mask < 1<<len(free); mask++ {
			cand := particular.clone()
			for i := range basis {
				if mask&(1<<i) != 0 {
					cand.xor(basis[i])
				}
			}
			if c := cand.count(); c < bestCount {
				best, bestCount = cand, c
			}
		}
	}

	sol := Solution{
		Nullity: len(free),
		Minimal: minimal,
	}
	for i := range n {
		if best.get(i) {
			sol.Presses = append(sol.Presses, model.Coord{Row: i / cols, Col: i % cols})
		}
	}
	return sol, nil
}

// IsSolvable reports whether some sequence of presses clears g
func IsSolvable(g *model.Grid) bool {
	_, err := Solve(g)
	return err == nil
}

// Hint returns one press from the shortest solution. ok is false when the
// board is already won or cannot be solved.
func Hint(g *model.Grid) (model.Coord, bool) {
	sol, err := Solve(g)
	if err != nil || len(sol.Presses) == 0 {
		return model.Coord{}, false
	}
	return sol.Presses[0], true
}

// Apply presses every coordinate of the solution on a copy of g
func (s Solution) Apply(g *model.Grid) *model.Grid {
	out := g.Clone(nil)
	for _, c := range s.Presses {
		out = out.ToggleAround(c, nil)
	}
	return out
}
