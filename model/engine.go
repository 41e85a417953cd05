package model

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when rows or cols is not positive
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidProbability is returned when the light probability is outside [0,1]
	ErrInvalidProbability = errors.New("light probability must be within [0,1]")
)

// NewRand returns a random source seeded with seed, or with the clock when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ValidateParams checks the construction parameters of a grid
func ValidateParams(rows, cols int, lightProbability float64) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[ValidateParams] got %dx%d", rows, cols)
	}
	if math.IsNaN(lightProbability) || lightProbability < 0 || lightProbability > 1 {
		return errors.Wrapf(ErrInvalidProbability, "[ValidateParams] got %v", lightProbability)
	}
	return nil
}

/*
Initialize creates a rows x cols grid where every cell is independently lit with
probability lightProbability.

Invalid parameters are rejected rather than clamped, so no grid of a bad shape is
ever produced. A nil rng is replaced by a clock-seeded source.
*/
func Initialize(rows, cols int, lightProbability float64, rng *rand.Rand) (*Grid, error) {
	if err := ValidateParams(rows, cols, lightProbability); err != nil {
		return nil, errors.Wrap(err, "[Initialize] invalid parameters")
	}
	if rng == nil {
		rng = NewRand(0)
	}

	g := NewGrid(rows, cols)
	g.randomize(rng, lightProbability)
	return g, nil
}

// randomize fills a freshly built grid with lit cells at the given density
func (g *Grid) randomize(rng *rand.Rand, density float64) {
	for y := range g.rows {
		for x := range g.cols {
			g.set(y, x, rng.Float64() < density)
		}
	}
}
