package solver

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lightsout/model"
)

// SurveyParams describes a batch of random boards to analyse
type SurveyParams struct {
	Rows             int
	Cols             int
	LightProbability float64
	Boards           int
	Workers          int
	Seed             int64
}

// SurveyResult summarises how many random starting boards can be cleared
type SurveyResult struct {
	Boards         int           `json:"boards"`
	Solvable       int           `json:"solvable"`
	AlreadyWon     int           `json:"already_won"`
	MaxPresses     int           `json:"max_presses"`
	AveragePresses float64       `json:"average_presses"`
	PressHistogram map[int]int   `json:"press_histogram"`
	Duration       time.Duration `json:"duration"`
}

// SolvableRatio returns the fraction of surveyed boards that had a solution
func (r SurveyResult) SolvableRatio() float64 {
	if r.Boards == 0 {
		return 0
	}
	return float64(r.Solvable) / float64(r.Boards)
}

/*
Survey generates p.Boards random boards and solves each one, spreading the work
across p.Workers goroutines.

Board i is drawn from its own source seeded with p.Seed+i, so a survey is
reproducible for a given seed regardless of the worker count.
*/
func Survey(ctx context.Context, p SurveyParams) (SurveyResult, error) {
	if err := model.ValidateParams(p.Rows, p.Cols, p.LightProbability); err != nil {
		return SurveyResult{}, errors.Wrap(err, "[Survey] invalid board parameters")
	}
	if p.Boards < 0 {
		return SurveyResult{}, errors.Errorf("[Survey] board count must not be negative, got %d", p.Boards)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		start      = time.Now()
		mu         sync.Mutex
		result     = SurveyResult{Boards: p.Boards, PressHistogram: make(map[int]int)}
		totalPress int
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range p.Boards {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g, err := model.Initialize(p.Rows, p.Cols, p.LightProbability, rand.New(rand.NewSource(seed+int64(i))))
			if err != nil {
				return err
			}
			sol, err := Solve(g)

			mu.Lock()
			defer mu.Unlock()
			if g.HasWon() {
				result.AlreadyWon++
			}
			if err != nil {
				return nil
			}
			presses := len(sol.Presses)
			result.Solvable++
			result.PressHistogram[presses]++
			result.MaxPresses = max(result.MaxPresses, presses)
			totalPress += presses
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return SurveyResult{}, errors.Wrap(err, "[Survey] survey aborted")
	}
	if err := ctx.Err(); err != nil {
		return SurveyResult{}, errors.Wrap(err, "[Survey] survey aborted")
	}

	if result.Solvable > 0 {
		result.AveragePresses = float64(totalPress) / float64(result.Solvable)
	}
	result.Duration = time.Since(start)
	return result, nil
}
