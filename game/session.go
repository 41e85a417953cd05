package game

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-lightsout/model"
	"github.com/sheikhrachel/go-lightsout/rules"
	"github.com/sheikhrachel/go-lightsout/solver"
	"github.com/sheikhrachel/go-lightsout/utils"
)

// ErrNoSolvableBoard is returned when RequireSolvable is set and no solvable
// board turned up within MaxRerollAttempts draws
var ErrNoSolvableBoard = errors.New("no solvable board found")

/*
Session owns the board of one game and everything needed to restart it.

A session is not safe for concurrent use: the front end's event loop is its
only caller, so one toggle always completes before the next begins.
*/
type Session struct {
	config utils.Config
	rng    *rand.Rand
	pool   *model.GridPool
	grid   *model.Grid
	stats  *utils.Stats
	log    logrus.FieldLogger
}

// NewSession validates cfg and deals the first board. A nil rng is seeded from
// cfg.Seed; a nil log discards output.
func NewSession(cfg utils.Config, rng *rand.Rand, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSession] invalid configuration")
	}
	if rng == nil {
		rng = model.NewRand(cfg.Seed)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	s := &Session{
		config: cfg,
		rng:    rng,
		pool:   model.NewGridPool(),
		stats:  utils.NewStats(),
		log:    log.WithField("component", "session"),
	}
	grid, err := s.deal()
	if err != nil {
		return nil, err
	}
	s.grid = grid
	s.log.WithFields(logrus.Fields{
		"rows": cfg.Rows,
		"cols": cfg.Cols,
		"lit":  grid.CountLit(),
	}).Info("game started")
	return s, nil
}

// deal draws a fresh board, re-rolling unsolvable ones when configured to
func (s *Session) deal() (*model.Grid, error) {
	attempts := 1
	if s.config.RequireSolvable {
		attempts = s.config.MaxRerollAttempts
	}

	for i := 0; i < attempts; i++ {
		g, err := model.Initialize(s.config.Rows, s.config.Cols, s.config.LightProbability, s.rng)
		if err != nil {
			return nil, errors.Wrap(err, "[deal] failed to initialize board")
		}
		if !s.config.RequireSolvable || solver.IsSolvable(g) {
			if i > 0 {
				s.log.WithField("rerolls", i).Debug("skipped unsolvable boards")
			}
			return g, nil
		}
	}
	return nil, errors.Wrapf(ErrNoSolvableBoard, "[deal] gave up after %d attempts", attempts)
}

// Grid returns the current board. It is read-only and only valid until the
// next Toggle or Restart, after which it may be recycled.
func (s *Session) Grid() *model.Grid {
	return s.grid
}

// Config returns the configuration the session was built with
func (s *Session) Config() utils.Config {
	return s.config
}

// Stats returns the running session statistics
func (s *Session) Stats() *utils.Stats {
	return s.stats
}

// HasWon reports whether every light of the current board is off
func (s *Session) HasWon() bool {
	return s.grid.HasWon()
}

/*
Toggle presses the cell at c and reports whether the board is won afterwards.

A won board ignores further presses until Restart. A press whose whole neighbor
set lies off the board changes nothing and is not counted.
*/
func (s *Session) Toggle(c model.Coord) bool {
	if s.grid.HasWon() {
		return true
	}

	if rules.NeighborSetSize(c.Row, c.Col, s.grid.Rows(), s.grid.Cols()) == 0 {
		return false
	}

	next := s.grid.ToggleAround(c, s.pool)

	prev := s.grid
	s.grid = next
	model.GridToPool(prev, s.pool)
	s.stats.RecordToggle()

	s.log.WithFields(logrus.Fields{
		"row": c.Row,
		"col": c.Col,
		"lit": next.CountLit(),
	}).Debug("toggled")

	if next.HasWon() {
		s.stats.RecordWin()
		s.log.WithFields(logrus.Fields{
			"toggles":  s.stats.Toggles,
			"duration": s.stats.LastWinTime,
		}).Info("board cleared")
		return true
	}
	return false
}

// Restart replaces the board with a freshly dealt one
func (s *Session) Restart() error {
	grid, err := s.deal()
	if err != nil {
		return errors.Wrap(err, "[Restart] failed to deal board")
	}
	prev := s.grid
	s.grid = grid
	model.GridToPool(prev, s.pool)
	s.stats.RecordRestart()
	s.log.WithField("lit", grid.CountLit()).Info("game restarted")
	return nil
}

// Hint suggests a press from the shortest known solution of the current board
func (s *Session) Hint() (model.Coord, bool) {
	return solver.Hint(s.grid)
}
