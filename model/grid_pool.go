package model

import "sync"

// GridToPool hands a replaced grid back for reuse. Either argument may be nil.
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

type shape struct{ rows, cols int }

// GridPool recycles grids replaced by toggles. Grids are bucketed by shape so a
// recycled grid never has to reallocate its rows.
type GridPool struct {
	mu      sync.Mutex
	buckets map[shape]*sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{buckets: make(map[shape]*sync.Pool)}
}

func (p *GridPool) bucket(rows, cols int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := shape{rows, cols}
	b, ok := p.buckets[key]
	if !ok {
		b = &sync.Pool{
			New: func() interface{} {
				return NewGrid(rows, cols)
			},
		}
		p.buckets[key] = b
	}
	return b
}

// Get returns an unlit grid of the given shape
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.bucket(rows, cols).Get().(*Grid)
	g.reset(rows, cols)
	return g
}

// Put returns a grid to the pool. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	if g.rows == 0 || g.cols == 0 {
		return
	}
	p.bucket(g.rows, g.cols).Put(g)
}
