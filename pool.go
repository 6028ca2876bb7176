package cdchunking

import (
	"io"
	"sync"
)

// EnginePool recycles Engine values across a high-throughput pipeline that
// processes many streams with the same strategy configuration. Strategies
// are stateful and cannot be shared across pooled engines, so the pool
// holds a factory rather than a template instance; each Get constructs a
// fresh strategy for the engine it returns.
type EnginePool struct {
	pool        sync.Pool
	newStrategy func() Strategy
	bufferSize  int
}

// NewEnginePool returns a pool whose engines use newStrategy to build a
// fresh Strategy for each checkout and bufferSize for the Engine's
// internal buffer.
func NewEnginePool(newStrategy func() Strategy, bufferSize int) (*EnginePool, error) {
	if bufferSize <= 0 {
		return nil, ErrInvalidBufferSize
	}
	return &EnginePool{newStrategy: newStrategy, bufferSize: bufferSize}, nil
}

// Get retrieves an Engine from the pool, or creates a new one if the pool
// is empty. The returned Engine is reset onto r with a freshly constructed
// strategy and ready to use.
func (p *EnginePool) Get(r io.Reader) *Engine {
	if v := p.pool.Get(); v != nil {
		e := v.(*Engine)
		e.Reset(r, p.newStrategy())
		return e
	}
	return NewEngineWithBufferSize(r, p.newStrategy(), p.bufferSize)
}

// Put returns an Engine to the pool for reuse. The Engine must not be used
// again by the caller after this call.
func (p *EnginePool) Put(e *Engine) {
	e.r = nil
	e.strategy = nil
	p.pool.Put(e)
}
