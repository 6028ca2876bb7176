package cdchunking

import "io"

// Builder composes a Strategy (optionally wrapped with a size limit) and
// constructs any of the package's consumption views from it. A Builder
// owns exactly one strategy instance; constructing a view hands that
// strategy to the resulting Engine/iterator and consumes the Builder, so
// a single Builder can only ever produce one live view. This preserves
// the one-owner invariant strategy state relies on — two views sharing a
// strategy would silently corrupt each other's cut decisions.
type Builder struct {
	strategy   Strategy
	bufferSize int
}

// NewChunker returns a Builder wrapping s.
func NewChunker(s Strategy) *Builder {
	return &Builder{strategy: s, bufferSize: DefaultBufferSize}
}

// MaxSize wraps the Builder's strategy in a SizeLimiter enforcing max as
// the maximum chunk length. It must be called before any view-constructing
// method.
func (b *Builder) MaxSize(max uint64) (*Builder, error) {
	b.mustNotBeConsumed()
	limited, err := NewSizeLimiter(b.strategy, max)
	if err != nil {
		return nil, err
	}
	b.strategy = limited
	return b, nil
}

// WithBufferSize overrides the buffer capacity used by views that involve
// an Engine. It has no effect on Slices, which does not use an Engine.
func (b *Builder) WithBufferSize(n int) *Builder {
	b.mustNotBeConsumed()
	b.bufferSize = n
	return b
}

func (b *Builder) mustNotBeConsumed() {
	if b.strategy == nil {
		panic(ErrBuilderConsumed)
	}
}

func (b *Builder) take() Strategy {
	b.mustNotBeConsumed()
	s := b.strategy
	b.strategy = nil
	return s
}

// Stream returns the zero-copy Data/End event stream driving the
// Builder's strategy over r. This consumes the Builder.
func (b *Builder) Stream(r io.Reader) *Engine {
	return NewEngineWithBufferSize(r, b.take(), b.bufferSize)
}

// WholeChunks returns an iterator yielding each chunk as an owned byte
// slice. This consumes the Builder.
func (b *Builder) WholeChunks(r io.Reader) *WholeChunksIter {
	return newWholeChunksIter(b.Stream(r))
}

// AllChunks drives a whole-chunks iterator to completion, returning every
// chunk or the first error encountered. This consumes the Builder.
func (b *Builder) AllChunks(r io.Reader) ([][]byte, error) {
	return b.WholeChunks(r).All()
}

// Chunks returns an iterator yielding a Descriptor per chunk, without
// retaining chunk bodies. This consumes the Builder.
func (b *Builder) Chunks(r io.Reader) *DescriptorIter {
	return newDescriptorIter(b.Stream(r))
}

// Slices returns an iterator splitting an in-memory buffer directly,
// bypassing the Engine. This consumes the Builder.
func (b *Builder) Slices(buf []byte) *SlicesIter {
	return NewSlicesIter(b.take(), buf)
}
