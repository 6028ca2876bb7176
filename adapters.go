package cdchunking

import (
	"io"
)

// WholeChunksIter accumulates each chunk's bytes into an owned slice,
// built from an Engine's zero-copy events.
type WholeChunksIter struct {
	engine *Engine
	acc    []byte
	done   bool
}

func newWholeChunksIter(e *Engine) *WholeChunksIter {
	return &WholeChunksIter{engine: e}
}

// Next returns the next complete chunk as an owned slice, or io.EOF once
// the stream is exhausted. Unlike the Engine's raw events, the returned
// slice is safe to retain.
func (it *WholeChunksIter) Next() ([]byte, error) {
	if it.done {
		return nil, io.EOF
	}
	for {
		ev, err := it.engine.Next()
		if err != nil {
			it.done = true
			return nil, err
		}
		switch ev.Kind {
		case EventData:
			it.acc = append(it.acc, ev.Data...)
		case EventEnd:
			chunk := it.acc
			it.acc = nil
			return chunk, nil
		}
	}
}

// All drives the iterator to completion, returning every chunk in order or
// the first error encountered.
func (it *WholeChunksIter) All() ([][]byte, error) {
	var chunks [][]byte
	for {
		chunk, err := it.Next()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, chunk)
	}
}

// Seq adapts Next into a range-over-func iterator, so chunks can be
// consumed with a for/range loop. Iteration stops silently on io.EOF; any
// other error is yielded once as the err value, with a nil chunk, in the
// final iteration (the loop itself stops as soon as yield returns false or
// an error other than io.EOF is produced).
func (it *WholeChunksIter) Seq() func(yield func([]byte, error) bool) {
	return func(yield func([]byte, error) bool) {
		for {
			chunk, err := it.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// Descriptor identifies a chunk by its position in the input rather than
// by its contents.
type Descriptor struct {
	Start  uint64
	Length uint64
}

// DescriptorIter yields a Descriptor per chunk without retaining chunk
// bodies.
type DescriptorIter struct {
	engine *Engine
	offset uint64
	length uint64
	done   bool
}

func newDescriptorIter(e *Engine) *DescriptorIter {
	return &DescriptorIter{engine: e}
}

// Next returns the next chunk's descriptor, or io.EOF once exhausted.
func (it *DescriptorIter) Next() (Descriptor, error) {
	if it.done {
		return Descriptor{}, io.EOF
	}
	for {
		ev, err := it.engine.Next()
		if err != nil {
			it.done = true
			return Descriptor{}, err
		}
		switch ev.Kind {
		case EventData:
			it.length += uint64(len(ev.Data))
		case EventEnd:
			d := Descriptor{Start: it.offset, Length: it.length}
			it.offset += it.length
			it.length = 0
			return d, nil
		}
	}
}

// SlicesIter chunks an in-memory buffer directly, bypassing the Engine
// entirely: there is no reader, no internal buffer copy, and no event
// sequence, just repeated calls into the strategy over the same backing
// array.
type SlicesIter struct {
	strategy Strategy
	buf      []byte
	pos      int
	done     bool
}

// NewSlicesIter returns an iterator splitting buf according to strategy,
// without involving an Engine or reader.
func NewSlicesIter(strategy Strategy, buf []byte) *SlicesIter {
	return &SlicesIter{strategy: strategy, buf: buf}
}

// Next returns the next chunk as a slice of the original buffer (no
// copying), or io.EOF once the buffer is exhausted.
func (it *SlicesIter) Next() ([]byte, error) {
	if it.done {
		return nil, io.EOF
	}
	if it.pos == len(it.buf) {
		it.done = true
		return nil, io.EOF
	}
	view := it.buf[it.pos:]
	k, ok := it.strategy.FindBoundary(view)
	if ok {
		chunk := view[:k+1]
		it.pos += k + 1
		it.strategy.Reset()
		return chunk, nil
	}
	it.pos = len(it.buf)
	it.done = true
	return view, nil
}
