package cdchunking

import (
	"fmt"
	"io"
)

// DefaultBufferSize is the Engine's internal buffer capacity used unless a
// caller explicitly requests a different size.
const DefaultBufferSize = 4096

// EventKind distinguishes the two events an Engine emits.
type EventKind uint8

const (
	// EventData carries a run of bytes belonging to the chunk currently
	// being emitted.
	EventData EventKind = iota
	// EventEnd marks the end of the current chunk; the next event (if
	// any) begins a new one.
	EventEnd
)

// Event is one step of an Engine's output. Data is a borrowed view into
// the Engine's internal buffer: it is valid only until the next call to
// Next, and must be copied by the caller if it needs to outlive that call.
type Event struct {
	Kind EventKind
	Data []byte
}

type engineStatus uint8

const (
	statusData engineStatus = iota
	statusAtSplit
	statusEnd
)

// Engine drives a Strategy across an io.Reader through a fixed internal
// buffer, emitting a zero-copy Data/End event sequence. It is a small
// state machine: Data while bytes are being emitted for the current
// chunk, AtSplit right after a boundary's final Data event, End once the
// matching End event has been produced.
//
// An Engine owns its reader and strategy exclusively; callers must not
// retain aliases to either once passed in, and Event.Data must not be
// retained past the next call to Next.
type Engine struct {
	r        io.Reader
	strategy Strategy
	buf      []byte
	pos      int
	len      int
	status   engineStatus
}

// NewEngine returns an Engine with the default buffer size.
func NewEngine(r io.Reader, s Strategy) *Engine {
	return NewEngineWithBufferSize(r, s, DefaultBufferSize)
}

// NewEngineWithBufferSize returns an Engine whose internal buffer has the
// given capacity. Tests use small sizes (e.g. 8) to force reads to land on
// arbitrary seams within a chunk.
func NewEngineWithBufferSize(r io.Reader, s Strategy, bufferSize int) *Engine {
	if bufferSize <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidBufferSize, bufferSize))
	}
	return &Engine{r: r, strategy: s, buf: make([]byte, bufferSize), status: statusEnd}
}

// Reset rebinds the Engine to a new reader and strategy, as if freshly
// constructed with the same buffer. Used by EnginePool to recycle Engine
// values across streams.
func (e *Engine) Reset(r io.Reader, s Strategy) {
	e.r = r
	e.strategy = s
	e.pos = 0
	e.len = 0
	e.status = statusEnd
}

// Next returns the next event in the stream. It returns io.EOF once the
// stream is fully drained (after the terminal End event, if one was
// emitted). Reader errors are returned unchanged.
func (e *Engine) Next() (Event, error) {
	if e.status == statusAtSplit {
		e.status = statusEnd
		e.strategy.Reset()
		return Event{Kind: EventEnd}, nil
	}

	if e.pos == e.len {
		n, err := e.r.Read(e.buf)
		if n == 0 {
			if err != nil && err != io.EOF {
				return Event{}, err
			}
			if e.status == statusData {
				e.status = statusEnd
				return Event{Kind: EventEnd}, nil
			}
			return Event{}, io.EOF
		}
		e.pos = 0
		e.len = n
		e.status = statusData
	}

	view := e.buf[e.pos:e.len]
	k, ok := e.strategy.FindBoundary(view)
	if ok {
		if k < 0 || k >= len(view) {
			panic(fmt.Errorf("cdchunking: strategy reported boundary offset %d outside view of length %d", k, len(view)))
		}
		data := view[:k+1]
		e.pos += k + 1
		e.status = statusAtSplit
		return Event{Kind: EventData, Data: data}, nil
	}

	data := view
	e.pos = e.len
	e.status = statusData
	return Event{Kind: EventData, Data: data}, nil
}
