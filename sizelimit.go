package cdchunking

import "fmt"

// SizeLimiter wraps another Strategy to enforce a maximum chunk length. It
// satisfies Strategy itself, so it nests like any other strategy: a forced
// cut at the size limit resets both the limiter's own position counter and
// the wrapped strategy, meaning natural boundaries the inner strategy
// would otherwise have emitted past a forced cut can disappear. This is
// intentional.
type SizeLimiter struct {
	inner Strategy
	max   uint64
	pos   uint64
}

// NewSizeLimiter wraps inner so that no chunk it reports exceeds max bytes.
func NewSizeLimiter(inner Strategy, max uint64) (*SizeLimiter, error) {
	if max == 0 {
		return nil, fmt.Errorf("%w", ErrInvalidMaxSize)
	}
	return &SizeLimiter{inner: inner, max: max}, nil
}

func (s *SizeLimiter) FindBoundary(view []byte) (int, bool) {
	left := s.max - s.pos
	v := view
	coversAllowance := uint64(len(v)) >= left
	if coversAllowance {
		v = v[:left]
	}

	if k, ok := s.inner.FindBoundary(v); ok {
		s.pos += uint64(k) + 1
		return k, true
	}

	if coversAllowance {
		// The inner strategy consumed the entire allowance without
		// cutting; force one at the last byte it was allowed to see.
		s.pos += uint64(len(v))
		return len(v) - 1, true
	}

	s.pos += uint64(len(v))
	return 0, false
}

func (s *SizeLimiter) Reset() {
	s.pos = 0
	s.inner.Reset()
}
