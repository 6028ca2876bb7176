package cdchunking

import (
	"fmt"
	"math"
)

// AEStrategy implements Asymmetric Extremum chunking: it tracks the
// maximum byte value seen since the last new maximum, and cuts a fixed
// window after the position where that maximum was set.
//
// Source: Zhang, Yucheng, et al. "AE: An asymmetric extremum content
// defined chunking algorithm for fast and bandwidth-efficient data
// deduplication." IEEE INFOCOM 2015.
type AEStrategy struct {
	window      uint64
	maxValue    byte
	maxPosition uint64
	pos         uint64
}

// NewAEStrategy returns an AE strategy with an explicit window size.
func NewAEStrategy(window uint64) (*AEStrategy, error) {
	if window == 0 {
		return nil, fmt.Errorf("%w: AE window size", ErrInvalidSize)
	}
	return &AEStrategy{window: window}, nil
}

// NewAEStrategyForTarget derives the window size from a target average
// chunk size, as round(target / (e - 1)), matching the derivation used by
// later AE variants.
func NewAEStrategyForTarget(target uint64) (*AEStrategy, error) {
	if target == 0 {
		return nil, fmt.Errorf("%w: AE target size", ErrInvalidSize)
	}
	w := uint64(math.Round(float64(target) / (math.E - 1)))
	if w == 0 {
		w = 1
	}
	return &AEStrategy{window: w}, nil
}

func (s *AEStrategy) FindBoundary(view []byte) (int, bool) {
	for i, b := range view {
		g := s.pos
		s.pos++
		if b <= s.maxValue {
			if g == s.maxPosition+s.window {
				return i, true
			}
		} else {
			s.maxValue = b
			s.maxPosition = g
		}
	}
	return 0, false
}

func (s *AEStrategy) Reset() {
	s.maxValue = 0
	s.maxPosition = 0
	s.pos = 0
}
