package cdchunking

import "fmt"

// BFBCStrategy implements Byte-pair Frequency-Based Chunking: once a
// minimum chunk size is reached, a two-byte sliding window is compared,
// in order, against an externally supplied list of frequent byte pairs;
// the first match cuts.
//
// Source: Saeed, A.S.M. and George, L.E. "Data Deduplication System Based
// on Content-Defined Chunking Using Bytes Pair Frequency Occurrence."
// Symmetry 2020, 12, 1841.
type BFBCStrategy struct {
	pairs   []uint16
	minSize int
	pos     int
	window  uint16
}

// NewBFBCStrategy returns a BFBC strategy checking pairs in order after
// minSize bytes. minSize must be at least 2, the width of the window.
// The analysis that determines which byte pairs occur frequently in a
// given dataset is an external concern; pairs supplies its result.
func NewBFBCStrategy(pairs [][2]byte, minSize int) (*BFBCStrategy, error) {
	if minSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBFBCMinTooSmall, minSize)
	}
	packed := make([]uint16, len(pairs))
	for i, p := range pairs {
		packed[i] = uint16(p[0])<<8 | uint16(p[1])
	}
	return &BFBCStrategy{pairs: packed, minSize: minSize}, nil
}

func (s *BFBCStrategy) FindBoundary(view []byte) (int, bool) {
	for i, b := range view {
		s.pos++
		s.window = s.window<<8 | uint16(b)
		if s.pos >= s.minSize {
			for _, pair := range s.pairs {
				if s.window == pair {
					return i, true
				}
			}
		}
	}
	return 0, false
}

func (s *BFBCStrategy) Reset() {
	s.pos = 0
	s.window = 0
}
