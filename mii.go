package cdchunking

import "fmt"

// MIIStrategy implements Minimal Incremental Interval chunking: it counts
// how many consecutive bytes have each been strictly greater than the byte
// before them, and cuts when that count reaches threshold.
type MIIStrategy struct {
	threshold uint32
	runLen    uint32
	havePrev  bool
	prev      byte
}

// NewMIIStrategy returns an MII strategy cutting at the threshold-th
// consecutive strict increase (a run of threshold+1 increasing bytes).
func NewMIIStrategy(threshold uint32) (*MIIStrategy, error) {
	if threshold == 0 {
		return nil, fmt.Errorf("%w: MII threshold", ErrInvalidThreshold)
	}
	return &MIIStrategy{threshold: threshold}, nil
}

func (s *MIIStrategy) FindBoundary(view []byte) (int, bool) {
	for i, b := range view {
		if s.havePrev && b > s.prev {
			s.runLen++
			if s.runLen == s.threshold {
				return i, true
			}
		} else {
			s.runLen = 0
		}
		s.havePrev = true
		s.prev = b
	}
	return 0, false
}

func (s *MIIStrategy) Reset() {
	s.runLen = 0
	s.havePrev = false
	s.prev = 0
}
