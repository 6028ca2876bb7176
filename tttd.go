package cdchunking

import "fmt"

// TTTDStrategy implements Two-Threshold Two-Divisor chunking: a Gear-style
// rolling hash drives two checks, a main divisor that cuts under normal
// conditions and a backup divisor that records a fallback cut position in
// case the main divisor doesn't trigger before the maximum chunk size is
// reached.
//
// Source: Eshghi, Kave et al. "A Framework for Analyzing and Improving
// Content-Based Chunking Algorithms." HP Labs Technical Report (2005).
type TTTDStrategy struct {
	divisor       uint32
	backupDivisor uint32
	minSize       uint64
	maxSize       uint64

	hash uint32
	pos  uint64

	// backupPos is the absolute (bytes-since-reset) position at which the
	// backup divisor last matched, or 0 if it hasn't matched since reset.
	haveBackup bool
	backupPos  uint64
}

// NewTTTDStrategy returns a TTTD strategy. minSize must be strictly less
// than maxSize.
func NewTTTDStrategy(divisor, backupDivisor uint32, minSize, maxSize uint64) (*TTTDStrategy, error) {
	if minSize >= maxSize {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrTTTDBoundsInvalid, minSize, maxSize)
	}
	return &TTTDStrategy{divisor: divisor, backupDivisor: backupDivisor, minSize: minSize, maxSize: maxSize}, nil
}

func (s *TTTDStrategy) FindBoundary(view []byte) (int, bool) {
	basePos := s.pos
	for i, b := range view {
		s.hash = (s.hash << 1) + gearTable[b]
		s.pos++

		if s.pos < s.minSize {
			continue
		}
		if s.pos >= s.maxSize {
			if s.haveBackup {
				// backupPos is an absolute position; it can only be
				// translated into an offset into this view if it was
				// recorded during this same call. A backup recorded in an
				// earlier, already-consumed call can't be used to cut
				// retroactively without violating the engine's "offset
				// must lie within the supplied view" invariant, so fall
				// back to cutting at the current byte instead.
				if s.backupPos > basePos {
					local := int(s.backupPos-basePos) - 1
					if local >= 0 && local < len(view) {
						s.haveBackup = false
						return local, true
					}
				}
			}
			return i, true
		}
		if s.hash%s.backupDivisor == s.backupDivisor-1 {
			s.haveBackup = true
			s.backupPos = s.pos
		}
		if s.hash%s.divisor == s.divisor-1 {
			return i, true
		}
	}
	return 0, false
}

func (s *TTTDStrategy) Reset() {
	s.hash = 0
	s.pos = 0
	s.haveBackup = false
	s.backupPos = 0
}
