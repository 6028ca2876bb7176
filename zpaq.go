package cdchunking

import "fmt"

// ZPAQ multipliers; arithmetic is performed modulo 2^32 via uint32 wraparound.
const (
	zpaqHM1 uint32 = 314_159_265
	zpaqHM2 uint32 = 271_828_182
)

// ZPAQStrategy implements a ZPAQ-like content-conditioned rolling hash: the
// multiplier chosen for each byte depends on whether the byte matches the
// one most recently seen after the same predecessor, a one-byte order-1
// predictor table.
type ZPAQStrategy struct {
	bits uint8
	h    uint32
	c1   byte
	o1   [256]byte
}

// NewZPAQStrategy returns a strategy cutting at an expected chunk size near
// 2^bits. bits must be between 1 and 32 inclusive.
func NewZPAQStrategy(bits uint8) (*ZPAQStrategy, error) {
	if bits == 0 || bits > 32 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBits, bits)
	}
	return &ZPAQStrategy{bits: bits}, nil
}

func (s *ZPAQStrategy) FindBoundary(view []byte) (int, bool) {
	threshold := uint32(1) << (32 - s.bits)
	for i, b := range view {
		if b == s.o1[s.c1] {
			s.h = zpaqHM1 * (s.h + uint32(b) + 1)
		} else {
			s.h = zpaqHM2 * (s.h + uint32(b) + 1)
		}
		s.o1[s.c1] = b
		s.c1 = b
		if s.h < threshold {
			return i, true
		}
	}
	return 0, false
}

func (s *ZPAQStrategy) Reset() {
	s.h = 0
	s.c1 = 0
	for i := range s.o1 {
		s.o1[i] = 0
	}
}
