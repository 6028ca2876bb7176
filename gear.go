package cdchunking

import (
	"fmt"
	"math/bits"
)

type gearState struct {
	hash uint32
	pos  uint64
}

func (s *gearState) reset() {
	s.hash = 0
	s.pos = 0
}

func (s *gearState) ingest(b byte) {
	s.hash = (s.hash << 1) + gearTable[b]
	s.pos++
}

// GearStrategy is the Gear rolling-hash strategy: a single 32-bit hash
// mixed with a lookup table, cutting when the hash bits selected by mask
// are all zero.
type GearStrategy struct {
	mask  uint32
	state gearState
}

// NewGearStrategy returns a strategy using mask to decide cuts. mask is
// conventionally chosen with the top log2(targetSize) bits set; see
// GearMaskForTargetSize.
func NewGearStrategy(mask uint32) *GearStrategy {
	return &GearStrategy{mask: mask}
}

// GearMaskForTargetSize derives a Gear mask from a target chunk size: the
// top n most-significant bits of the mask are set, where
// n = floor(log2(targetSize)). A larger target size yields more mask bits
// and thus a larger expected chunk length, since more bits must happen to
// be zero in the rolling hash before a cut is declared.
func GearMaskForTargetSize(targetSize uint64) uint32 {
	n := bits.Len64(targetSize) - 1
	if n <= 0 {
		return 0
	}
	if n >= 32 {
		return 0xffffffff
	}
	return ^uint32(0) << (32 - n)
}

func (s *GearStrategy) FindBoundary(view []byte) (int, bool) {
	for i, b := range view {
		s.state.ingest(b)
		if s.state.hash&s.mask == 0 {
			return i, true
		}
	}
	return 0, false
}

func (s *GearStrategy) Reset() {
	s.state.reset()
}

// NormalizedGearStrategy is the Gear strategy with the FastCDC-style
// normalized chunking modification: a stricter (more 1-bits) mask is used
// while below the target size, and a looser mask afterwards. This
// suppresses both very small and very large chunks relative to plain Gear.
type NormalizedGearStrategy struct {
	lowerMask  uint32
	upperMask  uint32
	targetSize uint64
	state      gearState
}

// NewNormalizedGearStrategy returns a normalized Gear strategy. lowerMask
// must have at least as many set bits as upperMask (it is applied while
// pos <= targetSize, to discourage early cuts); upperMask is applied
// afterwards, to encourage the chunk to close.
func NewNormalizedGearStrategy(lowerMask, upperMask uint32, targetSize uint64) (*NormalizedGearStrategy, error) {
	if targetSize == 0 {
		return nil, fmt.Errorf("%w: normalized gear target size", ErrInvalidSize)
	}
	return &NormalizedGearStrategy{lowerMask: lowerMask, upperMask: upperMask, targetSize: targetSize}, nil
}

func (s *NormalizedGearStrategy) FindBoundary(view []byte) (int, bool) {
	for i, b := range view {
		s.state.ingest(b)
		mask := s.lowerMask
		if s.state.pos > s.targetSize {
			mask = s.upperMask
		}
		if s.state.hash&mask == 0 {
			return i, true
		}
	}
	return 0, false
}

func (s *NormalizedGearStrategy) Reset() {
	s.state.reset()
}
