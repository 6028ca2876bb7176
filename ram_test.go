package cdchunking_test

import (
	"testing"

	"github.com/kalbasit/cdchunking"
	"github.com/stretchr/testify/require"
)

func TestRAMStrategyCutsFirstPostWindowNonDescending(t *testing.T) {
	s, err := cdchunking.NewRAMStrategy(4)
	require.NoError(t, err)

	// Prefix (positions 0..4) establishes max=0x09 at position 4 (g==W,
	// still within the window so it only updates max, it does not cut).
	// The first byte at g>4 that is >= 9 triggers the cut.
	data := []byte{0x01, 0x05, 0x02, 0x03, 0x09, 0x01, 0x02, 0x09, 0x03}
	offset, ok := s.FindBoundary(data)
	require.True(t, ok)
	require.Equal(t, 7, offset)
}

func TestRAMStrategyRejectsZeroWindow(t *testing.T) {
	_, err := cdchunking.NewRAMStrategy(0)
	require.ErrorIs(t, err, cdchunking.ErrInvalidSize)
}
