package cdchunking_test

import (
	"testing"

	"github.com/kalbasit/cdchunking"
	"github.com/stretchr/testify/require"
)

func TestAEStrategyCutsAfterWindowPastMaximum(t *testing.T) {
	s, err := cdchunking.NewAEStrategy(3)
	require.NoError(t, err)

	// Maximum is 0x09 at position 4; window of 3 means the cut lands at
	// absolute position 7, i.e. view index 7.
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x09, 0x01, 0x02, 0x01, 0x02}
	offset, ok := s.FindBoundary(data)
	require.True(t, ok)
	require.Equal(t, 7, offset)
}

func TestAEStrategyForTargetDerivesWindow(t *testing.T) {
	s, err := cdchunking.NewAEStrategyForTarget(1000)
	require.NoError(t, err)
	require.NotNil(t, s)

	// round(1000 / (e - 1)) = 582: with the maximum at position 0, the cut
	// lands at position 582.
	data := make([]byte, 600)
	data[0] = 0xFF
	offset, ok := s.FindBoundary(data)
	require.True(t, ok)
	require.Equal(t, 582, offset)
}

func TestAEStrategyRejectsZeroWindow(t *testing.T) {
	_, err := cdchunking.NewAEStrategy(0)
	require.ErrorIs(t, err, cdchunking.ErrInvalidSize)
}
