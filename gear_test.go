package cdchunking_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/kalbasit/cdchunking"
	"github.com/stretchr/testify/require"
)

func TestGearMaskForTargetSize(t *testing.T) {
	require.Equal(t, uint32(0xffff0000), cdchunking.GearMaskForTargetSize(1<<16))
	require.Equal(t, uint32(0), cdchunking.GearMaskForTargetSize(1))
	require.Equal(t, uint32(0), cdchunking.GearMaskForTargetSize(0))
}

func TestGearStrategyConcatenation(t *testing.T) {
	data := make([]byte, 200_000)
	rand.New(rand.NewSource(1)).Read(data)

	strategy := cdchunking.NewGearStrategy(cdchunking.GearMaskForTargetSize(8 * 1024))
	chunks, err := cdchunking.NewChunker(strategy).AllChunks(bytes.NewReader(data))
	require.NoError(t, err)

	var total []byte
	for _, c := range chunks {
		require.NotEmpty(t, c)
		total = append(total, c...)
	}
	require.Equal(t, data, total)
}

func TestNormalizedGearStrategySuppressesSmallChunks(t *testing.T) {
	data := make([]byte, 500_000)
	rand.New(rand.NewSource(2)).Read(data)

	strategy, err := cdchunking.NewNormalizedGearStrategy(
		cdchunking.GearMaskForTargetSize(16*1024),
		cdchunking.GearMaskForTargetSize(2*1024),
		16*1024,
	)
	require.NoError(t, err)

	descs, err := collectDescriptors(t, cdchunking.NewChunker(strategy).Chunks(bytes.NewReader(data)))
	require.NoError(t, err)
	require.NotEmpty(t, descs)

	var total uint64
	for _, d := range descs {
		total += d.Length
	}
	require.Equal(t, uint64(len(data)), total)

	// Plain Gear with the looser (upper) mask alone produces far more
	// chunks shorter than 2 KiB.
	countSmall := func(ds []cdchunking.Descriptor) int {
		n := 0
		for _, d := range ds {
			if d.Length < 2*1024 {
				n++
			}
		}
		return n
	}
	plain := cdchunking.NewGearStrategy(cdchunking.GearMaskForTargetSize(2 * 1024))
	plainDescs, err := collectDescriptors(t, cdchunking.NewChunker(plain).Chunks(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Less(t, countSmall(descs), countSmall(plainDescs))
}

func TestNormalizedGearStrategyRejectsZeroTarget(t *testing.T) {
	_, err := cdchunking.NewNormalizedGearStrategy(0xff000000, 0xffff0000, 0)
	require.ErrorIs(t, err, cdchunking.ErrInvalidSize)
}
