package cdchunking_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/kalbasit/cdchunking"
)

func FuzzGearStrategy(f *testing.F) {
	f.Add([]byte("content to be chunked into multiple pieces to verify the engine works correctly"), uint32(16))
	f.Add(make([]byte, 1024), uint32(8))

	f.Fuzz(func(t *testing.T, data []byte, maskBits uint32) {
		if maskBits > 32 {
			maskBits = maskBits % 33
		}
		var mask uint32
		if maskBits > 0 {
			mask = ^uint32(0) << (32 - maskBits)
		}
		strategy := cdchunking.NewGearStrategy(mask)

		chunker := cdchunking.NewChunker(strategy).WithBufferSize(8)
		c, err := chunker.MaxSize(1 << 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		it := c.WholeChunks(bytes.NewReader(data))

		var reconstructed []byte
		for {
			chunk, err := it.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(chunk) == 0 {
				t.Fatal("chunk length is 0")
			}
			if len(chunk) > 1<<20 {
				t.Fatalf("chunk length %d exceeds max size", len(chunk))
			}
			reconstructed = append(reconstructed, chunk...)
		}

		if !bytes.Equal(data, reconstructed) {
			t.Error("reconstructed data does not match original")
		}
	})
}

func FuzzFixedSizeStrategySeamInvariance(f *testing.F) {
	f.Add([]byte("some data to split deterministically regardless of read fragmentation"), uint32(7))
	f.Add(make([]byte, 200), uint32(16))

	f.Fuzz(func(t *testing.T, data []byte, size uint32) {
		if size == 0 {
			size = 1
		}

		s1, err := cdchunking.NewFixedSizeStrategy(size)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s2, err := cdchunking.NewFixedSizeStrategy(size)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		descsSmall, err := readAllDescriptors(cdchunking.NewEngineWithBufferSize(bytes.NewReader(data), s1, 8))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		descsLarge, err := readAllDescriptors(cdchunking.NewEngineWithBufferSize(bytes.NewReader(data), s2, 4096))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(descsSmall) != len(descsLarge) {
			t.Fatalf("seam variance: %d chunks vs %d chunks", len(descsSmall), len(descsLarge))
		}
		for i := range descsSmall {
			if descsSmall[i] != descsLarge[i] {
				t.Fatalf("seam variance at chunk %d: %+v vs %+v", i, descsSmall[i], descsLarge[i])
			}
		}
	})
}

func readAllDescriptors(e *cdchunking.Engine) ([]cdchunking.Descriptor, error) {
	var descs []cdchunking.Descriptor
	var offset, length uint64
	for {
		ev, err := e.Next()
		if err == io.EOF {
			return descs, nil
		}
		if err != nil {
			return descs, err
		}
		switch ev.Kind {
		case cdchunking.EventData:
			length += uint64(len(ev.Data))
		case cdchunking.EventEnd:
			descs = append(descs, cdchunking.Descriptor{Start: offset, Length: length})
			offset += length
			length = 0
		}
	}
}
