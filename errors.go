package cdchunking

import "errors"

var (
	// ErrInvalidSize is returned when a strategy is constructed with a zero
	// chunk, window or target size.
	ErrInvalidSize = errors.New("cdchunking: size must be greater than 0")

	// ErrInvalidBits is returned when ZPAQ's nbits parameter falls outside
	// the range the 32-bit rolling hash can support.
	ErrInvalidBits = errors.New("cdchunking: nbits must be between 1 and 32")

	// ErrInvalidThreshold is returned when a threshold parameter (MII,
	// PCI) is zero or otherwise out of range.
	ErrInvalidThreshold = errors.New("cdchunking: threshold must be greater than 0")

	// ErrBFBCMinTooSmall is returned when BFBC's minimum chunk size is
	// smaller than the two-byte window it slides.
	ErrBFBCMinTooSmall = errors.New("cdchunking: BFBC min chunk size must be at least 2")

	// ErrTTTDBoundsInvalid is returned when TTTD's min/max chunk sizes are
	// not strictly ordered.
	ErrTTTDBoundsInvalid = errors.New("cdchunking: TTTD min chunk size must be smaller than max chunk size")

	// ErrInvalidMaxSize is returned by SizeLimiter construction when max is 0.
	ErrInvalidMaxSize = errors.New("cdchunking: maxSize must be greater than 0")

	// ErrInvalidBufferSize is returned by NewEnginePool when the buffer size
	// is <= 0; NewEngineWithBufferSize panics with an error wrapping it.
	ErrInvalidBufferSize = errors.New("cdchunking: buffer size must be greater than 0")

	// ErrBuilderConsumed is the value a Builder panics with when it is used
	// again after its strategy has already been handed to a prior view.
	ErrBuilderConsumed = errors.New("cdchunking: builder's strategy was already consumed by a prior view")
)
