package cdchunking

// Strategy decides where chunk boundaries fall within a byte stream.
//
// Implementations are stateful and not safe for concurrent use. They must
// be deterministic functions of the bytes observed since the most recent
// Reset (plus their construction parameters), and must never allocate in
// the hot path once constructed.
type Strategy interface {
	// FindBoundary scans view, consuming bytes and updating internal
	// state for every byte it looks at, and reports the offset of the
	// last byte of the chunk that should end here.
	//
	// If ok is false, the strategy has consumed every byte of view and
	// found no boundary. If ok is true, offset must satisfy
	// 0 <= offset < len(view); the strategy is considered to have
	// consumed view[:offset+1] and no more.
	FindBoundary(view []byte) (offset int, ok bool)

	// Reset restores the strategy to its state immediately after
	// construction. The Engine calls Reset exactly once, right after
	// emitting a boundary and before feeding the strategy further bytes.
	Reset()
}
