// Package cdchunking implements content-defined chunking (CDC): splitting a
// byte stream into variable-sized chunks at boundaries chosen from the
// content itself, so that local edits only perturb a small number of
// chunks. This is the building block deduplicating backup systems and
// delta-compression pipelines rely on.
//
// # Overview
//
// A Strategy decides where boundaries fall; this package ships ten of
// them, from the trivial Fixed-Size baseline to content-analytic
// algorithms like Gear, AE, RAM, MII, PCI, BFBC and TTTD. A Strategy can
// be wrapped with a SizeLimiter to cap the maximum chunk length; the
// limiter itself satisfies Strategy, so it nests like any other.
//
// The Engine drives a Strategy across an io.Reader through a fixed
// internal buffer, emitting a zero-copy Data/End event sequence. Four
// adapters are built on top of it: an owning whole-chunks iterator, an
// all-chunks collector, a chunk-descriptor iterator, and an in-memory
// slice iterator that skips the Engine entirely.
//
// # Quick Start
//
//	strategy := cdchunking.NewGearStrategy(cdchunking.GearMaskForTargetSize(64 * 1024))
//	chunker := cdchunking.NewChunker(strategy)
//
//	for chunk, err := range chunker.WholeChunks(reader).Seq() {
//	    // process chunk
//	}
//
// Zero-copy API for performance-critical code:
//
//	engine := cdchunking.NewChunker(strategy).Stream(reader)
//	for {
//	    ev, err := engine.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if ev.Kind == cdchunking.EventData {
//	        // process ev.Data; valid only until the next Next() call
//	    }
//	}
//
// # Thread Safety
//
// Strategy and Engine values are stateful and not safe for concurrent
// use. Each goroutine should own its own Strategy/Engine pair; use
// EnginePool to recycle them across a high-throughput pipeline instead
// of allocating a fresh one per stream.
package cdchunking
