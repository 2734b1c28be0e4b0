package clue

import (
	"os"
	"strings"
)

// Backend identifies which execution strategy a Queue uses to run a
// pipeline stage's ParallelFor, the way the teacher's DispatchLevel
// identifies which SIMD instruction set a hwy.Vec operation targets.
type Backend int

const (
	// BackendSequential runs every ParallelFor call inline on the calling
	// goroutine. Used for small inputs, deterministic debugging, and as
	// the fallback any future backend still needs.
	BackendSequential Backend = iota

	// BackendPool runs ParallelFor over a persistent goroutine pool.
	BackendPool
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendSequential:
		return "sequential"
	case BackendPool:
		return "pool"
	default:
		return "unknown"
	}
}

// backendFromEnv parses the CLUE_BACKEND environment variable, mirroring
// the teacher's HWY_NO_SIMD override in hwy/dispatch.go. An unset or
// unrecognized value falls back to ok=false so the caller can apply its
// own default.
func backendFromEnv() (b Backend, ok bool) {
	val := strings.ToLower(strings.TrimSpace(os.Getenv("CLUE_BACKEND")))
	switch val {
	case "sequential":
		return BackendSequential, true
	case "pool":
		return BackendPool, true
	default:
		return BackendSequential, false
	}
}
