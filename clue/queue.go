package clue

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ajroetker/clue/clue/internal/workerpool"
)

// Queue is the seam between a pipeline stage and however it actually runs.
// It generalizes the teacher's SIMD dispatch (one Vec[T] operation, many
// instruction-set-specific bodies) to execution strategy (one stage
// implementation, many ways to divide the work across goroutines). A
// future cgo/GPU backend plugs in here without touching any stage code.
type Queue interface {
	// ParallelFor executes fn for each index in [0, n) exactly once.
	// Blocks until all work completes.
	ParallelFor(n int, fn func(start, end int))

	// Wait is a no-op for both backends shipped in this package; it exists
	// for API parity with the alpaka-style original, where kernel launch
	// and completion are logically separate steps that a future
	// asynchronous backend would need to make real.
	Wait()

	// Backend reports which execution strategy this Queue uses.
	Backend() Backend
}

// SequentialQueue runs every ParallelFor call inline on the calling
// goroutine. Useful for small inputs, deterministic tests, and as the
// degenerate case any other backend still needs to support.
type SequentialQueue struct{}

// NewSequentialQueue returns a Queue that runs work inline.
func NewSequentialQueue() *SequentialQueue {
	return &SequentialQueue{}
}

func (q *SequentialQueue) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	fn(0, n)
}

func (q *SequentialQueue) Wait() {}

func (q *SequentialQueue) Backend() Backend { return BackendSequential }

// PoolQueue runs ParallelFor over a persistent worker pool, adapted from
// the teacher's contrib/workerpool package.
type PoolQueue struct {
	pool *workerpool.Pool
}

// NewPoolQueue returns a Queue backed by a persistent pool of numWorkers
// goroutines. If numWorkers <= 0, runtime.GOMAXPROCS(0) is used.
func NewPoolQueue(numWorkers int) *PoolQueue {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &PoolQueue{pool: workerpool.New(numWorkers)}
}

func (q *PoolQueue) ParallelFor(n int, fn func(start, end int)) {
	q.pool.ParallelFor(n, fn)
}

func (q *PoolQueue) Wait() {}

func (q *PoolQueue) Backend() Backend { return BackendPool }

// Close releases the underlying worker pool. A PoolQueue should be closed
// when the owning Clusterer is no longer needed.
func (q *PoolQueue) Close() {
	q.pool.Close()
}

// NumWorkers reports how many persistent goroutines back this queue.
func (q *PoolQueue) NumWorkers() int {
	return q.pool.NumWorkers()
}

// NewQueue is the single constructor for either shipped backend.
func NewQueue(backend Backend, workers int) Queue {
	switch backend {
	case BackendPool:
		return NewPoolQueue(workers)
	default:
		return NewSequentialQueue()
	}
}

// DefaultQueue applies the CLUE_BACKEND environment override (see
// backend.go) and falls back to BackendPool when unset.
func DefaultQueue() Queue {
	if b, ok := backendFromEnv(); ok {
		return NewQueue(b, 0)
	}
	return NewQueue(BackendPool, 0)
}

// ListDevices writes the available backends and, for the pool backend, the
// worker count that would be used by default. It mirrors the spec's
// optional device-enumeration helper.
func ListDevices(w io.Writer) {
	seq := NewSequentialQueue()
	pool := NewPoolQueue(0)
	defer pool.Close()

	fmt.Fprintf(w, "%s: 1 worker (inline)\n", seq.Backend())
	fmt.Fprintf(w, "%s: %d workers\n", pool.Backend(), pool.NumWorkers())
}
