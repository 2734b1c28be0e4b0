package clue

// exclusivePrefixScan computes the exclusive prefix sum of sizes into out,
// where len(out) == len(sizes)+1, out[0] == 0 and out[len(sizes)] == the
// total. This is the multi-block scan AssociationMap.Fill uses to turn
// per-bin counts into offsets.
//
// Grounded in the teacher's BasePrefixSum (contrib/algo/prefix_sum_base.go):
// that function processes data in SIMD-lane-sized blocks, computes an
// in-block prefix sum (Hillis-Steele, BasePrefixSumVec), then carries the
// running total into the next block. This scan keeps exactly that
// two-phase shape — process in blocks, carry a running total across blocks
// — but a "block" here is a worker-pool chunk of plain int32s instead of a
// SIMD vector, and the in-block scan is an ordinary sequential loop since
// there are no lanes to shuffle.
func exclusivePrefixScan(queue Queue, sizes []int32, out []int32) {
	n := len(sizes)
	if n == 0 {
		out[0] = 0
		return
	}

	const minBlockSize = 256
	numBlocks := 1
	if n > minBlockSize {
		numBlocks = (n + minBlockSize - 1) / minBlockSize
	}
	blockSize := (n + numBlocks - 1) / numBlocks
	if blockSize == 0 {
		blockSize = n
	}
	numBlocks = (n + blockSize - 1) / blockSize

	blockTotals := make([]int32, numBlocks)

	// Phase 1: sequential exclusive scan within each block, in parallel
	// across blocks. Each block's local scan is independent of the others;
	// only the carry (phase 2 below) depends on cross-block results.
	queue.ParallelFor(numBlocks, func(bStart, bEnd int) {
		for b := bStart; b < bEnd; b++ {
			lo := b * blockSize
			hi := min(lo+blockSize, n)
			var running int32
			for i := lo; i < hi; i++ {
				out[i] = running
				running += sizes[i]
			}
			blockTotals[b] = running
		}
	})

	// Phase 2: sequential carry across block totals. This pass is small
	// (numBlocks entries, not n) and inherently sequential, so it runs on
	// the calling goroutine rather than through the queue — matching the
	// teacher's BasePrefixSum, which carries its running total between
	// SIMD-lane blocks on a single thread too.
	carries := make([]int32, numBlocks)
	var running int32
	for b := 0; b < numBlocks; b++ {
		carries[b] = running
		running += blockTotals[b]
	}

	// Phase 3: apply each block's carry to its entries, in parallel.
	queue.ParallelFor(numBlocks, func(bStart, bEnd int) {
		for b := bStart; b < bEnd; b++ {
			lo := b * blockSize
			hi := min(lo+blockSize, n)
			carry := carries[b]
			for i := lo; i < hi; i++ {
				out[i] += carry
			}
		}
	})

	out[n] = running
}
