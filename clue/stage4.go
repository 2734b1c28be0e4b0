package clue

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// followerStackCapacity is the fixed capacity of each seed's propagation
// stack, per the implementation budget in §4.9: 256, or nPoints when that
// is smaller (a stack can never hold more entries than there are points).
func followerStackCapacity(nPoints int) int {
	if nPoints < 256 {
		return max(nPoints, 1)
	}
	return 256
}

// stage4Assign marks seeds, builds the followers map, and propagates
// cluster membership outward from every seed along the nh forest.
//
// Grounded in original_source's KernelFindClusters/KernelAssignClusters
// (core/detail/CLUEAlpakaKernels.hpp): seed marking and follower
// propagation are kept as two separate passes exactly as the original
// does, with the GPU's one-block-per-seed launch replaced by one
// goroutine per seed fanned out through an errgroup so a propagation
// overflow on any seed cancels the rest of the run instead of silently
// truncating it.
func stage4Assign(ctx context.Context, queue Queue, points *PointsDevice, followers *Followers, seeds *SeedArray, rhoc, seedDC float32) error {
	n := points.N()

	queue.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			points.SetClusterID(i, -1)
			isSeed := points.Delta(i) > seedDC && points.Rho(i) >= rhoc
			if isSeed {
				points.SetIsSeed(i, 1)
				points.SetNearestHigher(i, -1)
				seeds.Push(int32(i))
			} else {
				points.SetIsSeed(i, 0)
			}
		}
	})
	queue.Wait()

	followers.Build(queue, n, func(i int) int32 { return points.NearestHigher(i) })

	stackCap := followerStackCapacity(n)
	group, gctx := errgroup.WithContext(ctx)

	for s := 0; s < seeds.Len(); s++ {
		seedIdx := int32(s)
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			root := seeds.At(seedIdx)
			points.SetClusterID(int(root), seedIdx)

			stack := NewVecArray[int32](stackCap)
			stack.PushUnsafe(root)

			for stack.Len() > 0 {
				v := stack.PopUnsafe()

				fs := followers.Of(int(v))
				for k := 0; k < fs.Len(); k++ {
					f := fs.At(k)
					points.SetClusterID(int(f), seedIdx)
					if stack.Full() {
						return ErrClusterPropagationOverflow
					}
					stack.PushUnsafe(f)
				}
			}
			return nil
		})
	}

	return group.Wait()
}
