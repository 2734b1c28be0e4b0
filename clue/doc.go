// Package clue implements CLUE, a density-based clustering algorithm
// originally developed for reconstructing particle showers in
// high-granularity calorimeters, as a four-stage bulk-parallel pipeline:
// tile fill, local density, nearest-higher-density neighbour, and
// seed/follower cluster assignment.
//
// Point data is held in a structure-of-arrays PointsHost, mirrored into a
// PointsDevice buffer for the duration of a MakeClusters call. Work is
// dispatched through a Queue, which generalizes "run this over every
// index" to either an inline SequentialQueue or a persistent-goroutine
// PoolQueue.
package clue
