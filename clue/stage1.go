package clue

// stage1FillTiles buckets every point into the tile grid, the first of the
// four bulk-parallel passes MakeClusters runs each call. Tiles are rebuilt
// from scratch every call since the bounding box can shift between calls.
//
// Grounded in original_source's core/detail/SetupTiles.hpp and
// kernels/KernelFillTiles.h (the compute-extremes-then-bucket sequence),
// adapted to the Go Queue/Tiles abstractions built in this package.
func stage1FillTiles(queue Queue, tiles *Tiles, points *PointsDevice, pointsPerTile int) error {
	column := func(d, i int) float32 { return points.Coord(d, i) }
	tiles.Setup(queue, column, points.N(), pointsPerTile)
	return tiles.Fill(queue, column, points.N())
}
