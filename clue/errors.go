package clue

import "errors"

// Sentinel errors returned by the clue package. Callers should use
// errors.Is against these values rather than matching on error text.
var (
	// ErrInvalidParameter is returned when a Clusterer is constructed or
	// reconfigured with a non-positive dc, a non-positive rhoc, or a
	// non-positive pointsPerTile.
	ErrInvalidParameter = errors.New("clue: invalid parameter")

	// ErrDimensionOutOfRange is returned by PointsHost.CoordChecked when the
	// requested dimension index is negative or >= Ndim.
	ErrDimensionOutOfRange = errors.New("clue: dimension out of range")

	// ErrEmptyInput is retained for API completeness; MakeClusters and
	// GetClusters treat a zero-size point set as a silent no-op rather
	// than returning this error (see DESIGN.md).
	ErrEmptyInput = errors.New("clue: empty input")

	// ErrTileOverflow is returned from MakeClusters when a single tile
	// receives more points than the per-tile capacity hint computed in
	// Tiles.Setup. The run is abandoned; retry with a larger pointsPerTile.
	ErrTileOverflow = errors.New("clue: tile overflow, increase pointsPerTile")

	// ErrClusterPropagationOverflow is returned from MakeClusters when a
	// seed's follower stack exceeds its fixed depth during stage 4.
	ErrClusterPropagationOverflow = errors.New("clue: cluster propagation stack overflow")
)
