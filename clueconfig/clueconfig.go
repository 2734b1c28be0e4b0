// Package clueconfig is the typed configuration surface for a clustering
// run: the parameters a clue.Clusterer needs, plus the Queue backend
// selection, gathered in one struct so callers (the cluectl CLI, or any
// embedding application) have a single place to validate and pass around
// run configuration instead of threading individual flags everywhere.
package clueconfig

import "github.com/ajroetker/clue/clue"

// Config holds every parameter needed to build a clue.Clusterer and a
// clue.Queue for one clustering run.
type Config struct {
	Ndim          int
	DC            float32
	RhoC          float32
	DM            float32
	SeedDC        float32
	PointsPerTile int
	Wrapped       []int
	Backend       clue.Backend
	Workers       int
	BlockSize     int
}

// Default returns a Config with the package defaults: pointsPerTile=128,
// blockSize=64, the pool backend with runtime.GOMAXPROCS(0) workers (0
// meaning "let NewPoolQueue choose"), and DM/SeedDC left at zero so
// NewClusterer applies its own dc-derived defaults.
func Default(ndim int, dc, rhoc float32) Config {
	return Config{
		Ndim:          ndim,
		DC:            dc,
		RhoC:          rhoc,
		PointsPerTile: 128,
		Backend:       clue.BackendPool,
		BlockSize:     64,
	}
}

// Validate reports ErrInvalidParameter-equivalent problems before they
// reach NewClusterer, so a CLI can report a config error without having
// constructed anything yet.
func (c Config) Validate() error {
	if c.Ndim <= 0 {
		return clue.ErrInvalidParameter
	}
	if c.DC <= 0 || c.RhoC <= 0 {
		return clue.ErrInvalidParameter
	}
	if c.PointsPerTile <= 0 {
		return clue.ErrInvalidParameter
	}
	for _, d := range c.Wrapped {
		if d < 0 || d >= c.Ndim {
			return clue.ErrDimensionOutOfRange
		}
	}
	return nil
}

// NewClusterer builds a clue.Clusterer from the config, applying DM,
// SeedDC, PointsPerTile and Wrapped as ClustererOptions.
func (c Config) NewClusterer() (*clue.Clusterer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []clue.ClustererOption{clue.WithPointsPerTile(c.PointsPerTile)}
	if c.DM > 0 {
		opts = append(opts, clue.WithDM(c.DM))
	}
	if c.SeedDC > 0 {
		opts = append(opts, clue.WithSeedDC(c.SeedDC))
	}
	for _, d := range c.Wrapped {
		opts = append(opts, clue.WithWrappedDimension(d))
	}
	return clue.NewClusterer(c.DC, c.RhoC, opts...)
}

// NewQueue builds the clue.Queue this config specifies.
func (c Config) NewQueue() clue.Queue {
	return clue.NewQueue(c.Backend, c.Workers)
}
