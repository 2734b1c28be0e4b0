// Command cluectl runs CLUE clustering over a CSV point file.
//
// Usage:
//
//	cluectl -input points.csv -output clustered.csv -ndim 2 -dc 1.5 -rhoc 5.0
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ajroetker/clue/clue"
	"github.com/ajroetker/clue/clueconfig"
	"github.com/ajroetker/clue/clueio"
)

var (
	inputFile     = flag.String("input", "", "Input CSV point file (required)")
	outputFile    = flag.String("output", "", "Output CSV file (required)")
	ndim          = flag.Int("ndim", 2, "Number of coordinate dimensions")
	dc            = flag.Float64("dc", 0, "Local density search radius (required, > 0)")
	rhoc          = flag.Float64("rhoc", 0, "Minimum density for seed promotion (required, > 0)")
	dm            = flag.Float64("dm", 0, "Nearest-higher search radius (default: dc)")
	seedDC        = flag.Float64("seed-dc", 0, "Seed promotion delta threshold (default: dc)")
	pointsPerTile = flag.Int("points-per-tile", 128, "Target points per tile")
	backend       = flag.String("backend", "pool", "Execution backend: sequential or pool")
	workers       = flag.Int("workers", 0, "Worker goroutines for the pool backend (0: GOMAXPROCS)")
	wrapped       = flag.String("wrapped", "", "Comma-separated list of wrapped (circular) dimension indices")
	verbose       = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cluectl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *inputFile == "" || *outputFile == "" {
		flag.Usage()
		return fmt.Errorf("-input and -output are required")
	}

	cfg := clueconfig.Default(*ndim, float32(*dc), float32(*rhoc))
	cfg.DM = float32(*dm)
	cfg.SeedDC = float32(*seedDC)
	cfg.PointsPerTile = *pointsPerTile
	cfg.Workers = *workers

	switch strings.ToLower(*backend) {
	case "sequential":
		cfg.Backend = clue.BackendSequential
	case "pool", "":
		cfg.Backend = clue.BackendPool
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}

	for _, tok := range strings.Split(*wrapped, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		var d int
		if _, err := fmt.Sscanf(tok, "%d", &d); err != nil {
			return fmt.Errorf("invalid -wrapped entry %q: %w", tok, err)
		}
		cfg.Wrapped = append(cfg.Wrapped, d)
	}

	in, err := os.Open(*inputFile)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	points, err := clueio.ReadPoints(in, *ndim)
	if err != nil {
		return fmt.Errorf("reading points: %w", err)
	}
	slog.Info("loaded points", "count", points.N(), "ndim", points.Ndim())

	clusterer, err := cfg.NewClusterer()
	if err != nil {
		return fmt.Errorf("building clusterer: %w", err)
	}

	queue := cfg.NewQueue()
	if pq, ok := queue.(*clue.PoolQueue); ok {
		defer pq.Close()
	}

	if err := clue.MakeClusters(context.Background(), clusterer, queue, points, clue.EuclideanMetric{}, clue.NewFlatKernel(1), 64); err != nil {
		return fmt.Errorf("clustering: %w", err)
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := clueio.WriteResults(out, points); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	clusters := clusterer.GetClusters(points)
	nClusters, _ := clusters.Extents()
	slog.Info("clustering complete", "clusters", nClusters)
	return nil
}
