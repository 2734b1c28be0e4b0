package clue

import (
	"context"
	"testing"
)

func TestNewClustererValidation(t *testing.T) {
	if _, err := NewClusterer(0, 1.0); err != ErrInvalidParameter {
		t.Errorf("dc=0 should return ErrInvalidParameter, got %v", err)
	}
	if _, err := NewClusterer(1.0, 0); err != ErrInvalidParameter {
		t.Errorf("rhoc=0 should return ErrInvalidParameter, got %v", err)
	}
	if _, err := NewClusterer(1.0, 1.0, WithPointsPerTile(-1)); err != ErrInvalidParameter {
		t.Errorf("negative pointsPerTile should return ErrInvalidParameter")
	}
}

func TestNewClustererDefaults(t *testing.T) {
	c, err := NewClusterer(1.5, 1.0)
	if err != nil {
		t.Fatalf("NewClusterer returned %v", err)
	}
	if c.dm != 1.5 {
		t.Errorf("dm default = %v, want dc (1.5)", c.dm)
	}
	if c.seedDC != 1.5 {
		t.Errorf("seedDC default = %v, want dc (1.5)", c.seedDC)
	}
	if c.pointsPerTile != 128 {
		t.Errorf("pointsPerTile default = %v, want 128", c.pointsPerTile)
	}
}

func TestMakeClustersTwoBlobs(t *testing.T) {
	c, err := NewClusterer(1.5, 1.0, WithDM(5.0), WithSeedDC(1.5), WithPointsPerTile(2))
	if err != nil {
		t.Fatalf("NewClusterer returned %v", err)
	}

	host := NewPointsHost(2, 4)
	coords := [][2]float32{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
	for i, v := range coords {
		host.SetCoord(0, i, v[0])
		host.SetCoord(1, i, v[1])
		host.SetWeight(i, 1)
	}

	queue := NewSequentialQueue()
	err = MakeClusters(context.Background(), c, queue, host, EuclideanMetric{}, NewFlatKernel(1), 64)
	if err != nil {
		t.Fatalf("MakeClusters returned %v", err)
	}

	if host.ClusterID(0) != host.ClusterID(1) {
		t.Errorf("blob 1 points got different cluster ids")
	}
	if host.ClusterID(2) != host.ClusterID(3) {
		t.Errorf("blob 2 points got different cluster ids")
	}
	if host.ClusterID(0) == host.ClusterID(2) {
		t.Errorf("distinct blobs got the same cluster id")
	}

	clusters := c.GetClusters(host)
	nClusters, _ := clusters.Extents()
	if nClusters != 2 {
		t.Errorf("GetClusters found %v clusters, want 2", nClusters)
	}
}

func TestMakeClustersContextCancelled(t *testing.T) {
	c, err := NewClusterer(1.5, 1.0)
	if err != nil {
		t.Fatalf("NewClusterer returned %v", err)
	}

	host := NewPointsHost(1, 2)
	host.SetCoord(0, 0, 0)
	host.SetCoord(0, 1, 1)
	host.SetWeight(0, 1)
	host.SetWeight(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = MakeClusters(ctx, c, NewSequentialQueue(), host, EuclideanMetric{}, NewFlatKernel(1), 64)
	if err == nil {
		t.Errorf("MakeClusters with a cancelled context should return an error")
	}
}
