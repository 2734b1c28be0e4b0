// Package clueio reads and writes the CSV point format used by the
// original CLUEstering command-line tools: one header row (ignored),
// then one record per point with Ndim coordinate columns, a weight
// column, and — for result files — clusterId and isSeed columns.
//
// Implemented with the standard library's encoding/csv; no third-party
// CSV library appears anywhere in the example pack (see DESIGN.md).
package clueio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ajroetker/clue/clue"
)

// ReadPoints parses ndim-dimensional points from r. Each record must have
// at least ndim+1 columns: ndim coordinates followed by a weight. The
// header row is always skipped.
func ReadPoints(r io.Reader, ndim int) (*clue.PointsHost, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("clueio: reading CSV: %w", err)
	}
	if len(records) == 0 {
		return clue.NewPointsHost(ndim, 0), nil
	}

	records = records[1:] // drop header
	points := clue.NewPointsHost(ndim, len(records))

	for i, rec := range records {
		if len(rec) < ndim+1 {
			return nil, fmt.Errorf("clueio: record %d has %d columns, want at least %d", i, len(rec), ndim+1)
		}
		for d := 0; d < ndim; d++ {
			v, err := strconv.ParseFloat(rec[d], 32)
			if err != nil {
				return nil, fmt.Errorf("clueio: record %d coordinate %d: %w", i, d, err)
			}
			points.SetCoord(d, i, float32(v))
		}
		w, err := strconv.ParseFloat(rec[ndim], 32)
		if err != nil {
			return nil, fmt.Errorf("clueio: record %d weight: %w", i, err)
		}
		points.SetWeight(i, float32(w))
	}
	return points, nil
}

// WriteResults writes points, one record per row, with ndim coordinate
// columns, weight, clusterId and isSeed — the format the original CLI
// tools emit for downstream plotting/inspection.
func WriteResults(w io.Writer, points *clue.PointsHost) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := make([]string, points.Ndim()+3)
	for d := 0; d < points.Ndim(); d++ {
		header[d] = fmt.Sprintf("x%d", d)
	}
	header[points.Ndim()] = "weight"
	header[points.Ndim()+1] = "clusterId"
	header[points.Ndim()+2] = "isSeed"
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("clueio: writing header: %w", err)
	}

	record := make([]string, points.Ndim()+3)
	for i := 0; i < points.N(); i++ {
		for d := 0; d < points.Ndim(); d++ {
			record[d] = strconv.FormatFloat(float64(points.Coord(d, i)), 'g', -1, 32)
		}
		record[points.Ndim()] = strconv.FormatFloat(float64(points.Weight(i)), 'g', -1, 32)
		record[points.Ndim()+1] = strconv.Itoa(int(points.ClusterID(i)))
		record[points.Ndim()+2] = strconv.Itoa(int(points.IsSeed(i)))
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("clueio: writing record %d: %w", i, err)
		}
	}
	return writer.Error()
}
