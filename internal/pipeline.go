package internal

import (
	"context"
	"log/slog"

	"github.com/golang/geo/r2"
	"golang.org/x/sync/errgroup"

	"github.com/osuushi/cdt/dbg"
)

type Options struct {
	// Regions are independent once partitioning is done. Values above one
	// triangulate up to that many regions concurrently.
	Parallelism int
	// Cap on legalization flips. Zero or less selects DefaultMaxFlips.
	MaxFlips int
	// Skip legalization to get the plain monotone triangulation.
	Legalize bool
	Logger   *slog.Logger
}

func DefaultOptions() Options {
	return Options{Parallelism: 1, Legalize: true}
}

// Triangulate runs the whole pipeline: normalize, partition, triangulate each
// monotone region, legalize, and assemble. It fails fast; a failed call
// yields no triangles at all.
func Triangulate(boundary []r2.Point, islands [][]r2.Point, opts Options) (*Output, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	input, err := Normalize(boundary, islands)
	if err != nil {
		return nil, err
	}
	logger.Debug("normalized input",
		"points", len(input.Points),
		"islands", len(input.Islands),
		"min", input.Frame.Min,
		"max", input.Frame.Max,
	)

	regions, err := Partition(input)
	if err != nil {
		return nil, err
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for i := range regions {
			logger.Debug("monotone region", "name", dbg.Name(&regions[i]), "points", len(regions[i].Points))
		}
	}

	triangles, err := TriangulateRegions(regions, opts.Parallelism)
	if err != nil {
		return nil, err
	}

	mesh, err := NewMesh(input.Points, triangles, input.ConstrainedEdges())
	if err != nil {
		return nil, err
	}

	stats := Stats{Regions: len(regions)}
	if opts.Legalize {
		stats.Flips, stats.FlipCapHit, err = Legalize(mesh, opts.MaxFlips)
		if err != nil {
			return nil, err
		}
		if stats.FlipCapHit {
			logger.Warn("legalization stopped at flip cap", "flips", stats.Flips)
		}
	}

	out := Assemble(mesh, input.Frame)
	stats.Triangles = out.Stats.Triangles
	out.Stats = stats
	logger.Debug("triangulated",
		"regions", stats.Regions,
		"triangles", stats.Triangles,
		"flips", stats.Flips,
	)
	return out, nil
}

// TriangulateRegions triangulates every region, concurrently when parallelism
// allows. Workers only read the shared points and write their own slot.
func TriangulateRegions(regions PolygonList, parallelism int) (TriangleList, error) {
	results := make([][]*Triangle, len(regions))
	if parallelism <= 1 {
		for i := range regions {
			triangles, err := TriangulateMonotone(&regions[i])
			if err != nil {
				return nil, err
			}
			results[i] = triangles
		}
	} else {
		var g errgroup.Group
		g.SetLimit(parallelism)
		for i := range regions {
			g.Go(func() error {
				// TriangulateMonotone recovers its own panics, so nothing escapes
				// the goroutine.
				triangles, err := TriangulateMonotone(&regions[i])
				results[i] = triangles
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var all TriangleList
	for _, triangles := range results {
		all = append(all, triangles...)
	}
	return all, nil
}
