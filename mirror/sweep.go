package mirror

import (
	"context"
	"runtime"

	lin "github.com/sgreben/piecewiselinear"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Observer is the eye the rays are traced from.
type Observer struct {
	Position r2.Vec
	// Heading in radians
	Heading float64
}

// Sample returns count headings spread evenly over Heading±halfAngle (radians).
func (v Observer) Sample(count int, halfAngle float64) []float64 {
	switch {
	case count <= 0:
		return nil
	case count == 1 || halfAngle == 0:
		headings := make([]float64, count)
		for i := range headings {
			headings[i] = v.Heading
		}
		return headings
	}
	return lin.Span(v.Heading-halfAngle, v.Heading+halfAngle, count)
}

// Observation is the result of tracing one heading.
type Observation struct {
	Heading float64
	Path    RayPath
	Images  []MirrorImage
}

// Terminal returns the ID of the object the path ended on, or "" if it escaped.
func (o Observation) Terminal() string {
	seg, ok := o.Path.Terminal()
	if !ok {
		return ""
	}
	return seg.HitOwnerID
}

// Sweep traces every heading from the viewer position and computes the mirror images of each path.
//
// Traces run on up to workers goroutines (GOMAXPROCS if workers <= 0). Results are in the
// order of headings.
func Sweep(ctx context.Context, geometry SceneGeometry, viewer Observer, maxLength float64, headings []float64, params TraceParams, workers int) ([]Observation, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	observations := make([]Observation, len(headings))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, heading := range headings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := TraceRayWithParams(geometry, viewer.Position, heading, maxLength, params)
			observations[i] = Observation{
				Heading: heading,
				Path:    path,
				Images:  ComputeMirrorImages(path),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return observations, nil
}
