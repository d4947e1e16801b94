package config

import (
	"fmt"

	gomirror "github.com/jdginn/go-mirror-studio/mirror"
)

// Create converts the object to its scene form, with angles in radians
func (o Object) Create() (gomirror.Object, error) {
	kind, err := gomirror.ParseObjectKind(o.Kind)
	if err != nil {
		return gomirror.Object{}, fmt.Errorf("object %q: %w", o.ID, err)
	}
	return gomirror.Object{
		ID:       o.ID,
		Kind:     kind,
		Position: gomirror.V(o.Position[0], o.Position[1]),
		Angle:    gomirror.Radians(o.Angle),
		Width:    o.Width,
		Depth:    o.Depth,
	}, nil
}

// SceneObjects converts every inline object, in order
func (c *SceneConfig) SceneObjects() ([]gomirror.Object, error) {
	objects := make([]gomirror.Object, 0, len(c.Objects.Inline))
	for _, o := range c.Objects.Inline {
		obj, err := o.Create()
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// Geometry builds the scene geometry the tracer runs against
func (c *SceneConfig) Geometry() (gomirror.SceneGeometry, error) {
	objects, err := c.SceneObjects()
	if err != nil {
		return gomirror.SceneGeometry{}, err
	}
	return gomirror.BuildSceneGeometry(objects)
}

func (v Viewer) Create() gomirror.Observer {
	return gomirror.Observer{
		Position: gomirror.V(v.Position[0], v.Position[1]),
		Heading:  gomirror.Radians(v.Heading),
	}
}

func (s Simulation) TraceParams() gomirror.TraceParams {
	return gomirror.TraceParams{
		MaxBounces:   s.MaxBounces,
		EscapeLength: s.EscapeLength,
		HitEpsilon:   s.HitEpsilon,
	}
}

// Headings returns the headings swept around the viewer, or just the viewer heading when no sweep is configured
func (c *SceneConfig) Headings() []float64 {
	viewer := c.Viewer.Create()
	if c.Simulation.Sweep.Count <= 0 {
		return []float64{viewer.Heading}
	}
	return viewer.Sample(c.Simulation.Sweep.Count, gomirror.Radians(c.Simulation.Sweep.HalfAngle))
}
