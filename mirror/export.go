package mirror

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name,omitempty"`
}

type SegmentJSON struct {
	A          PointJSON `json:"a"`
	B          PointJSON `json:"b"`
	Owner      string    `json:"owner"`
	Reflective bool      `json:"reflective"`
}

type RayPathJSON struct {
	Points   []PointJSON `json:"points"`
	HitOwner string      `json:"hitOwner,omitempty"`
	Bounces  int         `json:"bounces"`
	Length   float64     `json:"length"`
	Color    string      `json:"color,omitempty"`
}

type MirrorImageJSON struct {
	Position        PointJSON `json:"position"`
	ReflectionIndex int       `json:"reflectionIndex"`
	Object          string    `json:"object"`
}

type ObservationJSON struct {
	HeadingDeg float64           `json:"headingDeg"`
	Path       RayPathJSON       `json:"path"`
	Images     []MirrorImageJSON `json:"images"`
}

// Conversion functions
func VectorToJSON(v r2.Vec) PointJSON {
	return PointJSON{X: v.X, Y: v.Y}
}

func SegmentToJSON(s LineSegment) SegmentJSON {
	return SegmentJSON{
		A:          VectorToJSON(s.P1),
		B:          VectorToJSON(s.P2),
		Owner:      s.OwnerID,
		Reflective: s.Reflective,
	}
}

func RayPathToJSON(p RayPath) RayPathJSON {
	points := p.Points()
	out := RayPathJSON{
		Points:  make([]PointJSON, len(points)),
		Bounces: p.Bounces(),
		Length:  p.TotalLength(),
		Color:   "#FF0000", // Escaped rays are drawn red
	}
	for i, v := range points {
		out.Points[i] = VectorToJSON(v)
	}
	if seg, ok := p.Terminal(); ok && seg.HasHit() {
		out.HitOwner = seg.HitOwnerID
		out.Color = "#00A000"
	}
	return out
}

func MirrorImageToJSON(m MirrorImage) MirrorImageJSON {
	return MirrorImageJSON{
		Position:        VectorToJSON(m.Position),
		ReflectionIndex: m.ReflectionPointIndex,
		Object:          m.ObjectID,
	}
}

func ObservationToJSON(o Observation) ObservationJSON {
	images := make([]MirrorImageJSON, len(o.Images))
	for i, m := range o.Images {
		images[i] = MirrorImageToJSON(m)
	}
	return ObservationJSON{
		HeadingDeg: Degrees(o.Heading),
		Path:       RayPathToJSON(o.Path),
		Images:     images,
	}
}

// SceneJSON is the document written by SaveObservationsToJSON.
type SceneJSON struct {
	Segments     []SegmentJSON     `json:"segments"`
	Observations []ObservationJSON `json:"observations"`
}

// SaveObservationsToJSON writes the scene segments and the traced observations to a JSON file
func SaveObservationsToJSON(filename string, geometry SceneGeometry, observations []Observation) error {
	container := SceneJSON{
		Segments:     make([]SegmentJSON, 0, geometry.SegmentCount()),
		Observations: make([]ObservationJSON, 0, len(observations)),
	}

	for _, rec := range geometry.Records {
		for _, seg := range rec.Segments {
			container.Segments = append(container.Segments, SegmentToJSON(seg))
		}
	}

	for _, obs := range observations {
		container.Observations = append(container.Observations, ObservationToJSON(obs))
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling observations: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}
