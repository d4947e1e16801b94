package mirror

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// ObjectKind tags what a scene object is and how rays treat it.
type ObjectKind int

const (
	Wall ObjectKind = iota
	Mirror
	Target
	Viewer
	// Phantom marks a non-participating object such as a drawn mirror image.
	Phantom
)

var kindNames = map[ObjectKind]string{
	Wall:    "wall",
	Mirror:  "mirror",
	Target:  "target",
	Viewer:  "viewer",
	Phantom: "phantom",
}

func (k ObjectKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

// ParseObjectKind is the inverse of ObjectKind.String.
func ParseObjectKind(s string) (ObjectKind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown object kind %q", s)
}

// Collides reports whether rays can hit objects of this kind.
func (k ObjectKind) Collides() bool {
	return k == Wall || k == Mirror || k == Target
}

// Reflective reports whether rays bounce off objects of this kind.
func (k ObjectKind) Reflective() bool {
	return k == Mirror
}

// LineSegment is one edge of an obstacle's collision boundary.
type LineSegment struct {
	P1, P2     r2.Vec
	OwnerID    string
	Reflective bool
}

// Normal returns the unit normal of the segment.
func (s LineSegment) Normal() r2.Vec {
	return NormalFromSegment(s.P1, s.P2)
}

// GeometryRecord holds the collision segments of one scene object.
type GeometryRecord struct {
	OwnerID  string
	Kind     ObjectKind
	Segments []LineSegment
}

// SceneGeometry is the ordered set of records a trace is computed against.
//
// It is rebuilt by the caller whenever the scene changes and never mutated by tracing.
type SceneGeometry struct {
	Records []GeometryRecord
}

// SegmentCount returns the number of segments rays are tested against.
func (g SceneGeometry) SegmentCount() int {
	n := 0
	for _, rec := range g.Records {
		if rec.Kind.Collides() {
			n += len(rec.Segments)
		}
	}
	return n
}

// Object describes a scene object as authored by the user.
type Object struct {
	ID   string
	Kind ObjectKind
	// Center of the object
	Position r2.Vec
	// Orientation in radians
	Angle float64
	// Extent along the orientation
	Width float64
	// Extent across the orientation. Zero means the object is a single line, like most walls and mirrors.
	Depth float64
}

// Outline returns the corners of the object's boundary in counter-clockwise order.
//
// Line-like objects return their two endpoints.
func (o Object) Outline() []r2.Vec {
	rot := r2.NewRotation(o.Angle, r2.Vec{})
	hw, hd := o.Width/2, o.Depth/2
	var local []r2.Vec
	if o.Depth == 0 {
		local = []r2.Vec{V(-hw, 0), V(hw, 0)}
	} else {
		local = []r2.Vec{V(-hw, -hd), V(hw, -hd), V(hw, hd), V(-hw, hd)}
	}
	corners := make([]r2.Vec, len(local))
	for i, p := range local {
		corners[i] = r2.Add(o.Position, rot.Rotate(p))
	}
	return corners
}

// Segments returns the collision boundary of the object. Objects that do not collide have none.
func (o Object) Segments() []LineSegment {
	if !o.Kind.Collides() {
		return nil
	}
	corners := o.Outline()
	reflective := o.Kind.Reflective()
	if len(corners) == 2 {
		return []LineSegment{{P1: corners[0], P2: corners[1], OwnerID: o.ID, Reflective: reflective}}
	}
	segments := make([]LineSegment, 0, len(corners))
	for i := range corners {
		segments = append(segments, LineSegment{
			P1:         corners[i],
			P2:         corners[(i+1)%len(corners)],
			OwnerID:    o.ID,
			Reflective: reflective,
		})
	}
	return segments
}

// Contains reports whether p lies strictly inside the object's outline.
//
// Line-like objects contain nothing.
func (o Object) Contains(p r2.Vec) bool {
	if o.Depth == 0 {
		return false
	}
	return pointInPolygon(p, o.Outline())
}

// pointInPolygon is the even-odd crossing test.
func pointInPolygon(p r2.Vec, polygon []r2.Vec) bool {
	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// BuildSceneGeometry converts scene objects into the geometry model, one record per object, in order.
func BuildSceneGeometry(objects []Object) (SceneGeometry, error) {
	geometry := SceneGeometry{Records: make([]GeometryRecord, 0, len(objects))}
	for i, obj := range objects {
		if obj.ID == "" {
			return SceneGeometry{}, fmt.Errorf("object %d: empty id", i)
		}
		if _, ok := kindNames[obj.Kind]; !ok {
			return SceneGeometry{}, fmt.Errorf("object %q: invalid kind %d", obj.ID, int(obj.Kind))
		}
		geometry.Records = append(geometry.Records, GeometryRecord{
			OwnerID:  obj.ID,
			Kind:     obj.Kind,
			Segments: obj.Segments(),
		})
	}
	return geometry, nil
}
