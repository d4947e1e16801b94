package mirror

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// RAY_REACH is how far a ray is extended when it is tested against a segment.
//
// Rays are treated as very long segments rather than infinite lines.
const RAY_REACH = 1e4

// parallelEpsilon is the determinant below which two segments are treated as parallel.
const parallelEpsilon = 1e-10

// V is a shorthand constructor for r2.Vec
func V(X, Y float64) r2.Vec {
	return r2.Vec{X: X, Y: Y}
}

// Normalize returns the unit vector pointing along v, or the zero vector if v has no length.
func Normalize(v r2.Vec) r2.Vec {
	if v.X == 0 && v.Y == 0 {
		return r2.Vec{}
	}
	return r2.Unit(v)
}

// Reflect mirrors incident about the line whose normal is normal.
//
// normal need not be unit length but must not be the zero vector.
func Reflect(incident, normal r2.Vec) r2.Vec {
	n := Normalize(normal)
	return r2.Sub(incident, r2.Scale(2*r2.Dot(incident, n), n))
}

// DirectionFromAngle converts an orientation in radians into a unit direction.
// 0 points along +X and positive angles rotate toward +Y.
func DirectionFromAngle(theta float64) r2.Vec {
	return V(math.Cos(theta), math.Sin(theta))
}

// AngleFromDirection is the inverse of DirectionFromAngle.
func AngleFromDirection(d r2.Vec) float64 {
	return math.Atan2(d.Y, d.X)
}

// SegmentIntersection returns the point where segment p1-p2 crosses segment p3-p4.
func SegmentIntersection(p1, p2, p3, p4 r2.Vec) (r2.Vec, bool) {
	d1 := r2.Sub(p2, p1)
	d2 := r2.Sub(p4, p3)
	det := r2.Cross(d1, d2)
	if math.Abs(det) < parallelEpsilon {
		return r2.Vec{}, false
	}
	w := r2.Sub(p3, p1)
	t := r2.Cross(w, d2) / det
	u := r2.Cross(w, d1) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return r2.Vec{}, false
	}
	return r2.Add(p1, r2.Scale(t, d1)), true
}

// RayVsSegment intersects the ray starting at origin along dir with segment a-b.
//
// It returns the intersection point and its distance from origin.
func RayVsSegment(origin, dir, a, b r2.Vec) (r2.Vec, float64, bool) {
	far := r2.Add(origin, r2.Scale(RAY_REACH, dir))
	p, ok := SegmentIntersection(origin, far, a, b)
	if !ok {
		return r2.Vec{}, 0, false
	}
	toPoint := r2.Sub(p, origin)
	if r2.Dot(toPoint, dir) < 0 {
		return r2.Vec{}, 0, false
	}
	return p, r2.Norm(toPoint), true
}

// NormalFromSegment returns the unit normal (dy, -dx) of segment a-b.
//
// Which physical side of an obstacle it points to depends on winding; reflection
// does not care about the sign.
func NormalFromSegment(a, b r2.Vec) r2.Vec {
	d := r2.Sub(b, a)
	return Normalize(V(d.Y, -d.X))
}
