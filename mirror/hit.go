package mirror

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// HIT_EPSILON is the minimum distance a hit must lie from the ray origin.
//
// It keeps a reflected ray from immediately hitting the surface it just left.
const HIT_EPSILON = 0.001

// Hit describes where a ray first strikes the scene.
type Hit struct {
	Point    r2.Vec
	Distance float64
	// ID of the object owning the segment that was hit
	OwnerID    string
	Reflective bool
	// Unit normal of the segment that was hit
	Normal r2.Vec
}

// FindClosestHit returns the nearest hit along the ray from origin in direction.
//
// Equally distant hits are resolved in favor of the segment found first.
func FindClosestHit(origin, direction r2.Vec, geometry SceneGeometry) (Hit, bool) {
	return findClosestHit(origin, direction, geometry, HIT_EPSILON)
}

func findClosestHit(origin, direction r2.Vec, geometry SceneGeometry, epsilon float64) (Hit, bool) {
	var closest Hit
	found := false
	for _, rec := range geometry.Records {
		if !rec.Kind.Collides() {
			continue
		}
		for _, seg := range rec.Segments {
			point, dist, ok := RayVsSegment(origin, direction, seg.P1, seg.P2)
			if !ok || dist <= epsilon {
				continue
			}
			if found && dist >= closest.Distance {
				continue
			}
			closest = Hit{
				Point:      point,
				Distance:   dist,
				OwnerID:    seg.OwnerID,
				Reflective: seg.Reflective,
				Normal:     seg.Normal(),
			}
			found = true
		}
	}
	return closest, found
}
