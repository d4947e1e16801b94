package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentRecord(id string, kind ObjectKind, a, b [2]float64) GeometryRecord {
	return GeometryRecord{
		OwnerID: id,
		Kind:    kind,
		Segments: []LineSegment{{
			P1:         V(a[0], a[1]),
			P2:         V(b[0], b[1]),
			OwnerID:    id,
			Reflective: kind.Reflective(),
		}},
	}
}

func TestFindClosestHit(t *testing.T) {
	geometry := SceneGeometry{Records: []GeometryRecord{
		segmentRecord("far", Wall, [2]float64{8, -1}, [2]float64{8, 1}),
		segmentRecord("near", Mirror, [2]float64{3, -1}, [2]float64{3, 1}),
		segmentRecord("behind", Wall, [2]float64{-1, -1}, [2]float64{-1, 1}),
	}}

	hit, ok := FindClosestHit(V(0, 0), V(1, 0), geometry)
	require.True(t, ok)
	assert.Equal(t, "near", hit.OwnerID)
	assert.True(t, hit.Reflective)
	assert.InDelta(t, 3, hit.Distance, tol)
	assertVec(t, V(3, 0), hit.Point)
	assertVec(t, V(1, 0), hit.Normal)

	hit, ok = FindClosestHit(V(0, 0), V(-1, 0), geometry)
	require.True(t, ok)
	assert.Equal(t, "behind", hit.OwnerID)
	assert.False(t, hit.Reflective)

	_, ok = FindClosestHit(V(0, 0), V(0, 1), geometry)
	assert.False(t, ok)
}

func TestFindClosestHitIgnoresSurfaceAtOrigin(t *testing.T) {
	geometry := SceneGeometry{Records: []GeometryRecord{
		segmentRecord("left", Mirror, [2]float64{0, -1}, [2]float64{0, 1}),
		segmentRecord("right", Mirror, [2]float64{2, -1}, [2]float64{2, 1}),
	}}

	// Leaving the left mirror must not hit it again
	hit, ok := FindClosestHit(V(0, 0), V(1, 0), geometry)
	require.True(t, ok)
	assert.Equal(t, "right", hit.OwnerID)

	// Nor is anything within the epsilon accepted
	_, ok = FindClosestHit(V(2-HIT_EPSILON/2, 0), V(1, 0), geometry)
	assert.False(t, ok)
}

func TestFindClosestHitTieBreak(t *testing.T) {
	geometry := SceneGeometry{Records: []GeometryRecord{
		segmentRecord("first", Wall, [2]float64{4, -1}, [2]float64{4, 1}),
		segmentRecord("second", Mirror, [2]float64{4, -1}, [2]float64{4, 1}),
	}}

	hit, ok := FindClosestHit(V(0, 0), V(1, 0), geometry)
	require.True(t, ok)
	assert.Equal(t, "first", hit.OwnerID)
}

func TestFindClosestHitSkipsNonColliding(t *testing.T) {
	// Records of non-colliding kinds are ignored even if they carry segments
	geometry := SceneGeometry{Records: []GeometryRecord{
		segmentRecord("viewer", Viewer, [2]float64{1, -1}, [2]float64{1, 1}),
		segmentRecord("ghost", Phantom, [2]float64{2, -1}, [2]float64{2, 1}),
		segmentRecord("wall", Wall, [2]float64{6, -1}, [2]float64{6, 1}),
	}}

	hit, ok := FindClosestHit(V(0, 0), V(1, 0), geometry)
	require.True(t, ok)
	assert.Equal(t, "wall", hit.OwnerID)

	_, ok = FindClosestHit(V(0, 0), V(1, 0), SceneGeometry{})
	assert.False(t, ok)
}
