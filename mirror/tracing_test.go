package mirror

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeometry(t *testing.T, objects ...Object) SceneGeometry {
	t.Helper()
	geometry, err := BuildSceneGeometry(objects)
	require.NoError(t, err)
	return geometry
}

// verticalLine returns a line-like object along x = x spanning y in [-halfLength, halfLength].
func verticalLine(id string, kind ObjectKind, x, halfLength float64) Object {
	return Object{ID: id, Kind: kind, Position: V(x, 0), Angle: math.Pi / 2, Width: 2 * halfLength}
}

func TestTraceNoObstacles(t *testing.T) {
	tests := []struct {
		name      string
		maxLength float64
		expect    float64
	}{
		{"under_cap", 10, 10},
		{"at_cap", ESCAPE_LENGTH, ESCAPE_LENGTH},
		{"over_cap", 50, ESCAPE_LENGTH},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := TraceRay(SceneGeometry{}, V(1, 2), 0.7, test.maxLength)
			require.Len(t, path, 1)
			assert.InDelta(t, test.expect, path[0].Length, tol)
			assert.False(t, path[0].HasHit())
			assertVec(t, V(1, 2), path[0].Origin)
			assertVec(t, DirectionFromAngle(0.7), path[0].Direction)
		})
	}
}

func TestTraceSingleWall(t *testing.T) {
	geometry := mustGeometry(t, verticalLine("wall", Wall, 5, 10))

	path := TraceRay(geometry, V(0, 0), 0, 10)
	require.Len(t, path, 1)
	assert.InDelta(t, 5, path[0].Length, tol)
	assert.Equal(t, "wall", path[0].HitOwnerID)
	assertVec(t, V(5, 0), path[0].End())
}

func TestTraceSingleMirror45(t *testing.T) {
	geometry := mustGeometry(t, verticalLine("mirror", Mirror, 2, 10))

	path := TraceRay(geometry, V(0, 0), math.Pi/4, 10)
	require.Len(t, path, 2)

	first, second := path[0], path[1]
	assert.Equal(t, "mirror", first.HitOwnerID)
	assert.InDelta(t, 2*math.Sqrt2, first.Length, tol)
	assertVec(t, V(2, 2), second.Origin)
	assert.InDelta(t, -first.Direction.X, second.Direction.X, tol)
	assert.InDelta(t, first.Direction.Y, second.Direction.Y, tol)

	// The reflected ray escapes with whatever length budget is left
	assert.False(t, second.HasHit())
	assert.InDelta(t, 10-2*math.Sqrt2, second.Length, tol)
	assert.Equal(t, 1, path.Bounces())
}

func TestTraceReflectionThenAbsorb(t *testing.T) {
	geometry := mustGeometry(t,
		verticalLine("mirror", Mirror, 2, 10),
		Object{ID: "ceiling", Kind: Wall, Position: V(0, 4), Width: 10},
	)

	path := TraceRay(geometry, V(0, 0), math.Pi/4, 100)
	require.Len(t, path, 2)
	assert.Equal(t, "mirror", path[0].HitOwnerID)
	assert.Equal(t, "ceiling", path[1].HitOwnerID)
	assertVec(t, V(0, 4), path[1].End())
	assert.InDelta(t, 4*math.Sqrt2, path.TotalLength(), tol)
}

func TestTraceBounceBudget(t *testing.T) {
	geometry := mustGeometry(t,
		verticalLine("left", Mirror, 0, 100),
		verticalLine("right", Mirror, 1, 100),
	)

	for _, heading := range []float64{0, 0.01, math.Pi - 0.2} {
		for _, maxLength := range []float64{50, 1e3, 1e6} {
			path := TraceRay(geometry, V(0.5, 0), heading, maxLength)
			assert.LessOrEqual(t, len(path), MAX_BOUNCES+1)
			assert.Equal(t, MAX_BOUNCES, path.Bounces()+1, "every leg ends on a mirror")
			for _, seg := range path {
				assert.True(t, seg.HasHit())
			}
		}
	}

	path := TraceRayWithParams(geometry, V(0.5, 0), 0, 1e3, TraceParams{MaxBounces: 3})
	assert.Len(t, path, 3)
}

func TestTraceLengthBudget(t *testing.T) {
	geometry := mustGeometry(t,
		verticalLine("left", Mirror, 0, 100),
		verticalLine("right", Mirror, 1, 100),
	)

	// Legs of 0.5, 1, 1, 1 take the ray past a budget of 3
	path := TraceRay(geometry, V(0.5, 0), 0, 3)
	require.Len(t, path, 4)
	assert.InDelta(t, 3.5, path.TotalLength(), tol)
}

func TestTraceZeroBudget(t *testing.T) {
	geometry := mustGeometry(t, verticalLine("wall", Wall, 5, 10))

	for _, maxLength := range []float64{0, -3} {
		path := TraceRay(geometry, V(1, 1), math.Pi, maxLength)
		require.Len(t, path, 1)
		assert.Equal(t, 0.0, path[0].Length)
		assert.False(t, path[0].HasHit())
		assertVec(t, V(1, 1), path[0].Origin)
		assertVec(t, V(-1, 0), path[0].Direction)
	}
}

func TestTraceDeterminism(t *testing.T) {
	geometry := mustGeometry(t,
		verticalLine("left", Mirror, -3, 4),
		Object{ID: "tilted", Kind: Mirror, Position: V(3, 1), Angle: 1.1, Width: 5},
		Object{ID: "box", Kind: Target, Position: V(0, 5), Width: 2, Depth: 1, Angle: 0.3},
	)

	path1 := TraceRay(geometry, V(0, 0), 0.4, 80)
	path2 := TraceRay(geometry, V(0, 0), 0.4, 80)
	assert.Equal(t, path1, path2)
}

func TestTraceEscapeLengthParam(t *testing.T) {
	path := TraceRayWithParams(SceneGeometry{}, V(0, 0), 0, 100, TraceParams{EscapeLength: 35})
	require.Len(t, path, 1)
	assert.InDelta(t, 35, path[0].Length, tol)
}

func TestTraceHitEpsilonParam(t *testing.T) {
	geometry := mustGeometry(t,
		verticalLine("near", Mirror, 0.3, 10),
		verticalLine("far", Wall, 2, 10),
	)

	path := TraceRay(geometry, V(0, 0), 0, 100)
	require.NotEmpty(t, path)
	assert.Equal(t, "near", path[0].HitOwnerID)

	path = TraceRayWithParams(geometry, V(0, 0), 0, 100, TraceParams{HitEpsilon: 0.5})
	require.Len(t, path, 1)
	assert.Equal(t, "far", path[0].HitOwnerID)
	assert.InDelta(t, 2, path[0].Length, tol)
}

func TestTraceHitEpsilonDefault(t *testing.T) {
	// The wall sits inside the default epsilon but outside a smaller one
	geometry := mustGeometry(t,
		verticalLine("close", Wall, 0.0005, 10),
		verticalLine("far", Wall, 2, 10),
	)

	tests := []struct {
		name    string
		epsilon float64
		expect  string
	}{
		{"zero", 0, "far"},
		{"negative", -1, "far"},
		{"smaller", 1e-4, "close"},
		{"default", HIT_EPSILON, "far"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := TraceRayWithParams(geometry, V(0, 0), 0, 100, TraceParams{HitEpsilon: test.epsilon})
			require.Len(t, path, 1)
			assert.Equal(t, test.expect, path[0].HitOwnerID)
		})
	}
}

func TestRayPathHelpers(t *testing.T) {
	var empty RayPath
	_, ok := empty.Terminal()
	assert.False(t, ok)
	assert.Nil(t, empty.Points())
	assert.Equal(t, 0, empty.Bounces())

	path := RayPath{
		{Origin: V(0, 0), Direction: V(1, 0), Length: 2, HitOwnerID: "m"},
		{Origin: V(2, 0), Direction: V(0, 1), Length: 3},
	}
	assert.Equal(t, []float64{0, 2, 2}, []float64{path.Points()[0].X, path.Points()[1].X, path.Points()[2].X})
	assertVec(t, V(2, 3), path.Points()[2])
	assert.InDelta(t, 5, path.TotalLength(), tol)
	assert.Equal(t, 1, path.Bounces())
}
