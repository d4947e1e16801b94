package mirror

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// MAX_BOUNCES is the default number of reflections a ray may make.
const MAX_BOUNCES = 10

// ESCAPE_LENGTH caps how far a ray that hits nothing is followed.
const ESCAPE_LENGTH = 20.0

// TraceParams contains parameters to guide tracing
//
// Zero fields fall back to the package defaults.
type TraceParams struct {
	// Maximum number of reflections to simulate
	MaxBounces int
	// Longest leg drawn for a ray that escapes the scene
	EscapeLength float64
	// Hits closer than this to the ray origin are ignored
	HitEpsilon float64
}

// DefaultTraceParams returns the policy used by TraceRay.
func DefaultTraceParams() TraceParams {
	return TraceParams{
		MaxBounces:   MAX_BOUNCES,
		EscapeLength: ESCAPE_LENGTH,
		HitEpsilon:   HIT_EPSILON,
	}
}

func (p TraceParams) withDefaults() TraceParams {
	d := DefaultTraceParams()
	if p.MaxBounces <= 0 {
		p.MaxBounces = d.MaxBounces
	}
	if p.EscapeLength <= 0 {
		p.EscapeLength = d.EscapeLength
	}
	if p.HitEpsilon <= 0 {
		p.HitEpsilon = d.HitEpsilon
	}
	return p
}

// RaySegment is one straight leg of a traced ray.
type RaySegment struct {
	Origin r2.Vec
	// Unit direction of travel
	Direction r2.Vec
	Length    float64
	// ID of the object this leg ended on. Empty if the leg ran out of length without hitting anything.
	HitOwnerID string
}

// HasHit reports whether the leg ended by striking an object.
func (s RaySegment) HasHit() bool {
	return s.HitOwnerID != ""
}

// End returns the point where the leg stops.
func (s RaySegment) End() r2.Vec {
	return r2.Add(s.Origin, r2.Scale(s.Length, s.Direction))
}

// RayPath is the ordered list of legs produced by a single trace.
type RayPath []RaySegment

// TotalLength is the distance travelled along all legs.
func (p RayPath) TotalLength() float64 {
	total := 0.0
	for _, seg := range p {
		total += seg.Length
	}
	return total
}

// Terminal returns the last leg of the path.
func (p RayPath) Terminal() (RaySegment, bool) {
	if len(p) == 0 {
		return RaySegment{}, false
	}
	return p[len(p)-1], true
}

// Bounces counts the reflections along the path.
func (p RayPath) Bounces() int {
	if len(p) == 0 {
		return 0
	}
	n := 0
	for _, seg := range p[:len(p)-1] {
		if seg.HasHit() {
			n++
		}
	}
	return n
}

// Points returns the viewer position followed by the end of every leg.
func (p RayPath) Points() []r2.Vec {
	if len(p) == 0 {
		return nil
	}
	points := make([]r2.Vec, 0, len(p)+1)
	points = append(points, p[0].Origin)
	for _, seg := range p {
		points = append(points, seg.End())
	}
	return points
}

// traceState is the accumulator carried between steps of a trace.
type traceState struct {
	origin    r2.Vec
	direction r2.Vec
	travelled float64
	bounces   int
}

// TraceRay traces the light path seen by a viewer at viewerPosition looking along viewerHeading (radians).
//
// Tracing stops when the ray is absorbed, escapes, or runs out of bounces or length.
func TraceRay(geometry SceneGeometry, viewerPosition r2.Vec, viewerHeading, maxLength float64) RayPath {
	return TraceRayWithParams(geometry, viewerPosition, viewerHeading, maxLength, DefaultTraceParams())
}

// TraceRayWithParams is TraceRay with an explicit tracing policy.
func TraceRayWithParams(geometry SceneGeometry, viewerPosition r2.Vec, viewerHeading, maxLength float64, params TraceParams) RayPath {
	params = params.withDefaults()
	state := traceState{
		origin:    viewerPosition,
		direction: DirectionFromAngle(viewerHeading),
	}

	if maxLength <= 0 {
		return RayPath{{Origin: state.origin, Direction: state.direction}}
	}

	var path RayPath
	for state.travelled < maxLength && state.bounces < params.MaxBounces {
		hit, ok := findClosestHit(state.origin, state.direction, geometry, params.HitEpsilon)
		if !ok {
			if remaining := maxLength - state.travelled; remaining > 0 {
				path = append(path, RaySegment{
					Origin:    state.origin,
					Direction: state.direction,
					Length:    min(remaining, params.EscapeLength),
				})
			}
			return path
		}

		path = append(path, RaySegment{
			Origin:     state.origin,
			Direction:  state.direction,
			Length:     hit.Distance,
			HitOwnerID: hit.OwnerID,
		})
		if !hit.Reflective {
			return path
		}

		reflected := Reflect(state.direction, hit.Normal)
		verifyReflectionLaw(state.direction, hit.Normal, reflected)
		state = traceState{
			origin:    hit.Point,
			direction: reflected,
			travelled: state.travelled + hit.Distance,
			bounces:   state.bounces + 1,
		}
	}
	return path
}
