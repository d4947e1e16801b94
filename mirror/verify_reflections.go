//go:build verify_reflections
// +build verify_reflections

package mirror

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Constants for verification
const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	log.Println("Reflection verification enabled.")
}

func verifyReflectionLaw(incident, normal, reflected r2.Vec) {
	n := Normalize(normal)
	// Angle of incidence should equal angle of reflection
	incidentAngle := math.Acos(math.Abs(r2.Dot(Normalize(incident), n)))
	reflectedAngle := math.Acos(math.Abs(r2.Dot(Normalize(reflected), n)))
	if !scalar.EqualWithinAbs(incidentAngle, reflectedAngle, angleEpsilon) {
		panic(fmt.Sprintf("angle of incidence %v does not equal angle of reflection %v", incidentAngle, reflectedAngle))
	}
	// Reflection should not change the length of the direction
	if !scalar.EqualWithinAbs(r2.Norm(incident), r2.Norm(reflected), lengthEpsilon) {
		panic(fmt.Sprintf("reflection changed direction length from %v to %v", r2.Norm(incident), r2.Norm(reflected)))
	}
}
