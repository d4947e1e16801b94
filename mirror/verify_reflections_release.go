//go:build !verify_reflections
// +build !verify_reflections

package mirror

import "gonum.org/v1/gonum/spatial/r2"

// Compiled out unless built with -tags verify_reflections
func verifyReflectionLaw(incident, normal, reflected r2.Vec) {}
