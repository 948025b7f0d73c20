package boxbuilder

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UNIT_ROTATION_TOLERANCE bounds how far a rotation's length may drift from 1
const UNIT_ROTATION_TOLERANCE = 1e-6

// Inputs are validated upstream: a non-finite value here is a caller bug, not a recoverable state.

func mustFinite(v mgl64.Vec3, what string) {
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			panic(fmt.Sprintf("boxbuilder: non-finite %s %v", what, v))
		}
	}
}

func mustRotation(q mgl64.Quat, what string) {
	mustFinite(q.V, what)
	if math.IsNaN(q.W) || math.IsInf(q.W, 0) {
		panic(fmt.Sprintf("boxbuilder: non-finite %s %v", what, q))
	}
	if math.Abs(q.Len()-1) > UNIT_ROTATION_TOLERANCE {
		panic(fmt.Sprintf("boxbuilder: %s is not a unit quaternion (length %v)", what, q.Len()))
	}
}

func mustNormalize(v mgl64.Vec3, what string) mgl64.Vec3 {
	mustFinite(v, what)
	if v.LenSqr() < 1e-18 {
		panic(fmt.Sprintf("boxbuilder: zero-length %s", what))
	}
	return v.Normalize()
}
