package boxbuilder

import (
	"math"

	"github.com/akmonengine/boxbuilder/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Below this squared length, a flattened forward vector is considered degenerate
const DEGENERATE_FORWARD_EPSILON = 1e-6

var (
	worldUp = mgl64.Vec3{0, 1, 0}
	// Tried in order when the camera looks along the up axis.
	// The second one covers an up axis parallel to Z.
	fallbackForwards = [...]mgl64.Vec3{{0, 0, -1}, {0, 1, 0}}
)

// baseUp picks the up axis of a new base according to the policy
func baseUp(policy config.UpAxisPolicy, hit SurfaceHit) mgl64.Vec3 {
	if policy == config.UpWorld || !hit.HasNormal {
		return worldUp
	}
	return mustNormalize(hit.Normal, "surface normal")
}

// projectOnPlane removes the component of v along the unit normal
func projectOnPlane(v, normal mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(normal.Mul(v.Dot(normal)))
}

// flattenForward projects the view direction onto the base plane
func flattenForward(view, up mgl64.Vec3) mgl64.Vec3 {
	forward := projectOnPlane(view, up)
	if forward.LenSqr() >= DEGENERATE_FORWARD_EPSILON {
		return forward.Normalize()
	}

	for _, fallback := range fallbackForwards {
		forward = projectOnPlane(fallback, up)
		if forward.LenSqr() >= DEGENERATE_FORWARD_EPSILON {
			return forward.Normalize()
		}
	}

	// unreachable for a unit up axis: it cannot be parallel to both fallbacks
	panic("boxbuilder: no forward direction for up axis")
}

// baseOrientation builds the right-handed frame (right, up, forward) as a rotation
func baseOrientation(up, forward mgl64.Vec3) mgl64.Quat {
	right := up.Cross(forward).Normalize()
	forward = right.Cross(up).Normalize()

	basis := mgl64.Mat3FromCols(right, up, forward)

	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// extrusionAnchor is captured when an extrusion starts
type extrusionAnchor struct {
	pivot         mgl64.Vec3
	up            mgl64.Vec3
	initialHeight float64
	initialSignal float64
}

// extrusionSignal measures the controller along the extrusion axis.
// Position projection: signed distance from the base plane.
// Orientation projection: vertical component of the pointing direction, sin(pitch).
func extrusionSignal(strategy config.ExtrusionStrategy, anchor extrusionAnchor, pose Pose) float64 {
	if strategy == config.ExtrudeOrientation {
		return pose.Forward().Y()
	}
	return pose.Position.Sub(anchor.pivot).Dot(anchor.up)
}

// extrudedHeight applies the signal delta to the captured height and clamps it
func extrudedHeight(cfg config.Config, anchor extrusionAnchor, signal float64) float64 {
	delta := signal - anchor.initialSignal
	if cfg.ExtrusionStrategy == config.ExtrudeOrientation {
		delta *= cfg.OrientationSensitivity
	}

	return math.Max(cfg.MinDimension, anchor.initialHeight+delta)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
