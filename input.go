package boxbuilder

import (
	"github.com/akmonengine/boxbuilder/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ControllerID is the stable identity of a pointing device
type ControllerID int

var pointerForward = mgl64.Vec3{0, 0, -1}

// Pose is a world-space position and orientation. Devices point along their local -Z.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward returns the pointing direction
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(pointerForward)
}

// Ray returns the pointing ray
func (p Pose) Ray() actor.Ray {
	return actor.Ray{Origin: p.Position, Direction: p.Forward()}
}

// SurfaceHit is a resolved intersection between the pointer ray and the environment
type SurfaceHit struct {
	Point     mgl64.Vec3
	Normal    mgl64.Vec3
	HasNormal bool
}

// PointerEvent is a pointer-down, move or up sample.
// Hit is nil when the pointer ray does not meet any surface.
type PointerEvent struct {
	Controller ControllerID
	Pose       Pose
	Hit        *SurfaceHit
}

// Viewer gives the orientation of the user's camera, used to face new bases toward the user
type Viewer interface {
	ViewRotation() mgl64.Quat
}

// ViewerFunc adapts a function to the Viewer interface
type ViewerFunc func() mgl64.Quat

func (f ViewerFunc) ViewRotation() mgl64.Quat {
	return f()
}
