package actor

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half-line starting at Origin. Direction is expected to be unit length
// so that hit distances are expressed in world units.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
