package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// IntersectRay runs the slab test against the AABB.
// It returns the distance along the ray to the entry point, or 0 when the
// origin already lies inside. Hits behind the origin are rejected.
func (a AABB) IntersectRay(ray Ray) (float64, bool) {
	const eps = 1e-12
	tmin := -math.MaxFloat64
	tmax := math.MaxFloat64

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		dir := ray.Direction[axis]

		// Parallel to the slab: the origin must already be between the planes
		if math.Abs(dir) < eps {
			if origin < a.Min[axis] || origin > a.Max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (a.Min[axis] - origin) / dir
		t2 := (a.Max[axis] - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}

	return math.Max(tmin, 0), true
}
