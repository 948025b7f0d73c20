package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Phase tells which dimensions of a box are meaningful
type Phase uint8

const (
	// PhaseBase boxes only have a meaningful width and depth, height holds its drawing default
	PhaseBase Phase = iota
	// PhaseExtruded boxes are committed: their geometry never changes again
	PhaseExtruded
)

func (p Phase) String() string {
	switch p {
	case PhaseBase:
		return "base"
	case PhaseExtruded:
		return "extruded"
	}
	return "unknown"
}

var (
	localUp      = mgl64.Vec3{0, 1, 0}
	localRight   = mgl64.Vec3{1, 0, 0}
	localForward = mgl64.Vec3{0, 0, 1}
)

// Box is a rectangular prism drawn on a surface then extruded along its local up axis.
// Its pivot is the bottom-center: Transform.Position is the center of the base face,
// and the box spans [0, Dimensions.Y] along its local up axis.
type Box struct {
	ID uuid.UUID

	// Anchor is the world-space corner where the base drawing started
	Anchor    mgl64.Vec3
	Transform Transform

	// Dimensions holds (width, height, depth) in local space
	Dimensions mgl64.Vec3
	Phase      Phase

	// IsBase is set once the base gesture was released, making the box eligible for extrusion
	IsBase bool
}

// NewBox creates a box whose bottom-center sits on anchor
func NewBox(anchor mgl64.Vec3, rotation mgl64.Quat, dimensions mgl64.Vec3) *Box {
	return &Box{
		ID:         uuid.New(),
		Anchor:     anchor,
		Transform:  NewTransform(anchor, rotation),
		Dimensions: dimensions,
		Phase:      PhaseBase,
	}
}

// IsFrozen reports whether the box geometry is committed
func (b *Box) IsFrozen() bool {
	return b.Phase == PhaseExtruded
}

// CanExtrude reports whether a pointer may pick this box to start an extrusion
func (b *Box) CanExtrude() bool {
	return b.IsBase && b.Phase == PhaseBase
}

// Up returns the local up axis in world space
func (b *Box) Up() mgl64.Vec3 {
	return b.Transform.Rotation.Rotate(localUp)
}

// Right returns the local right axis in world space
func (b *Box) Right() mgl64.Vec3 {
	return b.Transform.Rotation.Rotate(localRight)
}

// Forward returns the local forward axis in world space
func (b *Box) Forward() mgl64.Vec3 {
	return b.Transform.Rotation.Rotate(localForward)
}

// BottomCenter returns the world position of the base face center
func (b *Box) BottomCenter() mgl64.Vec3 {
	return b.Transform.Position
}

// Centroid returns the world position of the geometric center
func (b *Box) Centroid() mgl64.Vec3 {
	return b.Transform.Position.Add(b.Up().Mul(b.Dimensions.Y() * 0.5))
}

// LocalBounds returns the box extent in its own frame, pivot at the bottom-center
func (b *Box) LocalBounds() AABB {
	hx := b.Dimensions.X() * 0.5
	hz := b.Dimensions.Z() * 0.5

	return AABB{
		Min: mgl64.Vec3{-hx, 0, -hz},
		Max: mgl64.Vec3{hx, b.Dimensions.Y(), hz},
	}
}

// Corners returns the 8 world-space corners, bottom face first
func (b *Box) Corners() [8]mgl64.Vec3 {
	bounds := b.LocalBounds()
	lo, hi := bounds.Min, bounds.Max

	local := [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
	}

	var corners [8]mgl64.Vec3
	for i, corner := range local {
		corners[i] = b.Transform.ToWorld(corner)
	}

	return corners
}

// ComputeAABB returns the world-space axis-aligned bounds of the box
func (b *Box) ComputeAABB() AABB {
	corners := b.Corners()
	min := corners[0]
	max := corners[0]

	for i := 1; i < 8; i++ {
		min[0] = math.Min(min[0], corners[i][0])
		min[1] = math.Min(min[1], corners[i][1])
		min[2] = math.Min(min[2], corners[i][2])

		max[0] = math.Max(max[0], corners[i][0])
		max[1] = math.Max(max[1], corners[i][1])
		max[2] = math.Max(max[2], corners[i][2])
	}

	return AABB{Min: min, Max: max}
}

// ContainsPoint checks if a world-space point is inside the box
func (b *Box) ContainsPoint(point mgl64.Vec3) bool {
	return b.LocalBounds().ContainsPoint(b.Transform.ToLocal(point))
}

// IntersectRay tests a world-space ray against the oriented box.
// The ray is moved into the box frame, where the box is an AABB; rotations keep
// lengths so the returned distance is valid in world space.
func (b *Box) IntersectRay(ray Ray) (float64, bool) {
	local := Ray{
		Origin:    b.Transform.ToLocal(ray.Origin),
		Direction: b.Transform.InverseRotation.Rotate(ray.Direction),
	}

	return b.LocalBounds().IntersectRay(local)
}

// Descriptor is an immutable snapshot of a box, safe to hand to external readers
type Descriptor struct {
	ID           uuid.UUID
	Anchor       mgl64.Vec3
	BottomCenter mgl64.Vec3
	Centroid     mgl64.Vec3
	Orientation  mgl64.Quat
	Dimensions   mgl64.Vec3
	// Bounds is the world-space AABB, used to fit generated content into the box
	Bounds AABB
	Phase  Phase
}

// Descriptor snapshots the current geometry of the box
func (b *Box) Descriptor() Descriptor {
	return Descriptor{
		ID:           b.ID,
		Anchor:       b.Anchor,
		BottomCenter: b.BottomCenter(),
		Centroid:     b.Centroid(),
		Orientation:  b.Transform.Rotation,
		Dimensions:   b.Dimensions,
		Bounds:       b.ComputeAABB(),
		Phase:        b.Phase,
	}
}
