package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func newTestBox(position mgl64.Vec3, rotation mgl64.Quat, dimensions mgl64.Vec3) *Box {
	return NewBox(position, rotation, dimensions)
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewBox(t *testing.T) {
	anchor := mgl64.Vec3{1, 2, 3}
	box := NewBox(anchor, mgl64.QuatIdent(), mgl64.Vec3{0.005, 0.005, 0.005})

	if box.ID == uuid.Nil {
		t.Error("NewBox should assign an ID")
	}
	if box.Anchor != anchor {
		t.Errorf("Anchor = %v, want %v", box.Anchor, anchor)
	}
	if box.BottomCenter() != anchor {
		t.Errorf("BottomCenter = %v, want %v", box.BottomCenter(), anchor)
	}
	if box.Phase != PhaseBase {
		t.Errorf("Phase = %v, want %v", box.Phase, PhaseBase)
	}
	if box.IsBase || box.CanExtrude() {
		t.Error("A box being drawn should not be eligible for extrusion")
	}

	other := NewBox(anchor, mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1})
	if other.ID == box.ID {
		t.Error("Boxes should get distinct IDs")
	}
}

func TestBox_PhaseFlags(t *testing.T) {
	box := NewBox(mgl64.Vec3{}, mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1})

	box.IsBase = true
	if !box.CanExtrude() {
		t.Error("A drawn base should be eligible for extrusion")
	}
	if box.IsFrozen() {
		t.Error("A drawn base should not be frozen")
	}

	box.Phase = PhaseExtruded
	if box.CanExtrude() {
		t.Error("An extruded box should not be eligible for extrusion")
	}
	if !box.IsFrozen() {
		t.Error("An extruded box should be frozen")
	}
}

func TestPhase_String(t *testing.T) {
	if PhaseBase.String() != "base" || PhaseExtruded.String() != "extruded" {
		t.Errorf("unexpected phase names %q %q", PhaseBase, PhaseExtruded)
	}
	if Phase(42).String() != "unknown" {
		t.Errorf("Phase(42) = %q, want unknown", Phase(42))
	}
}

// =============================================================================
// Geometry Tests
// =============================================================================

func TestBox_Axes(t *testing.T) {
	// Half turn about Y
	box := newTestBox(mgl64.Vec3{}, mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{1, 1, 1})

	if !approxVec(box.Up(), mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Up = %v", box.Up())
	}
	if !approxVec(box.Right(), mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("Right = %v", box.Right())
	}
	if !approxVec(box.Forward(), mgl64.Vec3{0, 0, -1}) {
		t.Errorf("Forward = %v", box.Forward())
	}
}

func TestBox_Centroid(t *testing.T) {
	tests := []struct {
		name     string
		rotation mgl64.Quat
		want     mgl64.Vec3
	}{
		{"Upright", mgl64.QuatIdent(), mgl64.Vec3{1, 1, 0}},
		{"On a wall facing +X", mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 0, 1}), mgl64.Vec3{2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := newTestBox(mgl64.Vec3{1, 0, 0}, tt.rotation, mgl64.Vec3{1, 2, 1})
			if got := box.Centroid(); !approxVec(got, tt.want) {
				t.Errorf("Centroid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBox_LocalBounds(t *testing.T) {
	box := newTestBox(mgl64.Vec3{}, mgl64.QuatIdent(), mgl64.Vec3{2, 3, 4})

	bounds := box.LocalBounds()
	if bounds.Min != (mgl64.Vec3{-1, 0, -2}) || bounds.Max != (mgl64.Vec3{1, 3, 2}) {
		t.Errorf("LocalBounds = %+v", bounds)
	}
}

func TestBox_ComputeAABB(t *testing.T) {
	t.Run("Axis aligned", func(t *testing.T) {
		box := newTestBox(mgl64.Vec3{1, 1, 1}, mgl64.QuatIdent(), mgl64.Vec3{2, 2, 2})
		aabb := box.ComputeAABB()

		if !approxVec(aabb.Min, mgl64.Vec3{0, 1, 0}) || !approxVec(aabb.Max, mgl64.Vec3{2, 3, 2}) {
			t.Errorf("ComputeAABB = %+v", aabb)
		}
	})

	t.Run("Rotated 45 degrees about Y", func(t *testing.T) {
		box := newTestBox(mgl64.Vec3{}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{2, 1, 2})
		aabb := box.ComputeAABB()

		if math.Abs(aabb.Max.X()-math.Sqrt2) > 1e-9 || math.Abs(aabb.Min.Z()+math.Sqrt2) > 1e-9 {
			t.Errorf("ComputeAABB = %+v, expected half extent sqrt(2) on X and Z", aabb)
		}
		if math.Abs(aabb.Min.Y()) > 1e-9 || math.Abs(aabb.Max.Y()-1) > 1e-9 {
			t.Errorf("ComputeAABB Y range = [%v, %v], want [0, 1]", aabb.Min.Y(), aabb.Max.Y())
		}
	})
}

func TestBox_Corners(t *testing.T) {
	box := newTestBox(mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent(), mgl64.Vec3{2, 1, 2})
	corners := box.Corners()

	for i := 0; i < 4; i++ {
		if corners[i].Y() != 0 {
			t.Errorf("bottom corner %d = %v, want y=0", i, corners[i])
		}
		if corners[i+4].Y() != 1 {
			t.Errorf("top corner %d = %v, want y=1", i, corners[i+4])
		}
	}
}

func TestBox_ContainsPoint(t *testing.T) {
	box := newTestBox(mgl64.Vec3{0, 0, 0}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{2, 1, 2})

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"Centroid", mgl64.Vec3{0, 0.5, 0}, true},
		{"Inside the rotated corner", mgl64.Vec3{1.3, 0.5, 0}, true},
		{"Outside the rotated side", mgl64.Vec3{1, 0.5, 1}, false},
		{"Below the base", mgl64.Vec3{0, -0.1, 0}, false},
		{"Above the top", mgl64.Vec3{0, 1.1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.point); got != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestBox_IntersectRay(t *testing.T) {
	box := newTestBox(mgl64.Vec3{0, 0, -2}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{1, 1, 1})

	t.Run("Hit straight ahead", func(t *testing.T) {
		ray := Ray{Origin: mgl64.Vec3{0, 0.5, 0}, Direction: mgl64.Vec3{0, 0, -1}}
		dist, hit := box.IntersectRay(ray)
		if !hit {
			t.Fatal("expected a hit")
		}
		// The rotated box presents an edge toward the ray: half diagonal is sqrt(2)/2
		want := 2 - math.Sqrt2/2
		if math.Abs(dist-want) > 1e-9 {
			t.Errorf("distance = %v, want %v", dist, want)
		}
	})

	t.Run("Miss above", func(t *testing.T) {
		ray := Ray{Origin: mgl64.Vec3{0, 1.5, 0}, Direction: mgl64.Vec3{0, 0, -1}}
		if _, hit := box.IntersectRay(ray); hit {
			t.Error("expected a miss")
		}
	})

	t.Run("Miss behind", func(t *testing.T) {
		ray := Ray{Origin: mgl64.Vec3{0, 0.5, 0}, Direction: mgl64.Vec3{0, 0, 1}}
		if _, hit := box.IntersectRay(ray); hit {
			t.Error("expected a miss")
		}
	})
}

func TestBox_Descriptor(t *testing.T) {
	rotation := mgl64.QuatRotate(0.3, mgl64.Vec3{0, 1, 0})
	box := newTestBox(mgl64.Vec3{1, 0, 1}, rotation, mgl64.Vec3{1, 2, 3})
	box.Phase = PhaseExtruded

	d := box.Descriptor()
	if d.ID != box.ID || d.Orientation != rotation || d.Dimensions != box.Dimensions || d.Phase != PhaseExtruded {
		t.Errorf("Descriptor = %+v", d)
	}
	if !approxVec(d.Centroid, mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Descriptor.Centroid = %v", d.Centroid)
	}

	if d.Bounds != box.ComputeAABB() {
		t.Errorf("Descriptor.Bounds = %+v", d.Bounds)
	}

	// The snapshot does not follow later changes
	box.Dimensions[1] = 5
	if d.Dimensions.Y() != 2 {
		t.Error("Descriptor should be a copy")
	}
}
