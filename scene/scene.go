// Package scene defines what the box builder needs from a 3D scene graph.
// The builder never touches rendering primitives: it asks the adapter to create,
// move and recolor a node, and to destroy it when the box goes away.
package scene

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies a node created by an Adapter
type Handle uint64

// VisualState selects how a box node is displayed
type VisualState uint8

const (
	// VisualDrawing is used while the base is being drawn
	VisualDrawing VisualState = iota
	// VisualBase is a drawn base waiting for an extrusion
	VisualBase
	// VisualExtruding is used while the height is being dragged
	VisualExtruding
	// VisualCommitted is a finished box
	VisualCommitted
)

func (s VisualState) String() string {
	switch s {
	case VisualDrawing:
		return "drawing"
	case VisualBase:
		return "base"
	case VisualExtruding:
		return "extruding"
	case VisualCommitted:
		return "committed"
	}
	return "unknown"
}

// Color returns the RGB color the original box tool associates with the state
func (s VisualState) Color() uint32 {
	switch s {
	case VisualExtruding:
		return 0xf4b400
	case VisualCommitted:
		return 0x34a853
	}
	return 0x4285f4
}

// Adapter is implemented by the scene graph that renders the boxes.
// Box nodes pivot on the bottom-center of the box: position is the center of the
// base face, and the unit cube is scaled by dimensions along the node's local axes.
type Adapter interface {
	CreateBox(orientation mgl64.Quat, dimensions mgl64.Vec3, position mgl64.Vec3) Handle
	UpdateBoxTransform(handle Handle, position mgl64.Vec3, dimensions mgl64.Vec3)
	SetBoxVisualState(handle Handle, state VisualState)
	DestroyBox(handle Handle)
}
