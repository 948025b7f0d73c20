// Package boxbuilder turns pointer samples from a 6-DoF controller into oriented boxes:
// a rectangular base is drawn on a surface, then extruded along its up axis.
//
// A Builder is driven from a single input loop and is not safe for concurrent use.
// Descriptors of committed boxes are plain values and can be read from anywhere.
package boxbuilder

import (
	"errors"
	"log/slog"
	"math"

	"github.com/akmonengine/boxbuilder/actor"
	"github.com/akmonengine/boxbuilder/config"
	"github.com/akmonengine/boxbuilder/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// State of the gesture in progress
type State uint8

const (
	StateIdle State = iota
	StateDrawingBase
	StateExtruding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawingBase:
		return "drawing_base"
	case StateExtruding:
		return "extruding"
	}
	return "unknown"
}

type Builder struct {
	Config config.Config
	Logger *slog.Logger
	Events Events

	viewer    Viewer
	scene     scene.Adapter
	workspace Workspace

	state      State
	controller ControllerID
	// the box edited by the current gesture, nil when idle
	active    *actor.Box
	extrusion extrusionAnchor
}

// NewBuilder creates an idle builder. The viewer orients new bases, the adapter renders the boxes.
func NewBuilder(cfg config.Config, viewer Viewer, adapter scene.Adapter) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if viewer == nil || adapter == nil {
		return nil, errors.New("boxbuilder: viewer and scene adapter are required")
	}

	return &Builder{
		Config:    cfg,
		Logger:    slog.Default(),
		Events:    NewEvents(),
		viewer:    viewer,
		scene:     adapter,
		workspace: NewWorkspace(),
	}, nil
}

func (b *Builder) State() State {
	return b.state
}

// Active returns a snapshot of the box edited by the current gesture
func (b *Builder) Active() (actor.Descriptor, bool) {
	if b.active == nil {
		return actor.Descriptor{}, false
	}
	return b.active.Descriptor(), true
}

// Boxes returns snapshots of all boxes, in creation order
func (b *Builder) Boxes() []actor.Descriptor {
	descriptors := make([]actor.Descriptor, 0, len(b.workspace.Boxes))
	for _, box := range b.workspace.Boxes {
		descriptors = append(descriptors, box.Descriptor())
	}
	return descriptors
}

// Box returns a snapshot of one box
func (b *Builder) Box(id uuid.UUID) (actor.Descriptor, bool) {
	box := b.workspace.Get(id)
	if box == nil {
		return actor.Descriptor{}, false
	}
	return box.Descriptor(), true
}

// =============================================================================
// Pointer events
// =============================================================================

// PointerDown starts a gesture. A surface hit starts a new base; otherwise the pointer
// ray may pick a drawn base to extrude. It reports whether a gesture started.
func (b *Builder) PointerDown(event PointerEvent) bool {
	if b.state != StateIdle {
		b.Logger.Debug("pointer down ignored", "state", b.state, "controller", event.Controller)
		return false
	}

	if event.Hit != nil {
		return b.BeginBase(event.Controller, *event.Hit)
	}

	mustFinite(event.Pose.Position, "pointer position")
	mustRotation(event.Pose.Rotation, "pointer rotation")

	box, _, ok := b.workspace.Pick(event.Pose.Ray())
	if !ok || !box.CanExtrude() {
		return false
	}

	return b.BeginExtrusion(event.Controller, box.ID, event.Pose)
}

// PointerMove updates the gesture owned by the event's controller.
// It reports whether the box geometry was updated.
func (b *Builder) PointerMove(event PointerEvent) bool {
	if b.state == StateIdle || event.Controller != b.controller {
		return false
	}

	switch b.state {
	case StateDrawingBase:
		if event.Hit == nil {
			return false
		}
		return b.UpdateBase(event.Hit.Point)
	case StateExtruding:
		return b.UpdateExtrusion(event.Pose)
	}

	return false
}

// PointerUp ends the gesture owned by the event's controller
func (b *Builder) PointerUp(event PointerEvent) bool {
	if b.state == StateIdle || event.Controller != b.controller {
		return false
	}

	switch b.state {
	case StateDrawingBase:
		return b.CommitBase()
	case StateExtruding:
		return b.CommitExtrusion()
	}

	return false
}

// =============================================================================
// Stage 1: base drawing
// =============================================================================

// BeginBase creates a new box anchored at the hit point, flush with the chosen up axis
// and facing away from the viewer. Its orientation is fixed for the rest of its life.
func (b *Builder) BeginBase(controller ControllerID, hit SurfaceHit) bool {
	if b.state != StateIdle {
		return false
	}

	mustFinite(hit.Point, "surface point")
	up := baseUp(b.Config.UpAxisPolicy, hit)

	viewRotation := b.viewer.ViewRotation()
	mustRotation(viewRotation, "view rotation")
	forward := flattenForward(viewRotation.Rotate(pointerForward), up)

	rotation := baseOrientation(up, forward)
	dimensions := mgl64.Vec3{b.Config.MinDimension, b.Config.InitialHeight, b.Config.MinDimension}

	box := actor.NewBox(hit.Point, rotation, dimensions)
	handle := b.scene.CreateBox(rotation, dimensions, hit.Point)
	b.scene.SetBoxVisualState(handle, scene.VisualDrawing)
	b.workspace.AddBox(box, handle)

	b.active = box
	b.controller = controller
	b.state = StateDrawingBase

	b.Logger.Debug("base started", "box", box.ID, "controller", controller, "anchor", hit.Point, "up", up)

	return true
}

// UpdateBase stretches the base so that the anchor and the given point are opposite corners.
// The point is read in the box frame: its X and Z give the signed width and depth.
func (b *Builder) UpdateBase(point mgl64.Vec3) bool {
	if b.state != StateDrawingBase || b.active == nil {
		return false
	}
	mustFinite(point, "surface point")

	box := b.active
	local := box.Transform.InverseRotation.Rotate(point.Sub(box.Anchor))

	width := math.Max(b.Config.MinDimension, math.Abs(local.X()))
	depth := math.Max(b.Config.MinDimension, math.Abs(local.Z()))
	box.Dimensions = mgl64.Vec3{width, box.Dimensions.Y(), depth}

	// Shift from the anchor corner to the base center, on the side the pointer was dragged to
	shift := mgl64.Vec3{sign(local.X()) * width * 0.5, 0, sign(local.Z()) * depth * 0.5}
	box.Transform.Position = box.Anchor.Add(box.Transform.Rotation.Rotate(shift))

	b.scene.UpdateBoxTransform(b.workspace.Handle(box), box.Transform.Position, box.Dimensions)

	return true
}

// CommitBase ends the base drawing. The box keeps its geometry and becomes pickable for extrusion.
func (b *Builder) CommitBase() bool {
	if b.state != StateDrawingBase || b.active == nil {
		return false
	}

	box := b.active
	box.IsBase = true
	b.scene.SetBoxVisualState(b.workspace.Handle(box), scene.VisualBase)

	b.idle()
	b.Logger.Debug("base committed", "box", box.ID, "dimensions", box.Dimensions)

	b.Events.emit(BaseCommittedEvent{Box: box.Descriptor()})
	b.Events.flush()

	return true
}

// =============================================================================
// Stage 2: extrusion
// =============================================================================

// BeginExtrusion starts raising a drawn base. The bottom-center, the up axis, the height
// and the controller signal are captured once and used by every following update.
func (b *Builder) BeginExtrusion(controller ControllerID, id uuid.UUID, pose Pose) bool {
	if b.state != StateIdle {
		return false
	}

	box := b.workspace.Get(id)
	if box == nil || !box.CanExtrude() {
		return false
	}
	mustFinite(pose.Position, "pointer position")
	mustRotation(pose.Rotation, "pointer rotation")

	b.extrusion = extrusionAnchor{
		pivot:         box.BottomCenter(),
		up:            box.Up(),
		initialHeight: box.Dimensions.Y(),
	}
	b.extrusion.initialSignal = extrusionSignal(b.Config.ExtrusionStrategy, b.extrusion, pose)

	b.active = box
	b.controller = controller
	b.state = StateExtruding
	b.scene.SetBoxVisualState(b.workspace.Handle(box), scene.VisualExtruding)

	b.Logger.Debug("extrusion started", "box", box.ID, "controller", controller,
		"strategy", b.Config.ExtrusionStrategy, "signal", b.extrusion.initialSignal)

	return true
}

// UpdateExtrusion sets the height from the controller signal. Only the top face moves.
func (b *Builder) UpdateExtrusion(pose Pose) bool {
	if b.state != StateExtruding || b.active == nil {
		return false
	}
	mustFinite(pose.Position, "pointer position")
	mustRotation(pose.Rotation, "pointer rotation")

	signal := extrusionSignal(b.Config.ExtrusionStrategy, b.extrusion, pose)

	box := b.active
	box.Dimensions[1] = extrudedHeight(b.Config, b.extrusion, signal)

	b.scene.UpdateBoxTransform(b.workspace.Handle(box), box.Transform.Position, box.Dimensions)

	return true
}

// CommitExtrusion freezes the box and notifies BOX_COMMITTED listeners
func (b *Builder) CommitExtrusion() bool {
	if b.state != StateExtruding || b.active == nil {
		return false
	}

	box := b.active
	box.Phase = actor.PhaseExtruded
	b.scene.SetBoxVisualState(b.workspace.Handle(box), scene.VisualCommitted)

	b.idle()
	b.Logger.Info("box committed", "box", box.ID, "position", box.Transform.Position, "dimensions", box.Dimensions)

	b.Events.emit(BoxCommittedEvent{Box: box.Descriptor()})
	b.Events.flush()

	return true
}

// =============================================================================
// Abort and removal
// =============================================================================

// Reset aborts the gesture in progress. A base being drawn is destroyed;
// a base being extruded gets its previous height back.
func (b *Builder) Reset() {
	box := b.active

	switch b.state {
	case StateDrawingBase:
		b.idle()
		b.remove(box)
	case StateExtruding:
		box.Dimensions[1] = b.extrusion.initialHeight
		handle := b.workspace.Handle(box)
		b.scene.UpdateBoxTransform(handle, box.Transform.Position, box.Dimensions)
		b.scene.SetBoxVisualState(handle, scene.VisualBase)
		b.idle()
	default:
		return
	}

	b.Logger.Debug("gesture reset", "box", box.ID)
	b.Events.flush()
}

// Discard removes a box that is not committed. Committed boxes are refused, use Release.
func (b *Builder) Discard(id uuid.UUID) bool {
	box := b.workspace.Get(id)
	if box == nil {
		return false
	}
	if box.IsFrozen() {
		b.Logger.Debug("discard refused on committed box", "box", id)
		return false
	}

	if box == b.active {
		b.idle()
	}
	b.remove(box)
	b.Events.flush()

	return true
}

// Release removes any box on external request, committed or not,
// e.g. when a generated model supersedes it.
func (b *Builder) Release(id uuid.UUID) bool {
	box := b.workspace.Get(id)
	if box == nil {
		return false
	}

	if box == b.active {
		b.idle()
	}
	b.remove(box)
	b.Events.flush()

	return true
}

func (b *Builder) remove(box *actor.Box) {
	handle, ok := b.workspace.RemoveBox(box)
	if !ok {
		return
	}
	b.scene.DestroyBox(handle)
	b.Events.emit(BoxDiscardedEvent{Box: box.Descriptor()})
}

func (b *Builder) idle() {
	b.state = StateIdle
	b.active = nil
	b.extrusion = extrusionAnchor{}
}
