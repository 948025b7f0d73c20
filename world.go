package boxbuilder

import (
	"math"

	"github.com/akmonengine/boxbuilder/actor"
	"github.com/akmonengine/boxbuilder/scene"
	"github.com/google/uuid"
)

// Workspace owns every box the builder knows about, with the scene handle rendering it.
// Boxes are kept in creation order.
type Workspace struct {
	// List of all boxes, drawn, in progress or committed
	Boxes   []*actor.Box
	handles map[*actor.Box]scene.Handle
}

func NewWorkspace() Workspace {
	return Workspace{
		handles: make(map[*actor.Box]scene.Handle),
	}
}

// AddBox adds a box and the scene node that renders it
func (w *Workspace) AddBox(box *actor.Box, handle scene.Handle) {
	w.Boxes = append(w.Boxes, box)
	w.handles[box] = handle
}

// RemoveBox removes a box from the workspace and returns its scene handle
func (w *Workspace) RemoveBox(box *actor.Box) (scene.Handle, bool) {
	k := -1
	for i, b := range w.Boxes {
		if b == box {
			k = i
			break
		}
	}

	if k == -1 {
		return 0, false
	}

	w.Boxes = append(w.Boxes[:k], w.Boxes[k+1:]...)
	handle := w.handles[box]
	delete(w.handles, box)

	return handle, true
}

// Get finds a box by its ID
func (w *Workspace) Get(id uuid.UUID) *actor.Box {
	for _, b := range w.Boxes {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Handle returns the scene node of a box
func (w *Workspace) Handle(box *actor.Box) scene.Handle {
	return w.handles[box]
}

// Pick returns the box nearest to the ray origin among those the ray hits
func (w *Workspace) Pick(ray actor.Ray) (*actor.Box, float64, bool) {
	var nearest *actor.Box
	best := math.MaxFloat64

	for _, b := range w.Boxes {
		if dist, hit := b.IntersectRay(ray); hit && dist < best {
			nearest = b
			best = dist
		}
	}

	if nearest == nil {
		return nil, 0, false
	}

	return nearest, best, true
}
