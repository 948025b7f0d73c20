package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Node is the last known state of a box node held by a Recorder
type Node struct {
	Handle      Handle
	Orientation mgl64.Quat
	Position    mgl64.Vec3
	Dimensions  mgl64.Vec3
	State       VisualState
	Updates     int
}

// Recorder is an in-memory Adapter. It keeps the state of every live node,
// which is enough to drive the builder headless and to inspect what a renderer would show.
type Recorder struct {
	nodes     map[Handle]*Node
	next      Handle
	Destroyed []Handle
}

func NewRecorder() *Recorder {
	return &Recorder{
		nodes: make(map[Handle]*Node),
	}
}

func (r *Recorder) CreateBox(orientation mgl64.Quat, dimensions mgl64.Vec3, position mgl64.Vec3) Handle {
	r.next++
	r.nodes[r.next] = &Node{
		Handle:      r.next,
		Orientation: orientation,
		Position:    position,
		Dimensions:  dimensions,
		State:       VisualDrawing,
	}

	return r.next
}

func (r *Recorder) UpdateBoxTransform(handle Handle, position mgl64.Vec3, dimensions mgl64.Vec3) {
	if node, ok := r.nodes[handle]; ok {
		node.Position = position
		node.Dimensions = dimensions
		node.Updates++
	}
}

func (r *Recorder) SetBoxVisualState(handle Handle, state VisualState) {
	if node, ok := r.nodes[handle]; ok {
		node.State = state
	}
}

func (r *Recorder) DestroyBox(handle Handle) {
	if _, ok := r.nodes[handle]; !ok {
		return
	}
	delete(r.nodes, handle)
	r.Destroyed = append(r.Destroyed, handle)
}

// Node returns a copy of a live node
func (r *Recorder) Node(handle Handle) (Node, bool) {
	node, ok := r.nodes[handle]
	if !ok {
		return Node{}, false
	}
	return *node, true
}

// Nodes returns copies of all live nodes, ordered by creation
func (r *Recorder) Nodes() []Node {
	nodes := make([]Node, 0, len(r.nodes))
	for _, node := range r.nodes {
		nodes = append(nodes, *node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Handle < nodes[j].Handle
	})

	return nodes
}

func (r *Recorder) Len() int {
	return len(r.nodes)
}
