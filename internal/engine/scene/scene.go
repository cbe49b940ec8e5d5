// Package scene keeps the drawable state of every character as published by
// the simulation. Renderers read it; they never touch the simulation.
package scene

import (
	"sort"

	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// Node is one character as last published.
type Node struct {
	Handle      entity.Handle
	Position    math.Vec3
	Facing      entity.Direction
	Orientation math.Quat
	Animation   entity.AnimationState
	Clip        animation.ClipID
}

// Model returns the world transform of the node.
func (n *Node) Model() math.Mat4 {
	return math.Translate(n.Position).Mul(n.Orientation.ToMat4())
}

// Scene is a publisher sink holding the nodes and the walkable floor.
type Scene struct {
	nodes   map[entity.Handle]*Node
	mesh    *navmesh.NavMesh
	version uint64
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{nodes: make(map[entity.Handle]*Node)}
}

func (s *Scene) node(h entity.Handle) *Node {
	n, ok := s.nodes[h]
	if !ok {
		n = &Node{Handle: h, Orientation: math.QuatIdentity()}
		s.nodes[h] = n
	}
	return n
}

// PublishTransform records a new position and orientation.
func (s *Scene) PublishTransform(h entity.Handle, position math.Vec3, facing entity.Direction, orientation math.Quat) {
	n := s.node(h)
	n.Position = position
	n.Facing = facing
	n.Orientation = orientation
}

// PublishAnimation records the playing clip.
func (s *Scene) PublishAnimation(h entity.Handle, state entity.AnimationState, clip animation.ClipID) {
	n := s.node(h)
	n.Animation = state
	n.Clip = clip
}

// Remove drops a node.
func (s *Scene) Remove(h entity.Handle) {
	delete(s.nodes, h)
}

// Node returns the node for h.
func (s *Scene) Node(h entity.Handle) (Node, bool) {
	n, ok := s.nodes[h]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in handle order.
func (s *Scene) Nodes() []Node {
	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// SetNavMesh sets the floor to draw. Renderers compare MeshVersion to know
// when to rebuild their buffers.
func (s *Scene) SetNavMesh(mesh *navmesh.NavMesh) {
	if mesh == s.mesh {
		return
	}
	s.mesh = mesh
	s.version++
}

// NavMesh returns the floor.
func (s *Scene) NavMesh() *navmesh.NavMesh {
	return s.mesh
}

// MeshVersion changes every time the floor is replaced.
func (s *Scene) MeshVersion() uint64 {
	return s.version
}
