package scene

import (
	"testing"

	"github.com/Faultbox/paperman/internal/engine/character"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

func twoFloors(t *testing.T) *navmesh.NavMesh {
	t.Helper()
	mesh, err := navmesh.Build([]float32{
		0, 0, 0, 1, 0, 0, 0, 0, 1,
		0, 5, 0, 1, 5, 0, 0, 5, 1,
	}, []uint32{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func TestFloorVertices(t *testing.T) {
	v := FloorVertices(twoFloors(t))
	if len(v) != 2*3*VertexStride {
		t.Fatalf("len = %d, want %d", len(v), 2*3*VertexStride)
	}
	// Second corner of the first triangle.
	if v[VertexStride] != 1 || v[VertexStride+1] != 0 {
		t.Errorf("vertex 1 at %v", v[VertexStride:VertexStride+3])
	}
	low := v[3:6]
	high := v[3*VertexStride+3 : 3*VertexStride+6]
	for i := range 3 {
		if low[i] != floorLow[i] || abs(high[i]-floorHigh[i]) > 1e-6 {
			t.Errorf("floor colors low %v high %v", low, high)
			break
		}
	}
	if FloorVertices(nil) != nil {
		t.Error("nil mesh should give no vertices")
	}
}

func TestFloorEdges(t *testing.T) {
	v := FloorEdges(twoFloors(t))
	if len(v) != 2*6*VertexStride {
		t.Errorf("len = %d, want %d", len(v), 2*6*VertexStride)
	}
}

func TestMarkerPointsAlongFacing(t *testing.T) {
	v := MarkerVertices()
	if len(v) != 3*VertexStride {
		t.Fatalf("len = %d", len(v))
	}
	tip := math.Vec3{X: v[2*VertexStride], Y: v[2*VertexStride+1], Z: v[2*VertexStride+2]}

	for _, d := range []entity.Direction{entity.Left, entity.Right} {
		n := Node{Orientation: character.Orientation(d)}
		got := n.Model().TransformVec3(tip)
		fwd := character.Forward(d)
		if got.X*fwd.X <= 0 {
			t.Errorf("%v: marker tip at %v, forward %v", d, got, fwd)
		}
	}
}

func TestTint(t *testing.T) {
	seen := map[[4]float32]bool{}
	for _, s := range entity.AnimationStates {
		seen[Tint(s)] = true
	}
	if len(seen) != len(entity.AnimationStates) {
		t.Errorf("animation states share tints: %d distinct of %d", len(seen), len(entity.AnimationStates))
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
