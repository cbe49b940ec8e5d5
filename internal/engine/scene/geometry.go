package scene

import (
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// VertexStride is the number of floats per vertex: position then color.
const VertexStride = 6

var (
	floorLow  = [3]float32{0.22, 0.25, 0.32}
	floorHigh = [3]float32{0.78, 0.72, 0.58}
	edgeColor = [3]float32{0.95, 0.95, 0.95}
)

// FloorVertices returns one colored vertex per triangle corner. Color
// follows height so stacked floors are told apart.
func FloorVertices(mesh *navmesh.NavMesh) []float32 {
	if mesh == nil {
		return nil
	}
	b := mesh.Bounds()
	height := b.Size().Y

	out := make([]float32, 0, mesh.Len()*3*VertexStride)
	for _, t := range mesh.Triangles() {
		var f float32
		if height > 0 {
			f = (t.Centroid().Y - b.Min.Y) / height
		}
		c := lerp3(floorLow, floorHigh, f)
		for _, p := range [3]math.Vec3{t.A, t.B, t.C} {
			out = appendVertex(out, p, c)
		}
	}
	return out
}

// FloorEdges returns line segment vertices outlining every triangle.
func FloorEdges(mesh *navmesh.NavMesh) []float32 {
	if mesh == nil {
		return nil
	}
	out := make([]float32, 0, mesh.Len()*6*VertexStride)
	for _, t := range mesh.Triangles() {
		for _, e := range [3][2]math.Vec3{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			out = appendVertex(out, e[0], edgeColor)
			out = appendVertex(out, e[1], edgeColor)
		}
	}
	return out
}

// MarkerVertices returns the character marker in model space: an upright
// wedge two units tall whose tip points along the rest forward (+Z).
func MarkerVertices() []float32 {
	white := [3]float32{1, 1, 1}
	shade := [3]float32{0.7, 0.7, 0.7}
	var out []float32
	for _, v := range []struct {
		p math.Vec3
		c [3]float32
	}{
		{math.Vec3{Y: 0, Z: -0.4}, shade},
		{math.Vec3{Y: 2, Z: -0.4}, shade},
		{math.Vec3{Y: 1.2, Z: 0.8}, white},
	} {
		out = appendVertex(out, v.p, v.c)
	}
	return out
}

// Tint returns the marker color for an animation state.
func Tint(state entity.AnimationState) [4]float32 {
	switch state {
	case entity.AnimTurning:
		return [4]float32{1.0, 0.8, 0.2, 1}
	case entity.AnimWalking:
		return [4]float32{0.4, 0.9, 0.4, 1}
	case entity.AnimRunning:
		return [4]float32{0.2, 0.8, 1.0, 1}
	default:
		return [4]float32{0.9, 0.9, 0.9, 1}
	}
}

func appendVertex(out []float32, p math.Vec3, c [3]float32) []float32 {
	return append(out, p.X, p.Y, p.Z, c[0], c[1], c[2])
}

func lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}
