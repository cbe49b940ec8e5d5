package debug

import (
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// BoxWireframe returns the 12 edges of b as line vertices, each followed by
// color: x, y, z, r, g, b.
func BoxWireframe(b navmesh.AABB, color [3]float32) []float32 {
	lo, hi := b.Min, b.Max
	corners := [8][3]float32{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {hi.X, lo.Y, hi.Z}, {lo.X, lo.Y, hi.Z},
		{lo.X, hi.Y, lo.Z}, {hi.X, hi.Y, lo.Z}, {hi.X, hi.Y, hi.Z}, {lo.X, hi.Y, hi.Z},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical
	}

	out := make([]float32, 0, len(edges)*2*6)
	for _, e := range edges {
		for _, i := range e {
			c := corners[i]
			out = append(out, c[0], c[1], c[2], color[0], color[1], color[2])
		}
	}
	return out
}
