package navmesh

import (
	gomath "math"

	"github.com/Faultbox/paperman/pkg/math"
)

// Triangle is one walkable face of the mesh.
type Triangle struct {
	A, B, C math.Vec3
}

// Area returns the triangle area using Heron's formula.
// Rounding can push the radicand slightly below zero for collinear points;
// that case is reported as zero area rather than NaN.
func (t Triangle) Area() float64 {
	return heron(t.A, t.B, t.C)
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() math.Vec3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3.0)
}

// areaSumError returns |area(P,A,B) + area(P,B,C) + area(P,C,A) - area|.
func (t Triangle) areaSumError(p math.Vec3, area float64) float64 {
	sum := heron(p, t.A, t.B) + heron(p, t.B, t.C) + heron(p, t.C, t.A)
	return gomath.Abs(sum - area)
}

func heron(a, b, c math.Vec3) float64 {
	ab := dist64(a, b)
	bc := dist64(b, c)
	ca := dist64(c, a)
	s := (ab + bc + ca) / 2
	radicand := s * (s - ab) * (s - bc) * (s - ca)
	if radicand <= 0 {
		return 0
	}
	return gomath.Sqrt(radicand)
}

func dist64(a, b math.Vec3) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	dz := float64(a.Z) - float64(b.Z)
	return gomath.Sqrt(dx*dx + dy*dy + dz*dz)
}
