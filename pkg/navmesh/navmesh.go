// Package navmesh implements the walkable-floor mesh used to validate
// character movement.
//
// A NavMesh is built once from flat vertex and index buffers and is
// immutable afterwards, so it can be read from any number of goroutines
// without locking. Containment uses an area-sum test: a point P lies on
// triangle ABC when area(PAB)+area(PBC)+area(PCA) matches area(ABC) within
// an absolute tolerance. The test works on true 3-D distances and has no
// separate height check.
package navmesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/paperman/pkg/math"
)

// DefaultTolerance is the absolute area tolerance (world units squared).
// It suits the large-coordinate building level; unit-scale meshes want a
// much smaller value.
const DefaultTolerance = 1.0

// degenerateArea is the area below which a triangle is treated as degenerate.
const degenerateArea = 1e-12

// ErrMalformedGeometry is matched by every *MalformedGeometryError.
var ErrMalformedGeometry = errors.New("malformed navmesh geometry")

// MalformedGeometryError reports source geometry that cannot form a mesh.
type MalformedGeometryError struct {
	Reason string
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("malformed navmesh geometry: %s", e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedGeometry.
func (e *MalformedGeometryError) Unwrap() error {
	return ErrMalformedGeometry
}

func malformed(format string, args ...any) error {
	return &MalformedGeometryError{Reason: fmt.Sprintf(format, args...)}
}

// Option configures a NavMesh at build time.
type Option func(*NavMesh)

// WithTolerance sets the containment tolerance. Non-positive values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(m *NavMesh) {
		if tolerance > 0 {
			m.tolerance = tolerance
		}
	}
}

// NavMesh is an immutable set of triangles with precomputed areas.
type NavMesh struct {
	triangles []Triangle
	areas     []float64
	tolerance float64
	bounds    AABB
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// Size returns the box extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Build groups indices into triangles of three vertices each.
// vertices is a flat buffer of x, y, z triples.
func Build(vertices []float32, indices []uint32, opts ...Option) (*NavMesh, error) {
	if len(vertices) == 0 {
		return nil, malformed("navmesh has no vertex positions")
	}
	if len(vertices)%3 != 0 {
		return nil, malformed("vertex buffer length %d is not a multiple of 3", len(vertices))
	}
	if len(indices) == 0 {
		return nil, malformed("navmesh has no indices")
	}
	if len(indices)%3 != 0 {
		return nil, malformed("index count %d is not a multiple of 3", len(indices))
	}

	vertexCount := uint32(len(vertices) / 3)
	triangles := make([]Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		var corners [3]math.Vec3
		for j := 0; j < 3; j++ {
			idx := indices[i+j]
			if idx >= vertexCount {
				return nil, malformed("index %d at position %d out of range (%d vertices)", idx, i+j, vertexCount)
			}
			corners[j] = math.Vec3FromSlice(vertices[idx*3:])
		}
		triangles = append(triangles, Triangle{A: corners[0], B: corners[1], C: corners[2]})
	}

	return New(triangles, opts...), nil
}

// New creates a mesh from already assembled triangles.
func New(triangles []Triangle, opts ...Option) *NavMesh {
	m := &NavMesh{
		triangles: append([]Triangle(nil), triangles...),
		areas:     make([]float64, len(triangles)),
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(m.triangles) > 0 {
		first := m.triangles[0].A
		m.bounds = AABB{Min: first, Max: first}
	}
	for i, t := range m.triangles {
		m.areas[i] = t.Area()
		for _, p := range [3]math.Vec3{t.A, t.B, t.C} {
			m.bounds.Min = minVec(m.bounds.Min, p)
			m.bounds.Max = maxVec(m.bounds.Max, p)
		}
	}
	return m
}

// Contains reports whether p lies within tolerance of any non-degenerate triangle.
func (m *NavMesh) Contains(p math.Vec3) bool {
	for i := range m.triangles {
		if m.ContainsTriangle(i, p) {
			return true
		}
	}
	return false
}

// ContainsTriangle runs the containment test against a single triangle.
func (m *NavMesh) ContainsTriangle(i int, p math.Vec3) bool {
	if i < 0 || i >= len(m.triangles) {
		return false
	}
	area := m.areas[i]
	if area <= degenerateArea {
		return false
	}
	return m.triangles[i].areaSumError(p, area) < m.tolerance
}

// Triangles returns a copy of the mesh triangles, degenerate ones included.
func (m *NavMesh) Triangles() []Triangle {
	return append([]Triangle(nil), m.triangles...)
}

// Len returns the number of triangles.
func (m *NavMesh) Len() int {
	return len(m.triangles)
}

// Tolerance returns the containment tolerance in world units squared.
func (m *NavMesh) Tolerance() float64 {
	return m.tolerance
}

// Bounds returns the bounding box of all vertices.
func (m *NavMesh) Bounds() AABB {
	return m.bounds
}

func minVec(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

func maxVec(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}
