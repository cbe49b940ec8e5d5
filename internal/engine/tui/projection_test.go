package tui

import (
	"testing"

	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

func TestProjectionSideView(t *testing.T) {
	b := navmesh.AABB{Min: math.Vec3{X: -10, Y: 0, Z: 0}, Max: math.Vec3{X: 10, Y: 5, Z: 20}}
	p := NewProjection(b, 1, 1, 21, 6)
	if !p.SideView() {
		t.Fatal("stacked floors should give a side view")
	}

	tests := []struct {
		pt   math.Vec3
		x, y int
	}{
		{math.Vec3{X: -10, Y: 0}, 1, 6},  // bottom left
		{math.Vec3{X: 10, Y: 5}, 21, 1},  // top right
		{math.Vec3{X: 0, Y: 0, Z: 7}, 11, 6}, // depth ignored
	}
	for _, tt := range tests {
		x, y := p.Cell(tt.pt)
		if x != tt.x || y != tt.y {
			t.Errorf("Cell(%v) = (%d, %d), want (%d, %d)", tt.pt, x, y, tt.x, tt.y)
		}
	}
}

func TestProjectionTopView(t *testing.T) {
	b := navmesh.AABB{Min: math.Vec3{}, Max: math.Vec3{X: 1, Z: 1}}
	p := NewProjection(b, 0, 0, 11, 11)
	if p.SideView() {
		t.Fatal("flat floor should be seen from above")
	}
	if x, y := p.Cell(math.Vec3{X: 1, Z: 1}); x != 10 || y != 10 {
		t.Errorf("far corner at (%d, %d), want (10, 10)", x, y)
	}
	if x, y := p.Cell(math.Vec3{X: 0.5, Z: 0.2}); x != 5 || y != 2 {
		t.Errorf("Cell = (%d, %d), want (5, 2)", x, y)
	}
}

func TestProjectionDegenerateAxis(t *testing.T) {
	// A single line of floor: no horizontal extent.
	b := navmesh.AABB{Min: math.Vec3{X: 3}, Max: math.Vec3{X: 3, Z: 4}}
	p := NewProjection(b, 0, 0, 9, 5)
	x, _ := p.Cell(math.Vec3{X: 3})
	if x != 4 {
		t.Errorf("x = %d, want centered 4", x)
	}
}

func TestProjectionInside(t *testing.T) {
	p := NewProjection(navmesh.AABB{Max: math.Vec3{X: 1, Z: 1}}, 2, 3, 4, 5)
	for _, tt := range []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 7, true},
		{1, 3, false},
		{6, 3, false},
		{2, 8, false},
	} {
		if got := p.Inside(tt.x, tt.y); got != tt.want {
			t.Errorf("Inside(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
