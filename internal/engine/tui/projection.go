// Package tui draws a session on a terminal with tcell.
package tui

import (
	stdmath "math"

	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// flatExtent is the extent below which an axis counts as flat.
const flatExtent = 1e-3

// Projection maps world points to terminal cells inside a viewport.
// X is always horizontal. The vertical axis is Y when the floor has any
// height, so stacked floors read as a side view; a flat floor is shown
// from above with Z as vertical.
type Projection struct {
	Vertical int // axis index, 1 or 2
	flipV    bool

	min    math.Vec3
	sx, sy float64

	left, top     int
	width, height int
}

// NewProjection fits bounds into the viewport at (left, top) of size w x h.
func NewProjection(bounds navmesh.AABB, left, top, w, h int) Projection {
	p := Projection{
		Vertical: 1,
		flipV:    true,
		min:      bounds.Min,
		left:     left,
		top:      top,
		width:    max(w, 1),
		height:   max(h, 1),
	}
	size := bounds.Size()
	if size.Y < flatExtent {
		p.Vertical = 2
		p.flipV = false
	}
	if ext := float64(size.X); ext > flatExtent {
		p.sx = float64(p.width-1) / ext
	}
	if ext := float64(size.Component(p.Vertical)); ext > flatExtent {
		p.sy = float64(p.height-1) / ext
	}
	return p
}

// Cell returns the cell of pt. Points outside bounds may fall outside the
// viewport; use Inside to check.
func (p Projection) Cell(pt math.Vec3) (x, y int) {
	h := float64(pt.X - p.min.X)
	v := float64(pt.Component(p.Vertical) - p.min.Component(p.Vertical))

	cx := p.width / 2
	if p.sx > 0 {
		cx = int(stdmath.Round(h * p.sx))
	}
	cy := p.height / 2
	if p.sy > 0 {
		cy = int(stdmath.Round(v * p.sy))
	}
	if p.flipV {
		cy = p.height - 1 - cy
	}
	return p.left + cx, p.top + cy
}

// Inside reports whether a cell lies in the viewport.
func (p Projection) Inside(x, y int) bool {
	return x >= p.left && x < p.left+p.width && y >= p.top && y < p.top+p.height
}

// SideView reports whether the vertical axis is height.
func (p Projection) SideView() bool {
	return p.Vertical == 1
}
