package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/paperman/internal/engine/scene"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
)

var (
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Floor glyph.
const floorRune = '='

// Status is the text shown on the top line.
type Status struct {
	Phase  string
	Level  string
	Player string
	FPS    int
}

func (s Status) String() string {
	text := fmt.Sprintf(" %s | %s", s.Phase, s.Level)
	if s.Player != "" {
		text += " | " + s.Player
	}
	if s.FPS > 0 {
		text += fmt.Sprintf(" | %d fps", s.FPS)
	}
	return text
}

// View draws a scene on a screen. Row 0 is the status line and the last
// row shows help; the map uses the rows between.
type View struct {
	screen tcell.Screen
	help   string
}

// NewView creates a view on screen.
func NewView(screen tcell.Screen, help string) *View {
	return &View{screen: screen, help: help}
}

// Projection returns the map projection for the current screen size, or
// false when the scene has no floor.
func (v *View) Projection(s *scene.Scene) (Projection, bool) {
	mesh := s.NavMesh()
	if mesh == nil || mesh.Len() == 0 {
		return Projection{}, false
	}
	w, h := v.screen.Size()
	return NewProjection(mesh.Bounds(), 1, 1, w-2, h-2), true
}

// Draw renders one frame and shows it.
func (v *View) Draw(s *scene.Scene, status Status) {
	v.screen.Clear()
	w, h := v.screen.Size()

	if p, ok := v.Projection(s); ok {
		for _, t := range s.NavMesh().Triangles() {
			v.drawTriangle(p, t.A, t.B, t.C)
		}
		for _, n := range s.Nodes() {
			v.drawNode(p, n)
		}
	}

	v.fillLine(0, w, status.String(), styleStatus)
	if h > 1 {
		v.fillLine(h-1, w, v.help, styleHelp)
	}
	v.screen.Show()
}

func (v *View) drawTriangle(p Projection, a, b, c math.Vec3) {
	ax, ay := p.Cell(a)
	bx, by := p.Cell(b)
	cx, cy := p.Cell(c)

	// Fill cells whose centers are inside the projected triangle, then
	// outline it so edge-on floors still show.
	minX, maxX := min(ax, bx, cx), max(ax, bx, cx)
	minY, maxY := min(ay, by, cy), max(ay, by, cy)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideCells(x, y, ax, ay, bx, by, cx, cy) {
				v.set(p, x, y, floorRune, styleFloor)
			}
		}
	}
	v.line(p, ax, ay, bx, by)
	v.line(p, bx, by, cx, cy)
	v.line(p, cx, cy, ax, ay)
}

// insideCells is a 2-D point-in-triangle test on cell coordinates.
func insideCells(px, py, ax, ay, bx, by, cx, cy int) bool {
	d1 := cross(px, py, ax, ay, bx, by)
	d2 := cross(px, py, bx, by, cx, cy)
	d3 := cross(px, py, cx, cy, ax, ay)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func cross(px, py, ax, ay, bx, by int) int {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

// line draws a Bresenham segment.
func (v *View) line(p Projection, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		v.set(p, x0, y0, floorRune, styleFloor)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (v *View) drawNode(p Projection, n scene.Node) {
	x, y := p.Cell(n.Position)
	if p.SideView() {
		// Stand on the floor line.
		y--
	}
	v.set(p, x, y, NodeRune(n), NodeStyle(n))
}

// NodeRune is the glyph of a character: an arrow in its facing direction,
// or a turn marker.
func NodeRune(n scene.Node) rune {
	if n.Animation == entity.AnimTurning {
		return '@'
	}
	if n.Facing == entity.Left {
		return '<'
	}
	return '>'
}

// NodeStyle colors a character by animation state.
func NodeStyle(n scene.Node) tcell.Style {
	st := tcell.StyleDefault.Bold(true)
	switch n.Animation {
	case entity.AnimTurning:
		return st.Foreground(tcell.ColorYellow)
	case entity.AnimWalking:
		return st.Foreground(tcell.ColorGreen)
	case entity.AnimRunning:
		return st.Foreground(tcell.ColorAqua)
	default:
		return st.Foreground(tcell.ColorWhite)
	}
}

func (v *View) set(p Projection, x, y int, r rune, st tcell.Style) {
	if p.Inside(x, y) {
		v.screen.SetContent(x, y, r, nil, st)
	}
}

func (v *View) fillLine(y, w int, text string, st tcell.Style) {
	runes := []rune(text)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, st)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
