package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/paperman/internal/engine/scene"
	"github.com/Faultbox/paperman/internal/engine/character"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func unitScene(t *testing.T) *scene.Scene {
	t.Helper()
	mesh, err := navmesh.Build([]float32{0, 0, 0, 1, 0, 0, 0, 0, 1}, []uint32{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	s := scene.New()
	s.SetNavMesh(mesh)
	return s
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestViewDraw(t *testing.T) {
	screen := newScreen(t, 40, 12)
	s := unitScene(t)
	pos := math.Vec3{X: 0.25, Z: 0.25}
	s.PublishTransform(1, pos, entity.Right, character.Orientation(entity.Right))
	s.PublishAnimation(1, entity.AnimIdle, "idle")

	v := NewView(screen, "help line")
	v.Draw(s, Status{Phase: "game-running", Level: "unit"})

	p, ok := v.Projection(s)
	if !ok {
		t.Fatal("no projection for a scene with a floor")
	}
	x, y := p.Cell(pos)
	if got := runeAt(screen, x, y); got != '>' {
		t.Errorf("player cell (%d, %d) = %q, want '>'", x, y, got)
	}
	if got := runeAt(screen, 2, 2); got != floorRune {
		t.Errorf("floor cell = %q, want %q", got, floorRune)
	}
	if got := runeAt(screen, 38, 10); got == floorRune {
		t.Error("cell beyond the hypotenuse drawn as floor")
	}
	if !strings.HasPrefix(row(screen, 0), " game-running | unit") {
		t.Errorf("status line = %q", row(screen, 0))
	}
	if !strings.HasPrefix(row(screen, 11), "help line") {
		t.Errorf("help line = %q", row(screen, 11))
	}
}

func TestViewWithoutFloor(t *testing.T) {
	screen := newScreen(t, 20, 5)
	v := NewView(screen, "")
	v.Draw(scene.New(), Status{Phase: "init"})
	if !strings.HasPrefix(row(screen, 0), " init") {
		t.Errorf("status line = %q", row(screen, 0))
	}
}

func TestNodeRune(t *testing.T) {
	tests := []struct {
		node scene.Node
		want rune
	}{
		{scene.Node{Facing: entity.Right}, '>'},
		{scene.Node{Facing: entity.Left, Animation: entity.AnimRunning}, '<'},
		{scene.Node{Facing: entity.Left, Animation: entity.AnimTurning}, '@'},
	}
	for _, tt := range tests {
		if got := NodeRune(tt.node); got != tt.want {
			t.Errorf("NodeRune(%+v) = %q, want %q", tt.node, got, tt.want)
		}
	}
}
