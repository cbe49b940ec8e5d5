package character

import (
	"testing"

	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

func pos(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}

// floor is the unit triangle lying in the XZ plane.
func floor() *navmesh.NavMesh {
	return navmesh.New([]navmesh.Triangle{{
		A: pos(0, 0, 0),
		B: pos(1, 0, 0),
		C: pos(0, 0, 1),
	}}, navmesh.WithTolerance(1e-3))
}

type rejectAll struct{}

func (rejectAll) Contains(math.Vec3) bool { return false }

func TestParseModel(t *testing.T) {
	tests := []struct {
		in      string
		want    Model
		wantErr bool
	}{
		{"accelerate", ModelAccelerate, false},
		{"direct", ModelDirect, false},
		{"", ModelAccelerate, false},
		{"teleport", ModelAccelerate, true},
	}
	for _, tt := range tests {
		got, err := ParseModel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseModel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestIntegrateDirect(t *testing.T) {
	params := Params{Model: ModelDirect, Speed: 2}
	c := entity.NewCharacter("p", pos(0.25, 0, 0.25), entity.Right)
	c.State = entity.RunningTo(entity.Right)

	step := Integrate(c, floor(), params, 0.05)
	if !step.Moved || step.Blocked {
		t.Fatalf("Integrate() = %+v, want moved", step)
	}
	if !c.Position.ApproxEqual(pos(0.35, 0, 0.25), 1e-6) {
		t.Errorf("Position = %v, want (0.35, 0, 0.25)", c.Position)
	}
	if c.Velocity != pos(2, 0, 0) {
		t.Errorf("Velocity = %v, want (2, 0, 0)", c.Velocity)
	}

	c.State = entity.IdleState
	step = Integrate(c, floor(), params, 0.05)
	if step.Moved || !c.Velocity.IsZero() {
		t.Errorf("idle direct step = %+v velocity %v, want no motion", step, c.Velocity)
	}
}

func TestIntegrateAccelerate(t *testing.T) {
	params := Params{Model: ModelAccelerate, Acceleration: 10, Friction: 2, MaxSpeed: 1}
	c := entity.NewCharacter("p", pos(0.1, 0, 0.1), entity.Right)
	c.State = entity.RunningTo(entity.Right)

	// First tick: no friction yet, v = a*dt.
	Integrate(c, floor(), params, 0.01)
	if !c.Velocity.ApproxEqual(pos(0.1, 0, 0), 1e-6) {
		t.Fatalf("Velocity after first tick = %v, want (0.1, 0, 0)", c.Velocity)
	}

	for range 50 {
		Integrate(c, floor(), params, 0.01)
	}
	// Clamped to MaxSpeed, then reduced by one tick of friction.
	if !c.Velocity.ApproxEqual(pos(0.98, 0, 0), 1e-5) {
		t.Errorf("steady velocity = %v, want (0.98, 0, 0)", c.Velocity)
	}
}

func TestIntegrateFrictionSnapsToZero(t *testing.T) {
	params := Params{Model: ModelAccelerate, Acceleration: 10, Friction: 2, MaxSpeed: 1}
	c := entity.NewCharacter("p", pos(0.1, 0, 0.1), entity.Right)
	c.Velocity = pos(0.01, 0, 0)

	step := Integrate(c, floor(), params, 0.1)
	if !c.Velocity.IsZero() {
		t.Errorf("Velocity = %v, want zero", c.Velocity)
	}
	if step.Moved {
		t.Error("character moved after velocity snapped to zero")
	}
}

func TestIntegrateIdleCoasts(t *testing.T) {
	params := Params{Model: ModelAccelerate, Acceleration: 10, Friction: 1, MaxSpeed: 1}
	c := entity.NewCharacter("p", pos(0.1, 0, 0.1), entity.Right)
	c.Velocity = pos(0.5, 0, 0)

	step := Integrate(c, floor(), params, 0.1)
	if !step.Moved {
		t.Fatalf("Integrate() = %+v, want moved", step)
	}
	if !c.Velocity.ApproxEqual(pos(0.4, 0, 0), 1e-6) {
		t.Errorf("Velocity = %v, want (0.4, 0, 0)", c.Velocity)
	}
}

func TestIntegrateTurningStopsInPlace(t *testing.T) {
	c := entity.NewCharacter("p", pos(0.25, 0, 0.25), entity.Right)
	c.State = entity.TurningTo(entity.Left)
	c.Velocity = pos(0.5, 0, 0)
	before := c.Position

	for _, p := range []Params{DefaultParams(), {Model: ModelDirect, Speed: 1}} {
		step := Integrate(c, floor(), p, 0.1)
		if step.Moved || step.Blocked {
			t.Errorf("%v: Integrate() = %+v while turning", p.Model, step)
		}
		if c.Position != before || !c.Velocity.IsZero() {
			t.Errorf("%v: position %v velocity %v, want unchanged and zero", p.Model, c.Position, c.Velocity)
		}
	}
}

func TestIntegrateRejectedKeepsPositionExactly(t *testing.T) {
	models := []Params{
		{Model: ModelDirect, Speed: 3},
		{Model: ModelAccelerate, Acceleration: 100, Friction: 1, MaxSpeed: 5},
	}

	for _, params := range models {
		t.Run(params.Model.String(), func(t *testing.T) {
			start := pos(0.123456789, 0.5, -7.25)
			c := entity.NewCharacter("p", start, entity.Left)
			c.State = entity.RunningTo(entity.Left)

			step := Integrate(c, rejectAll{}, params, 0.1)
			if !step.Blocked || step.Moved {
				t.Fatalf("Integrate() = %+v, want blocked", step)
			}
			if c.Position != start {
				t.Errorf("Position = %v, want exactly %v", c.Position, start)
			}
			if c.Velocity.IsZero() {
				t.Error("velocity dropped on rejection")
			}
		})
	}
}

func TestIntegrateStopsAtMeshEdge(t *testing.T) {
	params := Params{Model: ModelDirect, Speed: 1}
	c := entity.NewCharacter("p", pos(0.25, 0, 0.25), entity.Left)
	c.State = entity.RunningTo(entity.Left)
	mesh := floor()

	last := c.Position.X
	blocked := false
	for range 100 {
		step := Integrate(c, mesh, params, 0.05)
		if step.Blocked {
			blocked = true
			if c.Position.X != last {
				t.Fatalf("blocked step moved X from %v to %v", last, c.Position.X)
			}
			continue
		}
		if blocked {
			t.Fatal("character moved again after being blocked")
		}
		if c.Position.X >= last {
			t.Fatalf("X did not decrease: %v -> %v", last, c.Position.X)
		}
		last = c.Position.X
	}
	if !blocked {
		t.Fatal("character never reached the mesh edge")
	}
	if !mesh.Contains(c.Position) {
		t.Errorf("final position %v is off the mesh", c.Position)
	}
}
