package character

import (
	"testing"

	"github.com/Faultbox/paperman/internal/game/entity"
)

func TestAdvance(t *testing.T) {
	L, R := entity.Left, entity.Right
	none := entity.NoHeading
	left := entity.Toward(L)
	right := entity.Toward(R)

	tests := []struct {
		name    string
		current entity.ControllerState
		facing  entity.Direction
		in      entity.Heading
		want    entity.ControllerState
	}{
		{"idle no input facing right", entity.IdleState, R, none, entity.IdleState},
		{"idle no input facing left", entity.IdleState, L, none, entity.IdleState},
		{"idle input matches facing right", entity.IdleState, R, right, entity.RunningTo(R)},
		{"idle input matches facing left", entity.IdleState, L, left, entity.RunningTo(L)},
		{"idle input opposes facing right", entity.IdleState, R, left, entity.TurningTo(L)},
		{"idle input opposes facing left", entity.IdleState, L, right, entity.TurningTo(R)},

		{"running released", entity.RunningTo(R), R, none, entity.IdleState},
		{"running same direction", entity.RunningTo(R), R, right, entity.RunningTo(R)},
		{"running left same direction", entity.RunningTo(L), L, left, entity.RunningTo(L)},
		{"running reversed", entity.RunningTo(R), R, left, entity.TurningTo(L)},
		{"running left reversed", entity.RunningTo(L), L, right, entity.TurningTo(R)},

		{"turning no input", entity.TurningTo(L), R, none, entity.TurningTo(L)},
		{"turning same input", entity.TurningTo(L), R, left, entity.TurningTo(L)},
		{"turning opposite input", entity.TurningTo(L), R, right, entity.TurningTo(L)},
		{"turning right ignores input", entity.TurningTo(R), L, left, entity.TurningTo(R)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.current, tt.facing, tt.in)
			if got != tt.want {
				t.Errorf("Advance(%v, %v, %+v) = %v, want %v", tt.current, tt.facing, tt.in, got, tt.want)
			}
		})
	}
}

func TestAdvanceBothKeysPrefersLeft(t *testing.T) {
	in := entity.Input{Left: true, Right: true}.Heading()
	got := Advance(entity.IdleState, entity.Right, in)
	if got != entity.TurningTo(entity.Left) {
		t.Errorf("Advance with both keys = %v, want turning(left)", got)
	}
}

func TestCompleteTurn(t *testing.T) {
	c := entity.NewCharacter("p", pos(0.25, 0, 0.25), entity.Right)
	c.State = entity.TurningTo(entity.Left)

	if !CompleteTurn(c) {
		t.Fatal("CompleteTurn() = false for turning character")
	}
	if c.Facing != entity.Left {
		t.Errorf("Facing = %v, want left", c.Facing)
	}
	if c.State != entity.RunningTo(entity.Left) {
		t.Errorf("State = %v, want running(left)", c.State)
	}
}

func TestCompleteTurnIgnoresOtherStates(t *testing.T) {
	for _, s := range []entity.ControllerState{entity.IdleState, entity.RunningTo(entity.Right)} {
		c := entity.NewCharacter("p", pos(0, 0, 0), entity.Right)
		c.State = s
		if CompleteTurn(c) {
			t.Errorf("CompleteTurn() = true in state %v", s)
		}
		if c.State != s || c.Facing != entity.Right {
			t.Errorf("state %v changed to %v facing %v", s, c.State, c.Facing)
		}
	}
}

func TestFacingChangesOnlyOnTurnCompletion(t *testing.T) {
	c := entity.NewCharacter("p", pos(0, 0, 0), entity.Right)
	inputs := []entity.Input{{Left: true}, {Left: true}, {}, {Right: true}, {Left: true}}

	for _, in := range inputs {
		c.State = Advance(c.State, c.Facing, in.Heading())
		if c.Facing != entity.Right {
			t.Fatalf("facing changed to %v without turn completion", c.Facing)
		}
	}
	if c.State != entity.TurningTo(entity.Left) {
		t.Fatalf("State = %v, want turning(left)", c.State)
	}
}
