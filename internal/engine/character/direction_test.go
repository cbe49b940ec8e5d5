package character

import (
	"testing"

	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
)

func TestForward(t *testing.T) {
	if got := Forward(entity.Right); got != (math.Vec3{X: 1}) {
		t.Errorf("Forward(right) = %v, want +X", got)
	}
	if got := Forward(entity.Left); got != (math.Vec3{X: -1}) {
		t.Errorf("Forward(left) = %v, want -X", got)
	}
}

// The rendered model must face the way the character moves.
func TestOrientationMatchesForward(t *testing.T) {
	for _, d := range []entity.Direction{entity.Left, entity.Right} {
		got := Orientation(d).Rotate(math.UnitZ)
		if !got.ApproxEqual(Forward(d), 1e-5) {
			t.Errorf("Orientation(%v) maps +Z to %v, want %v", d, got, Forward(d))
		}
	}
}

func TestOpposite(t *testing.T) {
	if Opposite(entity.Left) != entity.Right || Opposite(entity.Right) != entity.Left {
		t.Error("Opposite() did not swap directions")
	}
}
