package character

import "github.com/Faultbox/paperman/internal/game/entity"

// Advance computes the next controller state from the current state, the
// committed facing and this tick's heading.
//
// Turning is left only through CompleteTurn; input is ignored meanwhile.
func Advance(current entity.ControllerState, facing entity.Direction, in entity.Heading) entity.ControllerState {
	switch current.Kind {
	case entity.Idle:
		if !in.Set {
			return entity.IdleState
		}
		if in.Dir == facing {
			return entity.RunningTo(in.Dir)
		}
		return entity.TurningTo(in.Dir)

	case entity.Running:
		if !in.Set {
			return entity.IdleState
		}
		if in.Dir == current.Dir {
			return current
		}
		return entity.TurningTo(in.Dir)

	case entity.Turning:
		return current
	}
	return current
}

// CompleteTurn commits a finished turn: the facing becomes the turn
// direction and the character starts running. It reports whether c was
// turning.
func CompleteTurn(c *entity.Character) bool {
	if c.State.Kind != entity.Turning {
		return false
	}
	c.Facing = c.State.Dir
	c.State = entity.RunningTo(c.State.Dir)
	return true
}
