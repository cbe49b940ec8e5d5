package character

import "github.com/Faultbox/paperman/internal/game/entity"

// DeriveAnimation maps controller state to the animation to play. Running
// picks the running clip only once speed reaches runThreshold; a zero
// threshold always walks.
func DeriveAnimation(state entity.ControllerState, speed, runThreshold float32) entity.AnimationState {
	switch state.Kind {
	case entity.Turning:
		return entity.AnimTurning
	case entity.Running:
		if runThreshold > 0 && speed >= runThreshold {
			return entity.AnimRunning
		}
		return entity.AnimWalking
	}
	return entity.AnimIdle
}
