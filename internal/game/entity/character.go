// Package entity holds the plain data records simulated by the game:
// characters, their controller and animation states, and the table that
// owns them.
package entity

import (
	"fmt"

	"github.com/Faultbox/paperman/pkg/math"
)

// Direction is one of the two horizontal headings a character can face.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection accepts "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "Left":
		return Left, nil
	case "right", "Right", "":
		return Right, nil
	}
	return Right, fmt.Errorf("unknown direction %q", s)
}

// Heading is the resolved directional input for one tick.
type Heading struct {
	Dir Direction
	Set bool
}

// NoHeading is the absence of directional input.
var NoHeading = Heading{}

// Toward returns a heading in direction d.
func Toward(d Direction) Heading {
	return Heading{Dir: d, Set: true}
}

// Input is the raw per-tick key state for one character.
type Input struct {
	Left  bool
	Right bool
}

// Heading resolves the key state. Left wins when both keys are held.
func (in Input) Heading() Heading {
	switch {
	case in.Left:
		return Toward(Left)
	case in.Right:
		return Toward(Right)
	}
	return NoHeading
}

// ControllerKind is the motion state of the character controller.
type ControllerKind uint8

const (
	Idle ControllerKind = iota
	Turning
	Running
)

func (k ControllerKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Turning:
		return "turning"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("ControllerKind(%d)", uint8(k))
	}
}

// ControllerState is the controller FSM state. Dir is meaningful for
// Turning and Running only.
type ControllerState struct {
	Kind ControllerKind
	Dir  Direction
}

// IdleState is the resting controller state.
var IdleState = ControllerState{Kind: Idle}

// TurningTo returns Turning(d).
func TurningTo(d Direction) ControllerState {
	return ControllerState{Kind: Turning, Dir: d}
}

// RunningTo returns Running(d).
func RunningTo(d Direction) ControllerState {
	return ControllerState{Kind: Running, Dir: d}
}

func (s ControllerState) String() string {
	if s.Kind == Idle {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Dir)
}

// AnimationState is the animation requested from the animation player.
type AnimationState uint8

const (
	AnimIdle AnimationState = iota
	AnimTurning
	AnimWalking
	AnimRunning
)

// AnimationStates lists every animation state in declaration order.
var AnimationStates = []AnimationState{AnimIdle, AnimTurning, AnimWalking, AnimRunning}

func (a AnimationState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimTurning:
		return "turning"
	case AnimWalking:
		return "walking"
	case AnimRunning:
		return "running"
	default:
		return fmt.Sprintf("AnimationState(%d)", uint8(a))
	}
}

// ParseAnimationState maps a clip table key to an animation state.
func ParseAnimationState(s string) (AnimationState, error) {
	for _, a := range AnimationStates {
		if a.String() == s {
			return a, nil
		}
	}
	return AnimIdle, fmt.Errorf("unknown animation state %q", s)
}

// Character is the per-character record.
type Character struct {
	Handle    Handle
	Name      string
	Position  math.Vec3
	Facing    Direction
	Velocity  math.Vec3
	State     ControllerState
	Animation AnimationState
}

// NewCharacter creates an idle character at position facing the given way.
func NewCharacter(name string, position math.Vec3, facing Direction) *Character {
	return &Character{
		Name:      name,
		Position:  position,
		Facing:    facing,
		State:     IdleState,
		Animation: AnimIdle,
	}
}

// Speed returns the velocity magnitude.
func (c *Character) Speed() float32 {
	return c.Velocity.Length()
}
