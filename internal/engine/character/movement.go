package character

import (
	"fmt"

	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
)

// Model selects how velocity is produced while running.
type Model uint8

const (
	// ModelAccelerate ramps velocity with acceleration, a speed cap and friction.
	ModelAccelerate Model = iota
	// ModelDirect moves at a constant speed while running.
	ModelDirect
)

func (m Model) String() string {
	switch m {
	case ModelAccelerate:
		return "accelerate"
	case ModelDirect:
		return "direct"
	default:
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
}

// ParseModel accepts "accelerate" or "direct".
func ParseModel(s string) (Model, error) {
	switch s {
	case "accelerate", "":
		return ModelAccelerate, nil
	case "direct":
		return ModelDirect, nil
	}
	return ModelAccelerate, fmt.Errorf("unknown movement model %q", s)
}

// Movement defaults, in world units per second.
const (
	DefaultSpeed        = 0.6
	DefaultAcceleration = 6.18
	DefaultFriction     = 4.2
	DefaultMaxSpeed     = 0.6
)

// Params are the controller movement constants.
type Params struct {
	Model        Model
	Speed        float32 // direct model
	Acceleration float32
	Friction     float32
	MaxSpeed     float32
	RunThreshold float32
}

// DefaultParams returns the accelerate model with default constants.
func DefaultParams() Params {
	return Params{
		Model:        ModelAccelerate,
		Speed:        DefaultSpeed,
		Acceleration: DefaultAcceleration,
		Friction:     DefaultFriction,
		MaxSpeed:     DefaultMaxSpeed,
	}
}

// Walkable reports whether a point may be occupied.
// *navmesh.NavMesh satisfies it.
type Walkable interface {
	Contains(p math.Vec3) bool
}

// Step describes the outcome of one integration.
type Step struct {
	Candidate math.Vec3
	Moved     bool
	Blocked   bool
}

// Integrate updates c's velocity and, when the candidate position is on the
// mesh, its position. A rejected candidate leaves Position untouched and
// keeps the velocity. Turning characters stop in place.
func Integrate(c *entity.Character, mesh Walkable, p Params, dt float32) Step {
	if c.State.Kind == entity.Turning {
		c.Velocity = math.Vec3{}
		return Step{Candidate: c.Position}
	}

	switch p.Model {
	case ModelDirect:
		if c.State.Kind == entity.Running {
			c.Velocity = Forward(c.State.Dir).Scale(p.Speed)
		} else {
			c.Velocity = math.Vec3{}
		}
	default:
		c.Velocity = accelerate(c.Velocity, c.State, p, dt)
	}

	if c.Velocity.IsZero() {
		return Step{Candidate: c.Position}
	}

	candidate := c.Position.Add(c.Velocity.Scale(dt))
	if mesh != nil && !mesh.Contains(candidate) {
		return Step{Candidate: candidate, Blocked: true}
	}
	c.Position = candidate
	return Step{Candidate: candidate, Moved: true}
}

func accelerate(v math.Vec3, state entity.ControllerState, p Params, dt float32) math.Vec3 {
	var friction math.Vec3
	if !v.IsZero() {
		friction = v.Normalize().Scale(-p.Friction)
	}

	if state.Kind == entity.Running {
		v = v.Add(Forward(state.Dir).Scale(p.Acceleration * dt))
	}

	if p.MaxSpeed > 0 && v.Length() > p.MaxSpeed {
		v = v.Normalize().Scale(p.MaxSpeed)
	}

	next := v.Add(friction.Scale(dt))
	// Friction never reverses motion.
	if next.Dot(v) <= 0 {
		return math.Vec3{}
	}
	return next
}
