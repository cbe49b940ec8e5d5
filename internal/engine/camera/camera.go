// Package camera provides the follow camera used by the window host.
package camera

import (
	gomath "math"

	"github.com/Faultbox/paperman/pkg/math"
)

// Defaults frame a character from the side, slightly above, with world +X
// pointing to screen right.
var (
	DefaultOffset     = math.Vec3{X: 0, Y: 3, Z: 28}
	DefaultLookOffset = math.Vec3{X: 0, Y: 2, Z: 0}
)

// FollowCamera trails a target at a fixed offset.
type FollowCamera struct {
	// Offset from target to eye.
	Offset math.Vec3
	// LookOffset from target to the point looked at.
	LookOffset math.Vec3

	// Stiffness is the fraction of the remaining distance closed per second.
	// Zero snaps to the target.
	Stiffness float32

	FovY      float32 // radians
	Near, Far float32

	target math.Vec3
	placed bool
}

// NewFollowCamera creates a camera with the default framing.
func NewFollowCamera() *FollowCamera {
	return &FollowCamera{
		Offset:     DefaultOffset,
		LookOffset: DefaultLookOffset,
		Stiffness:  6,
		FovY:       float32(gomath.Pi / 4),
		Near:       0.1,
		Far:        1000,
	}
}

// Follow moves the tracked point toward target.
func (c *FollowCamera) Follow(target math.Vec3, dt float32) {
	if !c.placed || c.Stiffness <= 0 {
		c.target = target
		c.placed = true
		return
	}
	t := c.Stiffness * dt
	if t > 1 {
		t = 1
	}
	c.target = c.target.Add(target.Sub(c.target).Scale(t))
}

// Snap jumps to target.
func (c *FollowCamera) Snap(target math.Vec3) {
	c.target = target
	c.placed = true
}

// Target returns the tracked point.
func (c *FollowCamera) Target() math.Vec3 {
	return c.target
}

// Position returns the eye position in world space.
func (c *FollowCamera) Position() math.Vec3 {
	return c.target.Add(c.Offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FollowCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.target.Add(c.LookOffset), up)
}

// ProjectionMatrix returns the perspective projection for aspect (w/h).
func (c *FollowCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *FollowCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}
