package world

import (
	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
)

// Publisher receives character changes at the end of each tick. Only
// changed characters are published.
type Publisher interface {
	PublishTransform(h entity.Handle, position math.Vec3, facing entity.Direction, orientation math.Quat)
	PublishAnimation(h entity.Handle, state entity.AnimationState, clip animation.ClipID)
}

// Publishers fans out to several publishers in order.
type Publishers []Publisher

func (ps Publishers) PublishTransform(h entity.Handle, position math.Vec3, facing entity.Direction, orientation math.Quat) {
	for _, p := range ps {
		p.PublishTransform(h, position, facing, orientation)
	}
}

func (ps Publishers) PublishAnimation(h entity.Handle, state entity.AnimationState, clip animation.ClipID) {
	for _, p := range ps {
		p.PublishAnimation(h, state, clip)
	}
}
