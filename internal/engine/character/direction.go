package character

import (
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
)

// Yaw angles in degrees about +Y for each facing. The character model rests
// facing +Z.
const (
	YawRight float32 = 90
	YawLeft  float32 = -90
)

// Forward returns the unit world vector for d: Right is +X, Left is -X.
func Forward(d entity.Direction) math.Vec3 {
	if d == entity.Left {
		return math.Vec3{X: -1}
	}
	return math.Vec3{X: 1}
}

// Orientation returns the model rotation for facing d.
func Orientation(d entity.Direction) math.Quat {
	if d == entity.Left {
		return math.QuatFromYawDegrees(YawLeft)
	}
	return math.QuatFromYawDegrees(YawRight)
}

// Opposite returns the other direction.
func Opposite(d entity.Direction) entity.Direction {
	if d == entity.Left {
		return entity.Right
	}
	return entity.Left
}
