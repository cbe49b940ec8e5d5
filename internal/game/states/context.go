package states

import (
	"context"

	"github.com/Faultbox/paperman/internal/assets"
	"github.com/Faultbox/paperman/internal/config"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/world"
)

// InputSource yields the local player's keys for the current frame.
type InputSource interface {
	Input() entity.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() entity.Input

// Input calls f.
func (f InputFunc) Input() entity.Input { return f() }

// Context is shared by all states. Loading states fill it in; the running
// state reads it.
type Context struct {
	Ctx       context.Context
	Config    *config.Config
	Assets    *assets.Manager
	Input     InputSource
	Publisher world.Publisher

	Loader    *assets.Loader
	Level     *world.Level
	Character *assets.Character
	Sim       *world.Simulation
	Player    entity.Handle
}
