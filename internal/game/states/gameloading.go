package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

// GameLoadingState builds the simulation and spawns the level's characters.
// A spawn off the navmesh is fatal.
type GameLoadingState struct {
	ctx     *Context
	manager *Manager
}

// NewGameLoadingState creates the game loading state.
func NewGameLoadingState(ctx *Context, manager *Manager) *GameLoadingState {
	return &GameLoadingState{ctx: ctx, manager: manager}
}

func (s *GameLoadingState) Phase() Phase { return PhaseGameLoading }

// Enter creates the simulation.
func (s *GameLoadingState) Enter() error {
	cfg := s.ctx.Config
	level := s.ctx.Level

	lib := animation.DefaultLibrary()
	name := cfg.Game.Character
	if s.ctx.Character != nil {
		lib = s.ctx.Character.Library
		name = s.ctx.Character.Name
	}

	sim := world.NewSimulation(level.Mesh, world.Options{
		Params:    cfg.Controller.Params(),
		Library:   lib,
		Publisher: s.ctx.Publisher,
	})
	player, err := sim.Populate(level, name)
	if err != nil {
		return fmt.Errorf("game loading: %w", err)
	}

	s.ctx.Sim = sim
	s.ctx.Player = player

	bounds := level.Mesh.Bounds()
	logger.Info("level ready",
		zap.String("level", level.Name),
		zap.Int("triangles", level.Mesh.Len()),
		zap.Float64("tolerance", level.Mesh.Tolerance()),
		zap.Int("characters", len(sim.Characters())),
		zap.Float32("width", bounds.Size().X))
	return nil
}

func (s *GameLoadingState) Exit() error { return nil }

// Update starts the game.
func (s *GameLoadingState) Update(dt float64) error {
	return s.manager.Change(NewRunningState(s.ctx, s.manager))
}
