// Package session runs the application phases for a host. Hosts feed it
// frame times and input and draw what it publishes.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/assets"
	"github.com/Faultbox/paperman/internal/config"
	"github.com/Faultbox/paperman/internal/engine/scene"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/states"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

// Options are the host-provided parts of a session.
type Options struct {
	Input states.InputSource
	// Publishers receive simulation changes in addition to the scene.
	Publishers []world.Publisher
}

// Session owns the state manager and the scene it publishes into.
type Session struct {
	ctx     *states.Context
	manager *states.Manager
	scene   *scene.Scene
	phase   states.Phase
}

// New creates a session and schedules the init phase.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Session, error) {
	sc := scene.New()
	pubs := world.Publishers{sc}
	pubs = append(pubs, opts.Publishers...)

	s := &Session{
		ctx: &states.Context{
			Ctx:       ctx,
			Config:    cfg,
			Assets:    assets.NewManager(),
			Input:     opts.Input,
			Publisher: pubs,
		},
		manager: states.NewManager(),
		scene:   sc,
	}
	if err := s.manager.Change(states.NewInitState(s.ctx, s.manager)); err != nil {
		return nil, err
	}
	return s, nil
}

// Update advances the current phase by dt seconds.
func (s *Session) Update(dt float64) error {
	if err := s.manager.Update(dt); err != nil {
		return err
	}
	if p := s.manager.Phase(); p != s.phase {
		logger.Info("phase changed", zap.Stringer("from", s.phase), zap.Stringer("to", p))
		s.phase = p
	}
	if s.ctx.Sim != nil {
		s.scene.SetNavMesh(s.ctx.Sim.NavMesh())
	}
	return nil
}

// Phase returns the current phase.
func (s *Session) Phase() states.Phase {
	return s.manager.Phase()
}

// Running reports whether the level is being simulated.
func (s *Session) Running() bool {
	return s.manager.Running()
}

// Scene returns the published scene.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Simulation returns the simulation once the game has loaded, or nil.
func (s *Session) Simulation() *world.Simulation {
	return s.ctx.Sim
}

// Player returns the local player's scene node.
func (s *Session) Player() (scene.Node, bool) {
	if s.ctx.Sim == nil {
		return scene.Node{}, false
	}
	return s.scene.Node(s.ctx.Player)
}

// PlayerHandle returns the local player's handle, or zero before loading.
func (s *Session) PlayerHandle() entity.Handle {
	return s.ctx.Player
}

// Level returns the loaded level, or nil.
func (s *Session) Level() *world.Level {
	return s.ctx.Level
}

// Close leaves the current phase and drops cached assets.
func (s *Session) Close() error {
	err := s.manager.Close()
	s.ctx.Assets.Close()
	return err
}
