package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/assets"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

// maxStepsPerUpdate bounds catch-up ticks after a long frame.
const maxStepsPerUpdate = 5

// RunningState ticks the simulation at a fixed rate and applies level
// reloads between ticks.
type RunningState struct {
	ctx     *Context
	manager *Manager

	step        float64
	accumulator float64

	watcher  *assets.Watcher
	reloader *assets.Loader
}

// NewRunningState creates the running state.
func NewRunningState(ctx *Context, manager *Manager) *RunningState {
	rate := ctx.Config.Graphics.TickRate
	if rate <= 0 {
		rate = 60
	}
	return &RunningState{
		ctx:     ctx,
		manager: manager,
		step:    1 / float64(rate),
	}
}

func (s *RunningState) Phase() Phase { return PhaseGameRunning }

// Enter starts the level watcher when enabled. A watcher that cannot start
// only disables hot reload.
func (s *RunningState) Enter() error {
	s.accumulator = 0
	if !s.ctx.Config.Data.Watch {
		return nil
	}
	w, err := assets.WatchLevels(s.ctx.Assets)
	if err != nil {
		logger.Warn("level hot reload disabled", zap.Error(err))
		return nil
	}
	s.watcher = w
	return nil
}

// Exit stops the watcher.
func (s *RunningState) Exit() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// Update runs as many fixed ticks as dt covers.
func (s *RunningState) Update(dt float64) error {
	s.pollReload()

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.step && steps < maxStepsPerUpdate {
		s.Tick(float32(s.step))
		s.accumulator -= s.step
		steps++
	}
	if steps == maxStepsPerUpdate {
		s.accumulator = 0
	}
	return nil
}

// Tick runs one simulation step with the current input.
func (s *RunningState) Tick(dt float32) {
	inputs := make(map[entity.Handle]entity.Input, 1)
	if s.ctx.Input != nil {
		inputs[s.ctx.Player] = s.ctx.Input.Input()
	}
	s.ctx.Sim.Tick(world.Frame{
		Running: s.manager.Running(),
		Inputs:  inputs,
		DT:      dt,
	})
}

// pollReload starts a reload for changed level files and swaps in the new
// navmesh once it has loaded.
func (s *RunningState) pollReload() {
	if s.watcher != nil {
	drain:
		for {
			select {
			case path, ok := <-s.watcher.Events:
				if !ok {
					s.watcher = nil
					break drain
				}
				s.reload(path)
			case err, ok := <-s.watcher.Errors:
				if ok {
					logger.Warn("level watcher error", zap.Error(err))
				}
			default:
				break drain
			}
		}
	}

	if s.reloader == nil || !s.reloader.Done() {
		return
	}
	loader := s.reloader
	s.reloader = nil

	if err := loader.Err(); err != nil {
		logger.Warn("level reload failed, keeping current navmesh", zap.Error(err))
		return
	}
	level, ok := loader.Level(s.ctx.Level.Name)
	if !ok {
		return
	}
	s.ApplyLevel(level)
}

func (s *RunningState) reload(path string) {
	asset, ok := s.ctx.Assets.NameOf(path)
	if !ok {
		return
	}
	name, ok := assets.LevelName(asset)
	if !ok || name != s.ctx.Config.Game.Level {
		return
	}
	if s.reloader != nil {
		return
	}
	logger.Info("reloading level", zap.String("level", name))
	s.reloader = assets.NewLoader(s.ctx.Assets, s.ctx.Config.NavMesh.Tolerance)
	s.reloader.LoadLevel(s.ctx.Ctx, name)
}

// ApplyLevel swaps the navmesh of a reloaded level into the simulation.
func (s *RunningState) ApplyLevel(level *world.Level) {
	stranded := s.ctx.Sim.SetNavMesh(level.Mesh)
	s.ctx.Level.Mesh = level.Mesh
	logger.Info("navmesh reloaded",
		zap.String("level", level.Name),
		zap.Int("triangles", level.Mesh.Len()),
		zap.Int("stranded", len(stranded)))
}
