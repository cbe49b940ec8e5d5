package states

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/assets"
	"github.com/Faultbox/paperman/internal/logger"
)

// AssetsLoadingState waits for the level and character files.
type AssetsLoadingState struct {
	ctx     *Context
	manager *Manager

	startTime time.Time
}

// NewAssetsLoadingState creates the asset loading state.
func NewAssetsLoadingState(ctx *Context, manager *Manager) *AssetsLoadingState {
	return &AssetsLoadingState{ctx: ctx, manager: manager}
}

func (s *AssetsLoadingState) Phase() Phase { return PhaseAssetsLoading }

// Enter starts loading in the background.
func (s *AssetsLoadingState) Enter() error {
	s.startTime = time.Now()
	cfg := s.ctx.Config

	logger.Info("loading assets",
		zap.String("level", cfg.Game.Level),
		zap.String("character", cfg.Game.Character))

	s.ctx.Loader = assets.NewLoader(s.ctx.Assets, cfg.NavMesh.Tolerance)
	s.ctx.Loader.LoadLevel(s.ctx.Ctx, cfg.Game.Level)
	if cfg.Game.Character != "" {
		s.ctx.Loader.LoadCharacter(s.ctx.Ctx, cfg.Game.Character)
	}
	return nil
}

func (s *AssetsLoadingState) Exit() error { return nil }

// Update polls the pending set. Any failure ends the game.
func (s *AssetsLoadingState) Update(dt float64) error {
	if !s.ctx.Loader.Done() {
		return nil
	}
	if err := s.ctx.Loader.Err(); err != nil {
		for _, e := range s.ctx.Loader.Errors() {
			logger.Error("asset failed", zap.Error(e))
		}
		return fmt.Errorf("loading assets: %w", err)
	}

	logger.Info("assets loaded", zap.Duration("elapsed", time.Since(s.startTime)))
	return s.manager.Change(NewAssetsLoadedState(s.ctx, s.manager))
}

// Pending returns the assets still loading.
func (s *AssetsLoadingState) Pending() []string {
	if s.ctx.Loader == nil {
		return nil
	}
	return s.ctx.Loader.Pending()
}

// AssetsLoadedState hands the loaded assets to the context.
type AssetsLoadedState struct {
	ctx     *Context
	manager *Manager
}

// NewAssetsLoadedState creates the assets loaded state.
func NewAssetsLoadedState(ctx *Context, manager *Manager) *AssetsLoadedState {
	return &AssetsLoadedState{ctx: ctx, manager: manager}
}

func (s *AssetsLoadedState) Phase() Phase { return PhaseAssetsLoaded }

// Enter picks the loaded level and character.
func (s *AssetsLoadedState) Enter() error {
	cfg := s.ctx.Config
	level, ok := s.ctx.Loader.Level(cfg.Game.Level)
	if !ok {
		return fmt.Errorf("level %q missing after load", cfg.Game.Level)
	}
	s.ctx.Level = level

	s.ctx.Character = nil
	if c, ok := s.ctx.Loader.Character(cfg.Game.Character); ok {
		s.ctx.Character = c
	}
	return nil
}

func (s *AssetsLoadedState) Exit() error { return nil }

// Update moves on to building the game.
func (s *AssetsLoadedState) Update(dt float64) error {
	return s.manager.Change(NewGameLoadingState(s.ctx, s.manager))
}
