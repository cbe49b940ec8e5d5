package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/logger"
)

// InitState registers the data directories.
type InitState struct {
	ctx     *Context
	manager *Manager
}

// NewInitState creates the first state.
func NewInitState(ctx *Context, manager *Manager) *InitState {
	return &InitState{ctx: ctx, manager: manager}
}

func (s *InitState) Phase() Phase { return PhaseInit }

// Enter adds every configured asset path.
func (s *InitState) Enter() error {
	for _, dir := range s.ctx.Config.Data.AssetPaths {
		if err := s.ctx.Assets.AddDir(dir); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		logger.Debug("asset dir added", zap.String("dir", dir))
	}
	return nil
}

func (s *InitState) Exit() error { return nil }

// Update moves on to asset loading.
func (s *InitState) Update(dt float64) error {
	return s.manager.Change(NewAssetsLoadingState(s.ctx, s.manager))
}
