// Package game implements the windowed host: SDL2 window, OpenGL debug
// drawing and audio cues around a session.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/config"
	"github.com/Faultbox/paperman/internal/engine/audio"
	"github.com/Faultbox/paperman/internal/engine/camera"
	"github.com/Faultbox/paperman/internal/engine/debug"
	"github.com/Faultbox/paperman/internal/engine/input"
	"github.com/Faultbox/paperman/internal/engine/renderer"
	"github.com/Faultbox/paperman/internal/engine/window"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/session"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

const title = "Paperman"

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool
	// captureNext saves the next rendered frame.
	captureNext bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	camera   *camera.FollowCamera
	shots    *debug.ScreenshotCapture
	session  *session.Session
	cancel   context.CancelFunc
}

// New creates the window, renderer and audio, and schedules level loading.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("level", cfg.Game.Level))

	keymap, err := cfg.Controller.Keymap.Parse()
	if err != nil {
		return nil, err
	}

	g := &Game{
		config: cfg,
		camera: camera.NewFollowCamera(),
		input:  input.New(keymap),
		shots:  debug.NewScreenshotCapture(cfg.Game.ScreenshotDir, "paperman"),
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context.
	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.ShowBounds = cfg.Game.ShowBounds

	var publishers []world.Publisher
	g.audio = audio.New()
	g.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	g.audio.SetSFXVolume(float64(cfg.Audio.SFXVolume))
	g.audio.SetMuted(cfg.Audio.Muted)
	if err := g.audio.Init(); err != nil {
		// Sound is optional.
		logger.Warn("audio disabled", zap.Error(err))
	} else {
		publishers = append(publishers, audio.NewCues(g.audio, g.isPlayer))
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.session, err = session.New(ctx, cfg, session.Options{
		Input:      g.input,
		Publishers: publishers,
	})
	if err != nil {
		g.Close()
		return nil, err
	}

	logger.Info("game initialized successfully")
	return g, nil
}

func (g *Game) isPlayer(h entity.Handle) bool {
	return h == g.session.PlayerHandle()
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	logger.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				width, height := g.window.Size()
				g.renderer.Resize(width, height)
			case input.EventKeyDown:
				switch event.Key {
				case "escape":
					g.running = false
				case "f12":
					g.captureNext = true
				case "f3":
					g.renderer.ShowBounds = !g.renderer.ShowBounds
				}
			}
		}

		// 2. Update phases and simulation
		if err := g.session.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		if player, ok := g.session.Player(); ok {
			g.camera.Follow(player.Position, float32(dt))
		}
		g.renderer.Draw(g.session.Scene(), g.camera)
		if g.captureNext {
			g.captureNext = false
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.config.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			}
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.session != nil {
		if err := g.session.Close(); err != nil {
			logger.Warn("closing session", zap.Error(err))
		}
	}
	if g.cancel != nil {
		g.cancel()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
