// Package main runs Paperman in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/config"
	"github.com/Faultbox/paperman/internal/engine/audio"
	"github.com/Faultbox/paperman/internal/engine/tui"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

// defaultLogFile is used when the config names none; the screen owns stdout.
const defaultLogFile = "paperman-tui.log"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logFile := cfg.Logging.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	if err := logger.InitFileOnly(cfg.Logging.Level, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("terminal client failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("terminal client closed normally")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	var publishers []world.Publisher
	sound := audio.New()
	sound.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	sound.SetSFXVolume(float64(cfg.Audio.SFXVolume))
	sound.SetMuted(cfg.Audio.Muted)
	if err := sound.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	} else {
		defer sound.Close()
	}

	var app *tui.App
	if sound.IsInitialized() {
		publishers = append(publishers, audio.NewCues(sound, func(h entity.Handle) bool {
			return app != nil && h == app.Session().PlayerHandle()
		}))
	}

	app, err = tui.NewApp(ctx, screen, cfg, publishers...)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx, cfg.Graphics.TickRate)
}
