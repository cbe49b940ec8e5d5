package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/config"
	"github.com/Faultbox/paperman/internal/game/controls"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/session"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

const help = " arrows / a d: move   esc / q: quit"

// KeyName returns the control name of a key event, or "" for keys that
// have none.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyEnter:
		return "return"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// App runs a session on a terminal screen. Terminals report presses but
// not releases, so held keys are emulated with a latch.
type App struct {
	screen  tcell.Screen
	session *session.Session
	view    *View
	keymap  controls.Keymap
	latch   *controls.Latch
	now     func() time.Time
	quit    bool

	frames  int
	fps     int
	fpsTime time.Time
}

// NewApp creates an app drawing to screen. The screen must be initialized.
func NewApp(ctx context.Context, screen tcell.Screen, cfg *config.Config, publishers ...world.Publisher) (*App, error) {
	keymap, err := cfg.Controller.Keymap.Parse()
	if err != nil {
		return nil, err
	}
	a := &App{
		screen:  screen,
		view:    NewView(screen, help),
		keymap:  keymap,
		latch:   controls.NewLatch(controls.DefaultHold),
		now:     time.Now,
		fpsTime: time.Now(),
	}
	a.session, err = session.New(ctx, cfg, session.Options{
		Input:      a,
		Publishers: publishers,
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Input returns the movement keys currently latched.
func (a *App) Input() entity.Input {
	return a.keymap.Input(a.latch.Held(a.now()))
}

// HandleEvent processes one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.quit = true
			return
		}
		name := KeyName(ev)
		switch name {
		case "escape", "q":
			a.quit = true
		case "":
		default:
			a.press(name)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// press latches name. A direction key releases both directions first so
// a change of direction does not read as both keys held.
func (a *App) press(name string) {
	if contains(a.keymap.Left, name) || contains(a.keymap.Right, name) {
		for _, other := range a.keymap.Left {
			a.latch.Release(other)
		}
		for _, other := range a.keymap.Right {
			a.latch.Release(other)
		}
	}
	a.latch.Press(name, a.now())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Quit reports whether the user asked to leave.
func (a *App) Quit() bool {
	return a.quit
}

// Session returns the running session.
func (a *App) Session() *session.Session {
	return a.session
}

// Frame updates the session by dt and redraws.
func (a *App) Frame(dt float64) error {
	if err := a.session.Update(dt); err != nil {
		return err
	}

	a.frames++
	if now := a.now(); now.Sub(a.fpsTime) >= time.Second {
		a.fps = a.frames
		a.frames = 0
		a.fpsTime = now
	}
	a.view.Draw(a.session.Scene(), a.status())
	return nil
}

func (a *App) status() Status {
	st := Status{Phase: a.session.Phase().String(), FPS: a.fps}
	if level := a.session.Level(); level != nil {
		st.Level = level.Name
	}
	if sim := a.session.Simulation(); sim != nil {
		if c := sim.Character(a.session.PlayerHandle()); c != nil {
			st.Player = fmt.Sprintf("%s %s x=%.2f v=%.2f", c.State, c.Animation, c.Position.X, c.Speed())
		}
	}
	return st
}

// Run polls events and renders at rate frames per second until the user
// quits, ctx ends or the session fails.
func (a *App) Run(ctx context.Context, rate int) error {
	if rate <= 0 {
		rate = 60
	}
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	last := a.now()
	for !a.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.HandleEvent(ev)
		case <-ticker.C:
			now := a.now()
			dt := now.Sub(last).Seconds()
			last = now
			if err := a.Frame(dt); err != nil {
				logger.Error("session failed", zap.Error(err))
				return err
			}
		}
	}
	return nil
}

// Close ends the session.
func (a *App) Close() error {
	return a.session.Close()
}
