// Package animation selects clips for animation states and plays them.
//
// Player is the boundary to whatever plays skeletal clips. ClipPlayer is an
// in-process implementation that only tracks clip time, which is enough to
// drive the controller and the debug hosts.
package animation

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/logger"
)

// ErrNoIdleClip is returned for a library without an idle clip.
var ErrNoIdleClip = errors.New("animation library has no idle clip")

// ClipID names a clip in the character asset.
type ClipID string

// Clip describes one entry of the clip table.
type Clip struct {
	ID         ClipID
	Looped     bool
	Transition time.Duration
	Speed      float32
	Duration   time.Duration
}

// PlayOptions controls a single PlayClip request.
type PlayOptions struct {
	Looped     bool
	Transition time.Duration
	Speed      float32
}

// Options returns the play options stored in the clip.
func (c Clip) Options() PlayOptions {
	speed := c.Speed
	if speed <= 0 {
		speed = 1
	}
	return PlayOptions{Looped: c.Looped, Transition: c.Transition, Speed: speed}
}

// Player plays clips for one character.
type Player interface {
	PlayClip(clip Clip, opts PlayOptions)
	IsFinished() bool
	Current() (ClipID, bool)
}

// Library maps animation states to clips.
type Library struct {
	name   string
	clips  map[entity.AnimationState]Clip
	warned map[entity.AnimationState]bool
}

// NewLibrary validates and stores a clip table.
func NewLibrary(name string, clips map[entity.AnimationState]Clip) (*Library, error) {
	if _, ok := clips[entity.AnimIdle]; !ok {
		return nil, fmt.Errorf("library %q: %w", name, ErrNoIdleClip)
	}
	l := &Library{
		name:   name,
		clips:  make(map[entity.AnimationState]Clip, len(clips)),
		warned: make(map[entity.AnimationState]bool),
	}
	for state, clip := range clips {
		if clip.ID == "" {
			return nil, fmt.Errorf("library %q: clip for %s has no id", name, state)
		}
		l.clips[state] = clip
	}
	return l, nil
}

// DefaultLibrary is the paperman clip table.
func DefaultLibrary() *Library {
	l, _ := NewLibrary("paperman", map[entity.AnimationState]Clip{
		entity.AnimIdle:    {ID: "idle", Looped: true, Transition: 200 * time.Millisecond, Speed: 1, Duration: 2 * time.Second},
		entity.AnimWalking: {ID: "walking", Looped: true, Transition: 400 * time.Millisecond, Speed: 1, Duration: 800 * time.Millisecond},
		entity.AnimRunning: {ID: "running", Looped: true, Transition: 400 * time.Millisecond, Speed: 1, Duration: 600 * time.Millisecond},
		entity.AnimTurning: {ID: "turn180", Speed: 1, Duration: 500 * time.Millisecond},
	})
	return l
}

// Name returns the library name.
func (l *Library) Name() string {
	return l.name
}

// Has reports whether a clip is defined for state.
func (l *Library) Has(state entity.AnimationState) bool {
	_, ok := l.clips[state]
	return ok
}

// Resolve returns the clip and options for state. A missing clip falls back
// to idle; the turning fallback plays once so the turn still finishes.
func (l *Library) Resolve(state entity.AnimationState) (Clip, PlayOptions) {
	if clip, ok := l.clips[state]; ok {
		return clip, clip.Options()
	}

	if !l.warned[state] {
		l.warned[state] = true
		logger.Warn("missing animation clip, using idle",
			zap.String("library", l.name),
			zap.Stringer("state", state))
	}

	clip := l.clips[entity.AnimIdle]
	opts := clip.Options()
	if state == entity.AnimTurning {
		opts.Looped = false
	}
	return clip, opts
}
