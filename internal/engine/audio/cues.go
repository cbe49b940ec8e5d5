package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/logger"
	"github.com/Faultbox/paperman/pkg/math"
)

// Cue identifies a synthesized effect.
type Cue int

const (
	CueNone Cue = iota
	CueTurn
	CueStart
	CueStop
)

func (c Cue) String() string {
	switch c {
	case CueTurn:
		return "turn"
	case CueStart:
		return "start"
	case CueStop:
		return "stop"
	default:
		return "none"
	}
}

// NewCue builds the streamer for c.
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueTurn:
		// Rising two-note swish.
		return beep.Seq(
			tone(330, 40*time.Millisecond, WaveTriangle, 0.3, rate),
			tone(494, 60*time.Millisecond, WaveTriangle, 0.3, rate),
		)
	case CueStart:
		return tone(220, 50*time.Millisecond, WaveSquare, 0.15, rate)
	case CueStop:
		return tone(147, 70*time.Millisecond, WaveSine, 0.3, rate)
	}
	return nil
}

// CueFor maps an animation change to an effect.
func CueFor(from, to entity.AnimationState) Cue {
	switch {
	case to == entity.AnimTurning:
		return CueTurn
	case from == entity.AnimIdle && (to == entity.AnimWalking || to == entity.AnimRunning):
		return CueStart
	case from != entity.AnimIdle && to == entity.AnimIdle:
		return CueStop
	}
	return CueNone
}

// Sink plays a stream.
type Sink interface {
	Play(s beep.Streamer) error
	SampleRate() beep.SampleRate
}

// Cues plays effects when a character's animation changes. It receives
// simulation updates as a publisher.
type Cues struct {
	sink   Sink
	filter func(entity.Handle) bool
	last   map[entity.Handle]entity.AnimationState
	log    *zap.Logger
}

// NewCues creates a cue publisher. filter limits the characters that make
// sound; nil means all of them.
func NewCues(sink Sink, filter func(entity.Handle) bool) *Cues {
	return &Cues{
		sink:   sink,
		filter: filter,
		last:   make(map[entity.Handle]entity.AnimationState),
		log:    logger.Named("audio"),
	}
}

// PublishTransform is ignored.
func (c *Cues) PublishTransform(entity.Handle, math.Vec3, entity.Direction, math.Quat) {}

// PublishAnimation plays the cue for the change, if any. The first report
// of a character only records its state.
func (c *Cues) PublishAnimation(h entity.Handle, state entity.AnimationState, _ animation.ClipID) {
	prev, seen := c.last[h]
	c.last[h] = state
	if !seen || (c.filter != nil && !c.filter(h)) {
		return
	}

	cue := CueFor(prev, state)
	if cue == CueNone {
		return
	}
	if err := c.sink.Play(NewCue(cue, c.sink.SampleRate())); err != nil {
		c.log.Debug("cue not played", zap.Stringer("cue", cue), zap.Error(err))
	}
}

// Forget drops the recorded state of h.
func (c *Cues) Forget(h entity.Handle) {
	delete(c.last, h)
}
