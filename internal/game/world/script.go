package world

import (
	"fmt"

	"github.com/Faultbox/paperman/internal/game/entity"
)

// Script produces input for a character that has no human driver.
type Script interface {
	Next(dt float32) entity.Input
}

// PatternStep holds one input for a fixed time.
type PatternStep struct {
	Input   entity.Input
	Seconds float32
}

// ParsePatternKey maps "left", "right", "both" or "none" to an input.
func ParsePatternKey(key string) (entity.Input, error) {
	switch key {
	case "left":
		return entity.Input{Left: true}, nil
	case "right":
		return entity.Input{Right: true}, nil
	case "both":
		return entity.Input{Left: true, Right: true}, nil
	case "none", "":
		return entity.Input{}, nil
	}
	return entity.Input{}, fmt.Errorf("unknown pattern key %q", key)
}

// Pattern replays its steps in a loop.
type Pattern struct {
	steps   []PatternStep
	index   int
	elapsed float32
}

// NewPattern returns a looping script. Steps with no duration are dropped;
// an empty pattern always returns no input.
func NewPattern(steps []PatternStep) *Pattern {
	kept := make([]PatternStep, 0, len(steps))
	for _, s := range steps {
		if s.Seconds > 0 {
			kept = append(kept, s)
		}
	}
	return &Pattern{steps: kept}
}

// Next returns the input active at the start of this tick and advances
// the pattern clock by dt.
func (p *Pattern) Next(dt float32) entity.Input {
	if len(p.steps) == 0 {
		return entity.Input{}
	}
	in := p.steps[p.index].Input

	p.elapsed += dt
	for p.elapsed >= p.steps[p.index].Seconds {
		p.elapsed -= p.steps[p.index].Seconds
		p.index = (p.index + 1) % len(p.steps)
	}
	return in
}

// Reset restarts the pattern.
func (p *Pattern) Reset() {
	p.index = 0
	p.elapsed = 0
}
