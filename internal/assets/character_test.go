package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/game/entity"
)

func TestParseCharacter(t *testing.T) {
	c, err := ParseCharacter([]byte(minimalCharacter))
	if err != nil {
		t.Fatalf("ParseCharacter failed: %v", err)
	}
	if c.Name != "paperman" || c.Library.Name() != "paperman" {
		t.Errorf("Name = %q, library %q", c.Name, c.Library.Name())
	}

	clip, opts := c.Library.Resolve(entity.AnimIdle)
	if clip.ID != "idle" || clip.Duration != 2*time.Second || opts.Transition != 200*time.Millisecond || !opts.Looped {
		t.Errorf("idle clip = %+v %+v", clip, opts)
	}

	clip, opts = c.Library.Resolve(entity.AnimTurning)
	if clip.ID != "turn180" || opts.Looped || opts.Speed != 1 {
		t.Errorf("turning clip = %+v %+v", clip, opts)
	}
	if c.Library.Has(entity.AnimRunning) {
		t.Error("library has a running clip it was not given")
	}
}

func TestParseCharacterErrors(t *testing.T) {
	_, err := ParseCharacter([]byte("name: x\nclips:\n  walking: {clip: walk}\n"))
	if !errors.Is(err, animation.ErrNoIdleClip) {
		t.Errorf("missing idle error = %v, want ErrNoIdleClip", err)
	}

	if _, err := ParseCharacter([]byte("name: x\nclips:\n  idle: {clip: idle}\n  flying: {clip: fly}\n")); err == nil {
		t.Error("unknown state accepted")
	}
	if _, err := ParseCharacter([]byte("name: x\nclips:\n  idle: {clip: idle, speed: -1}\n")); err == nil {
		t.Error("negative speed accepted")
	}
}

func TestPapermanCharacter(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", CharacterPath("paperman")))
	if err != nil {
		t.Fatalf("reading paperman: %v", err)
	}
	c, err := ParseCharacter(data)
	if err != nil {
		t.Fatalf("ParseCharacter failed: %v", err)
	}
	for _, s := range entity.AnimationStates {
		if !c.Library.Has(s) {
			t.Errorf("paperman has no clip for %v", s)
		}
	}
}
