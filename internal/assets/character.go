package assets

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/game/entity"
)

// CharacterPath returns the asset name of a character.
func CharacterPath(name string) string {
	return "characters/" + name + ".yaml"
}

// CharacterFile is the on-disk character format. Clips are keyed by
// animation state name.
type CharacterFile struct {
	Name  string              `yaml:"name"`
	Clips map[string]ClipFile `yaml:"clips"`
}

// ClipFile is one clip table entry.
type ClipFile struct {
	Clip       string        `yaml:"clip"`
	Looped     bool          `yaml:"looped"`
	Transition time.Duration `yaml:"transition"`
	Speed      float32       `yaml:"speed"`
	Duration   time.Duration `yaml:"duration"`
}

// Character is a loaded character definition.
type Character struct {
	Name    string
	Library *animation.Library
}

// ParseCharacter decodes a character and validates its clip table.
func ParseCharacter(data []byte) (*Character, error) {
	var f CharacterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing character: %w", err)
	}

	clips := make(map[entity.AnimationState]animation.Clip, len(f.Clips))
	for key, cf := range f.Clips {
		state, err := entity.ParseAnimationState(key)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", f.Name, err)
		}
		if cf.Speed < 0 {
			return nil, fmt.Errorf("character %q: clip %q has negative speed", f.Name, cf.Clip)
		}
		clips[state] = animation.Clip{
			ID:         animation.ClipID(cf.Clip),
			Looped:     cf.Looped,
			Transition: cf.Transition,
			Speed:      cf.Speed,
			Duration:   cf.Duration,
		}
	}

	lib, err := animation.NewLibrary(f.Name, clips)
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", f.Name, err)
	}
	return &Character{Name: f.Name, Library: lib}, nil
}
