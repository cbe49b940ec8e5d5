package assets

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// LevelPath returns the asset name of a level.
func LevelPath(name string) string {
	return "levels/" + name + ".yaml"
}

// LevelFile is the on-disk level format.
type LevelFile struct {
	Name    string      `yaml:"name"`
	NavMesh NavMeshFile `yaml:"navmesh"`
	Player  []float32   `yaml:"player,omitempty"`
	Facing  string      `yaml:"facing,omitempty"`
	Tracks  []TrackFile `yaml:"tracks,omitempty"`
	NPCs    []NPCFile   `yaml:"npcs,omitempty"`
}

// NavMeshFile holds flat geometry buffers. Tolerance overrides the
// configured value when set.
type NavMeshFile struct {
	Tolerance float64   `yaml:"tolerance,omitempty"`
	Vertices  []float32 `yaml:"vertices"`
	Indices   []uint32  `yaml:"indices"`
}

// TrackFile is a walk line.
type TrackFile struct {
	Layer  int         `yaml:"layer"`
	Points [][]float32 `yaml:"points"`
}

// NPCFile places a scripted character.
type NPCFile struct {
	Name     string        `yaml:"name"`
	Position []float32     `yaml:"position"`
	Facing   string        `yaml:"facing,omitempty"`
	Pattern  []PatternFile `yaml:"pattern,omitempty"`
}

// PatternFile is one step of an NPC input pattern.
type PatternFile struct {
	Key     string  `yaml:"key"`
	Seconds float32 `yaml:"seconds"`
}

// ParseLevel decodes a level and builds its navmesh. tolerance is used
// unless the file sets its own.
func ParseLevel(data []byte, tolerance float64) (*world.Level, error) {
	var f LevelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing level: %w", err)
	}
	return f.Build(tolerance)
}

// Build converts the file into a runtime level.
func (f *LevelFile) Build(tolerance float64) (*world.Level, error) {
	if f.NavMesh.Tolerance > 0 {
		tolerance = f.NavMesh.Tolerance
	}
	mesh, err := navmesh.Build(f.NavMesh.Vertices, f.NavMesh.Indices, navmesh.WithTolerance(tolerance))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", f.Name, err)
	}

	facing, err := entity.ParseDirection(f.Facing)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", f.Name, err)
	}

	level := &world.Level{
		Name:   f.Name,
		Mesh:   mesh,
		Facing: facing,
	}

	if f.Player != nil {
		p, err := vec3(f.Player)
		if err != nil {
			return nil, fmt.Errorf("level %q: player: %w", f.Name, err)
		}
		level.Player = &p
	}

	for i, tf := range f.Tracks {
		points := make([]math.Vec3, 0, len(tf.Points))
		for _, raw := range tf.Points {
			p, err := vec3(raw)
			if err != nil {
				return nil, fmt.Errorf("level %q: track %d: %w", f.Name, i, err)
			}
			points = append(points, p)
		}
		track, err := navmesh.NewTrack(tf.Layer, points)
		if err != nil {
			return nil, fmt.Errorf("level %q: track %d: %w", f.Name, i, err)
		}
		level.Tracks = append(level.Tracks, track)
	}

	for _, nf := range f.NPCs {
		npc, err := nf.build()
		if err != nil {
			return nil, fmt.Errorf("level %q: npc %q: %w", f.Name, nf.Name, err)
		}
		level.NPCs = append(level.NPCs, npc)
	}
	return level, nil
}

func (nf NPCFile) build() (world.NPC, error) {
	pos, err := vec3(nf.Position)
	if err != nil {
		return world.NPC{}, err
	}
	facing, err := entity.ParseDirection(nf.Facing)
	if err != nil {
		return world.NPC{}, err
	}
	steps := make([]world.PatternStep, 0, len(nf.Pattern))
	for _, pf := range nf.Pattern {
		in, err := world.ParsePatternKey(pf.Key)
		if err != nil {
			return world.NPC{}, err
		}
		steps = append(steps, world.PatternStep{Input: in, Seconds: pf.Seconds})
	}
	return world.NPC{Name: nf.Name, Position: pos, Facing: facing, Pattern: steps}, nil
}

func vec3(v []float32) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("want 3 coordinates, got %d", len(v))
	}
	return math.Vec3FromSlice(v), nil
}
