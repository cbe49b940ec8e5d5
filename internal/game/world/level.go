// Package world runs the character simulation on a loaded level.
package world

import (
	"errors"

	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// ErrNoSpawn is returned by a level with neither a player marker nor a track.
var ErrNoSpawn = errors.New("level has no player marker or track")

// Level is a loaded level ready to populate a simulation.
type Level struct {
	Name   string
	Mesh   *navmesh.NavMesh
	Player *math.Vec3
	Facing entity.Direction
	Tracks []*navmesh.Track
	NPCs   []NPC
}

// NPC is a scripted character placed by the level.
type NPC struct {
	Name     string
	Position math.Vec3
	Facing   entity.Direction
	Pattern  []PatternStep
}

// SpawnPoint returns the player marker, or the start of the lowest-layer
// track when the level has no marker.
func (l *Level) SpawnPoint() (math.Vec3, error) {
	if l.Player != nil {
		return *l.Player, nil
	}
	if len(l.Tracks) > 0 {
		tracks := append([]*navmesh.Track(nil), l.Tracks...)
		navmesh.SortTracks(tracks)
		return tracks[0].First(), nil
	}
	return math.Vec3{}, ErrNoSpawn
}
