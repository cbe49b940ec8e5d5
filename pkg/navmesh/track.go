package navmesh

import (
	"errors"
	"sort"

	"github.com/Faultbox/paperman/pkg/math"
)

// ErrEmptyTrack is returned when a track has no points.
var ErrEmptyTrack = errors.New("track has no points")

// Track is a walk line taken from level geometry. Points are flattened to
// the lowest Y of the source, sorted by X and de-duplicated.
type Track struct {
	Layer  int
	points []math.Vec3
}

// NewTrack builds a track from raw points.
func NewTrack(layer int, points []math.Vec3) (*Track, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	minY := points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
	}

	flat := make([]math.Vec3, len(points))
	for i, p := range points {
		flat[i] = math.Vec3{X: p.X, Y: minY, Z: p.Z}
	}
	sort.SliceStable(flat, func(i, j int) bool { return flat[i].X < flat[j].X })

	out := flat[:1]
	for _, p := range flat[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return &Track{Layer: layer, points: out}, nil
}

// First returns the left-most point of the track.
func (t *Track) First() math.Vec3 {
	return t.points[0]
}

// Points returns a copy of the track points.
func (t *Track) Points() []math.Vec3 {
	return append([]math.Vec3(nil), t.points...)
}

// SortTracks orders tracks by layer.
func SortTracks(tracks []*Track) {
	sort.SliceStable(tracks, func(i, j int) bool { return tracks[i].Layer < tracks[j].Layer })
}
