package animation

import "time"

// ClipPlayer tracks playback time of one clip.
type ClipPlayer struct {
	clip    Clip
	opts    PlayOptions
	playing bool
	elapsed time.Duration
	plays   int
}

// NewClipPlayer returns a player with nothing playing.
func NewClipPlayer() *ClipPlayer {
	return &ClipPlayer{}
}

// PlayClip starts clip from the beginning.
func (p *ClipPlayer) PlayClip(clip Clip, opts PlayOptions) {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	p.clip = clip
	p.opts = opts
	p.playing = true
	p.elapsed = 0
	p.plays++
}

// Advance moves clip time forward by dt seconds.
func (p *ClipPlayer) Advance(dt float32) {
	if !p.playing || dt <= 0 {
		return
	}
	p.elapsed += time.Duration(float64(dt) * float64(p.opts.Speed) * float64(time.Second))
}

// IsFinished reports whether a one-shot clip reached its end.
// Looped clips never finish.
func (p *ClipPlayer) IsFinished() bool {
	return p.playing && !p.opts.Looped && p.elapsed >= p.clip.Duration
}

// Current returns the playing clip.
func (p *ClipPlayer) Current() (ClipID, bool) {
	return p.clip.ID, p.playing
}

// Looped reports whether the current clip repeats.
func (p *ClipPlayer) Looped() bool {
	return p.opts.Looped
}

// Progress returns the position within the current clip in [0, 1].
func (p *ClipPlayer) Progress() float32 {
	if !p.playing || p.clip.Duration <= 0 {
		return 0
	}
	if p.opts.Looped {
		return float32(p.elapsed%p.clip.Duration) / float32(p.clip.Duration)
	}
	return min(float32(p.elapsed)/float32(p.clip.Duration), 1)
}

// Plays returns how many clips have been started.
func (p *ClipPlayer) Plays() int {
	return p.plays
}
