// Package controls maps named keys to character input. Hosts translate their
// own key events to names ("Left", "A", "Space") so one keymap serves the
// window and the terminal alike.
package controls

import (
	"fmt"
	"strings"
	"time"

	"github.com/Faultbox/paperman/internal/game/entity"
)

// Keymap lists the key names bound to each direction.
type Keymap struct {
	Left  []string
	Right []string
}

// ParseKeymap builds a keymap from comma separated key names.
func ParseKeymap(left, right string) (Keymap, error) {
	l := splitNames(left)
	r := splitNames(right)
	if len(l) == 0 {
		return Keymap{}, fmt.Errorf("keymap: no key bound to left")
	}
	if len(r) == 0 {
		return Keymap{}, fmt.Errorf("keymap: no key bound to right")
	}
	for _, name := range l {
		for _, other := range r {
			if name == other {
				return Keymap{}, fmt.Errorf("keymap: %q bound to both directions", name)
			}
		}
	}
	return Keymap{Left: l, Right: r}, nil
}

// DefaultKeymap binds the arrow keys and A/D.
func DefaultKeymap() Keymap {
	return Keymap{Left: []string{"left", "a"}, Right: []string{"right", "d"}}
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := Normalize(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Normalize returns the canonical form of a key name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Held is the set of keys currently down, by normalized name.
type Held map[string]bool

// Input returns the character input for held keys.
func (k Keymap) Input(held Held) entity.Input {
	return entity.Input{
		Left:  anyHeld(held, k.Left),
		Right: anyHeld(held, k.Right),
	}
}

func anyHeld(held Held, names []string) bool {
	for _, n := range names {
		if held[n] {
			return true
		}
	}
	return false
}

// Latch emulates held keys for hosts that only report presses. A key counts
// as held until Hold has passed since its last press.
type Latch struct {
	Hold    time.Duration
	pressed map[string]time.Time
}

// DefaultHold covers the initial delay of terminal key repeat.
const DefaultHold = 550 * time.Millisecond

// NewLatch creates a latch with the given hold time.
func NewLatch(hold time.Duration) *Latch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Latch{Hold: hold, pressed: make(map[string]time.Time)}
}

// Press records a key press at now.
func (l *Latch) Press(name string, now time.Time) {
	l.pressed[Normalize(name)] = now
}

// Release forgets a key.
func (l *Latch) Release(name string) {
	delete(l.pressed, Normalize(name))
}

// Held returns the keys still held at now and drops expired ones.
func (l *Latch) Held(now time.Time) Held {
	held := make(Held, len(l.pressed))
	for name, at := range l.pressed {
		if now.Sub(at) < l.Hold {
			held[name] = true
		} else {
			delete(l.pressed, name)
		}
	}
	return held
}
