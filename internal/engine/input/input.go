// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/paperman/internal/game/controls"
	"github.com/Faultbox/paperman/internal/game/entity"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    string // normalized scancode name
	Width  int
	Height int
}

// Input polls SDL events and tracks which keys are held.
type Input struct {
	events []Event
	held   controls.Held
	keymap controls.Keymap
}

// New creates an input handler for keymap.
func New(keymap controls.Keymap) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(controls.Held),
		keymap: keymap,
	}
}

// Update polls SDL events. Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Key-up events go elsewhere while unfocused.
				clear(i.held)
			}

		case *sdl.KeyboardEvent:
			name := controls.Normalize(sdl.GetScancodeName(e.Keysym.Scancode))
			if e.Type == sdl.KEYDOWN {
				i.held[name] = true
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: name})
				}
			} else if e.Type == sdl.KEYUP {
				delete(i.held, name)
				i.events = append(i.events, Event{Type: EventKeyUp, Key: name})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame.
func (i *Input) IsKeyPressed(name string) bool {
	name = controls.Normalize(name)
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == name {
			return true
		}
	}
	return false
}

// Input returns the movement keys held right now.
func (i *Input) Input() entity.Input {
	return i.keymap.Input(i.held)
}
