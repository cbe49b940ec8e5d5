// Package states implements the application phases that lead from startup
// to a running level.
package states

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a phase change the sequence does
// not allow.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the application phase.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseInit
	PhaseAssetsLoading
	PhaseAssetsLoaded
	PhaseGameLoading
	PhaseGameRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseInit:
		return "init"
	case PhaseAssetsLoading:
		return "assets-loading"
	case PhaseAssetsLoaded:
		return "assets-loaded"
	case PhaseGameLoading:
		return "game-loading"
	case PhaseGameRunning:
		return "game-running"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// CanTransition reports whether from may be followed by to. Phases run in
// order; a running game may go back to loading for a level change.
func CanTransition(from, to Phase) bool {
	switch from {
	case PhaseNone:
		return to == PhaseInit
	case PhaseInit:
		return to == PhaseAssetsLoading
	case PhaseAssetsLoading:
		return to == PhaseAssetsLoaded
	case PhaseAssetsLoaded:
		return to == PhaseGameLoading
	case PhaseGameLoading:
		return to == PhaseGameRunning
	case PhaseGameRunning:
		return to == PhaseAssetsLoading
	}
	return false
}

// State is one application phase.
type State interface {
	// Phase identifies the state.
	Phase() Phase

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error
}

// Manager manages state transitions. Changes are applied at the start of
// the next Update.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Phase returns the current phase.
func (m *Manager) Phase() Phase {
	if m.current == nil {
		return PhaseNone
	}
	return m.current.Phase()
}

// Running reports whether the game is in the running phase.
func (m *Manager) Running() bool {
	return m.Phase() == PhaseGameRunning
}

// Change schedules a state change. It fails when the change does not follow
// the current (or already scheduled) phase.
func (m *Manager) Change(next State) error {
	from := m.Phase()
	if m.next != nil {
		from = m.next.Phase()
	}
	if !CanTransition(from, next.Phase()) {
		return fmt.Errorf("%s -> %s: %w", from, next.Phase(), ErrInvalidTransition)
	}
	m.next = next
	return nil
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return fmt.Errorf("leaving %s: %w", m.current.Phase(), err)
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return fmt.Errorf("entering %s: %w", m.current.Phase(), err)
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Close exits the current state.
func (m *Manager) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	m.next = nil
	return err
}
