package states

import (
	"errors"
	"testing"
)

type stubState struct {
	phase   Phase
	entered int
	exited  int
	updates int
}

func (s *stubState) Phase() Phase            { return s.phase }
func (s *stubState) Enter() error            { s.entered++; return nil }
func (s *stubState) Exit() error             { s.exited++; return nil }
func (s *stubState) Update(dt float64) error { s.updates++; return nil }

func TestCanTransition(t *testing.T) {
	order := []Phase{PhaseNone, PhaseInit, PhaseAssetsLoading, PhaseAssetsLoaded, PhaseGameLoading, PhaseGameRunning}
	for i := 0; i+1 < len(order); i++ {
		if !CanTransition(order[i], order[i+1]) {
			t.Errorf("CanTransition(%v, %v) = false", order[i], order[i+1])
		}
	}

	invalid := [][2]Phase{
		{PhaseNone, PhaseGameRunning},
		{PhaseInit, PhaseGameRunning},
		{PhaseAssetsLoading, PhaseGameLoading},
		{PhaseGameLoading, PhaseAssetsLoaded},
		{PhaseGameRunning, PhaseInit},
		{PhaseGameRunning, PhaseGameRunning},
	}
	for _, tr := range invalid {
		if CanTransition(tr[0], tr[1]) {
			t.Errorf("CanTransition(%v, %v) = true", tr[0], tr[1])
		}
	}
	if !CanTransition(PhaseGameRunning, PhaseAssetsLoading) {
		t.Error("running game cannot reload assets")
	}
}

func TestManagerChange(t *testing.T) {
	m := NewManager()
	if m.Phase() != PhaseNone || m.Running() {
		t.Fatalf("new manager phase %v", m.Phase())
	}

	err := m.Change(&stubState{phase: PhaseGameRunning})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Change(running) error = %v, want ErrInvalidTransition", err)
	}

	initState := &stubState{phase: PhaseInit}
	if err := m.Change(initState); err != nil {
		t.Fatalf("Change(init) failed: %v", err)
	}
	// Validated against the scheduled state.
	loading := &stubState{phase: PhaseAssetsLoading}
	if err := m.Change(loading); err != nil {
		t.Fatalf("Change(loading) after scheduled init failed: %v", err)
	}

	if err := m.Update(0.1); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.Current() != loading || loading.entered != 1 || loading.updates != 1 {
		t.Errorf("current %v entered %d updates %d", m.Phase(), loading.entered, loading.updates)
	}
	if initState.entered != 0 {
		t.Error("replaced scheduled state was entered")
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if loading.exited != 1 || m.Current() != nil {
		t.Errorf("Close: exited %d current %v", loading.exited, m.Current())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseGameRunning.String() != "game-running" || PhaseInit.String() != "init" {
		t.Error("unexpected phase names")
	}
}
