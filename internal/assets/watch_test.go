package assets

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "levels/unit.yaml", unitLevel)
	m := newManager(t, dir)

	w, err := WatchLevels(m)
	if err != nil {
		t.Fatalf("WatchLevels failed: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "levels/notes.txt", "ignored")
	path := writeFile(t, dir, "levels/unit.yaml", unitLevel+"\n")

	timeout := time.After(2 * time.Second)
	for {
		select {
		case got := <-w.Events:
			if filepath.Ext(got) != ".yaml" {
				t.Fatalf("event for non-yaml file %s", got)
			}
			name, ok := m.NameOf(got)
			if !ok {
				t.Fatalf("NameOf(%s) failed", got)
			}
			if level, ok := LevelName(name); !ok || level != "unit" {
				t.Errorf("LevelName(%s) = %q, %v, want unit", name, level, ok)
			}
			if got != path {
				t.Errorf("event path = %s, want %s", got, path)
			}
			return
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-timeout:
			t.Fatal("no event within 2s")
		}
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events still open after Close")
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"levels/building.yaml", "building", true},
		{"levels/building.yml", "building", true},
		{"characters/paperman.yaml", "", false},
		{"levels/readme.txt", "", false},
	}
	for _, tt := range tests {
		got, ok := LevelName(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LevelName(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
