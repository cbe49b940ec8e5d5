package assets

import (
	"os"
	"path/filepath"
	"testing"
)

const unitLevel = `
name: unit
navmesh:
  tolerance: 0.001
  vertices: [0, 0, 0, 1, 0, 0, 0, 0, 1]
  indices: [0, 1, 2]
player: [0.25, 0, 0.25]
facing: left
tracks:
  - layer: 0
    points: [[0.8, 0, 0.1], [0.1, 0.2, 0.1]]
npcs:
  - name: walker
    position: [0.5, 0, 0.1]
    pattern:
      - {key: right, seconds: 1}
      - {key: none, seconds: 0.5}
`

const minimalCharacter = `
name: paperman
clips:
  idle: {clip: idle, looped: true, transition: 200ms, speed: 1, duration: 2s}
  turning: {clip: turn180, duration: 500ms}
`

// writeFile creates name below dir, making parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newManager(t *testing.T, dirs ...string) *Manager {
	t.Helper()
	m := NewManager()
	for _, d := range dirs {
		if err := m.AddDir(d); err != nil {
			t.Fatalf("AddDir(%s) failed: %v", d, err)
		}
	}
	return m
}
