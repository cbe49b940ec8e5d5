package assets

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/game/world"
	"github.com/Faultbox/paperman/internal/logger"
)

// Loader reads assets in the background and tracks which are still
// pending. Failures of every asset are collected into one error.
type Loader struct {
	manager   *Manager
	tolerance float64

	mu         sync.Mutex
	pending    map[string]struct{}
	levels     map[string]*world.Level
	characters map[string]*Character
	err        error
	wg         sync.WaitGroup
}

// NewLoader creates a loader reading through manager. tolerance is the
// default navmesh tolerance for levels.
func NewLoader(manager *Manager, tolerance float64) *Loader {
	return &Loader{
		manager:    manager,
		tolerance:  tolerance,
		pending:    make(map[string]struct{}),
		levels:     make(map[string]*world.Level),
		characters: make(map[string]*Character),
	}
}

// LoadLevel starts loading a level.
func (l *Loader) LoadLevel(ctx context.Context, name string) {
	l.start(ctx, LevelPath(name), func(data []byte) error {
		level, err := ParseLevel(data, l.tolerance)
		if err != nil {
			return err
		}
		l.mu.Lock()
		l.levels[name] = level
		l.mu.Unlock()
		return nil
	})
}

// LoadCharacter starts loading a character.
func (l *Loader) LoadCharacter(ctx context.Context, name string) {
	l.start(ctx, CharacterPath(name), func(data []byte) error {
		c, err := ParseCharacter(data)
		if err != nil {
			return err
		}
		l.mu.Lock()
		l.characters[name] = c
		l.mu.Unlock()
		return nil
	})
}

func (l *Loader) start(ctx context.Context, path string, decode func([]byte) error) {
	l.mu.Lock()
	if _, busy := l.pending[path]; busy {
		l.mu.Unlock()
		return
	}
	l.pending[path] = struct{}{}
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		err := l.load(ctx, path, decode)

		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.pending, path)
		if err != nil {
			l.err = multierr.Append(l.err, fmt.Errorf("loading %s: %w", path, err))
			return
		}
		logger.Debug("asset loaded", zap.String("path", path))
	}()
}

func (l *Loader) load(ctx context.Context, path string, decode func([]byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.manager.Invalidate(path)
	data, err := l.manager.Load(path)
	if err != nil {
		return err
	}
	return decode(data)
}

// Pending returns the assets still loading, sorted.
func (l *Loader) Pending() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.pending))
	for p := range l.pending {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Done reports whether nothing is pending.
func (l *Loader) Done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending) == 0
}

// Wait blocks until all started loads finish and returns Err.
func (l *Loader) Wait() error {
	l.wg.Wait()
	return l.Err()
}

// Err returns every failure so far, or nil.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Errors splits Err into individual failures.
func (l *Loader) Errors() []error {
	return multierr.Errors(l.Err())
}

// Level returns a loaded level.
func (l *Loader) Level(name string) (*world.Level, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	level, ok := l.levels[name]
	return level, ok
}

// Character returns a loaded character.
func (l *Loader) Character(name string) (*Character, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.characters[name]
	return c, ok
}
