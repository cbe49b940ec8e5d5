package world

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/engine/animation"
	"github.com/Faultbox/paperman/internal/engine/character"
	"github.com/Faultbox/paperman/internal/game/entity"
	"github.com/Faultbox/paperman/internal/game/events"
	"github.com/Faultbox/paperman/internal/logger"
	"github.com/Faultbox/paperman/pkg/math"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// ErrSpawnOutsideNavMesh is returned when a character would start off the mesh.
var ErrSpawnOutsideNavMesh = errors.New("spawn position is not on the navmesh")

// Frame is the input to one tick.
type Frame struct {
	// Running is false outside the running game phase; the tick is skipped.
	Running bool
	Inputs  map[entity.Handle]entity.Input
	DT      float32
}

// advancer is implemented by players that keep their own clock.
type advancer interface {
	Advance(dt float32)
}

// published is the last state sent to the publisher for one character.
type published struct {
	position  math.Vec3
	facing    entity.Direction
	animation entity.AnimationState
	clip      animation.ClipID
	sent      bool
}

// Options configures a Simulation.
type Options struct {
	Params    character.Params
	Library   *animation.Library
	Publisher Publisher
	// NewPlayer creates the animation player for a spawned character.
	// Defaults to animation.NewClipPlayer.
	NewPlayer func(h entity.Handle) animation.Player
}

// Simulation owns the characters of one level and advances them in a
// fixed order every tick.
type Simulation struct {
	table     *entity.Table
	mesh      *navmesh.NavMesh
	params    character.Params
	library   *animation.Library
	publisher Publisher
	newPlayer func(entity.Handle) animation.Player

	players   map[entity.Handle]animation.Player
	scripts   map[entity.Handle]Script
	published map[entity.Handle]*published
	messages  events.Queue[events.TurningAnimationFinished]

	ticks uint64
	log   *zap.Logger
}

// NewSimulation creates an empty simulation on mesh.
func NewSimulation(mesh *navmesh.NavMesh, opts Options) *Simulation {
	if opts.Library == nil {
		opts.Library = animation.DefaultLibrary()
	}
	if opts.NewPlayer == nil {
		opts.NewPlayer = func(entity.Handle) animation.Player { return animation.NewClipPlayer() }
	}
	return &Simulation{
		table:     entity.NewTable(),
		mesh:      mesh,
		params:    opts.Params,
		library:   opts.Library,
		publisher: opts.Publisher,
		newPlayer: opts.NewPlayer,
		players:   make(map[entity.Handle]animation.Player),
		scripts:   make(map[entity.Handle]Script),
		published: make(map[entity.Handle]*published),
		log:       logger.Named("world"),
	}
}

// Spawn adds a character at position. The position must be on the mesh.
func (s *Simulation) Spawn(name string, position math.Vec3, facing entity.Direction) (entity.Handle, error) {
	return s.spawn(entity.NewCharacter(name, position, facing), false)
}

// SpawnPlayer adds the locally controlled character.
func (s *Simulation) SpawnPlayer(name string, position math.Vec3, facing entity.Direction) (entity.Handle, error) {
	return s.spawn(entity.NewCharacter(name, position, facing), true)
}

// SpawnScripted adds a character driven by script.
func (s *Simulation) SpawnScripted(name string, position math.Vec3, facing entity.Direction, script Script) (entity.Handle, error) {
	h, err := s.Spawn(name, position, facing)
	if err != nil {
		return 0, err
	}
	s.scripts[h] = script
	return h, nil
}

func (s *Simulation) spawn(c *entity.Character, player bool) (entity.Handle, error) {
	if s.mesh == nil || !s.mesh.Contains(c.Position) {
		return 0, fmt.Errorf("spawning %q at %v: %w", c.Name, c.Position, ErrSpawnOutsideNavMesh)
	}

	var h entity.Handle
	if player {
		h = s.table.AddPlayer(c)
	} else {
		h = s.table.Add(c)
	}
	s.players[h] = s.newPlayer(h)
	s.published[h] = &published{}
	s.play(c, c.Animation)

	s.log.Debug("spawned character",
		zap.Uint32("handle", uint32(h)),
		zap.String("name", c.Name),
		zap.Stringer("facing", c.Facing))
	return h, nil
}

// Populate spawns the level's player and NPCs.
func (s *Simulation) Populate(level *Level, playerName string) (entity.Handle, error) {
	spawn, err := level.SpawnPoint()
	if err != nil {
		return 0, fmt.Errorf("level %q: %w", level.Name, err)
	}
	h, err := s.SpawnPlayer(playerName, spawn, level.Facing)
	if err != nil {
		return 0, fmt.Errorf("level %q: %w", level.Name, err)
	}
	for _, npc := range level.NPCs {
		if _, err := s.SpawnScripted(npc.Name, npc.Position, npc.Facing, NewPattern(npc.Pattern)); err != nil {
			return 0, fmt.Errorf("level %q: %w", level.Name, err)
		}
	}
	return h, nil
}

// Remove deletes a character and its player.
func (s *Simulation) Remove(h entity.Handle) {
	s.table.Remove(h)
	delete(s.players, h)
	delete(s.scripts, h)
	delete(s.published, h)
}

// SetNavMesh replaces the mesh between ticks. Characters are not moved;
// those left off the new mesh are reported and stay put until input
// brings them back.
func (s *Simulation) SetNavMesh(mesh *navmesh.NavMesh) []entity.Handle {
	s.mesh = mesh
	var stranded []entity.Handle
	for _, h := range s.table.Handles() {
		c := s.table.Get(h)
		if !mesh.Contains(c.Position) {
			stranded = append(stranded, h)
			s.log.Warn("character outside reloaded navmesh",
				zap.Uint32("handle", uint32(h)),
				zap.String("name", c.Name))
		}
	}
	return stranded
}

// SetParams replaces the movement constants.
func (s *Simulation) SetParams(p character.Params) {
	s.params = p
}

// Tick advances every character by one step.
//
// Order: controller state, animation selection, turn completion from
// finished clips, movement, then publishing and player clocks. The message
// list is empty again when Tick returns.
func (s *Simulation) Tick(f Frame) {
	if !f.Running || f.DT <= 0 {
		return
	}
	s.ticks++
	handles := s.table.Handles()

	for _, h := range handles {
		c := s.table.Get(h)
		in := s.input(h, f)
		c.State = character.Advance(c.State, c.Facing, in.Heading())
		s.animate(c)
	}

	for _, h := range handles {
		c := s.table.Get(h)
		if c.Animation == entity.AnimTurning && s.players[h].IsFinished() {
			s.messages.Push(events.TurningAnimationFinished{Handle: h, State: c.Animation})
		}
	}
	for _, msg := range s.messages.Drain() {
		c := s.table.Get(msg.Handle)
		if c == nil || msg.State != entity.AnimTurning {
			continue
		}
		if character.CompleteTurn(c) {
			s.animate(c)
		}
	}

	for _, h := range handles {
		c := s.table.Get(h)
		step := character.Integrate(c, s.mesh, s.params, f.DT)
		if step.Blocked {
			s.log.Debug("move rejected",
				zap.Uint32("handle", uint32(h)),
				zap.Float32("x", step.Candidate.X),
				zap.Float32("y", step.Candidate.Y),
				zap.Float32("z", step.Candidate.Z))
		}
	}

	for _, h := range handles {
		s.publish(s.table.Get(h))
		if a, ok := s.players[h].(advancer); ok {
			a.Advance(f.DT)
		}
	}
	s.messages.Clear()
}

func (s *Simulation) input(h entity.Handle, f Frame) entity.Input {
	if in, ok := f.Inputs[h]; ok {
		return in
	}
	if script, ok := s.scripts[h]; ok {
		return script.Next(f.DT)
	}
	return entity.Input{}
}

// animate requests a new clip when the derived animation differs from the
// current one.
func (s *Simulation) animate(c *entity.Character) {
	next := character.DeriveAnimation(c.State, c.Speed(), s.params.RunThreshold)
	if next == c.Animation {
		return
	}
	s.play(c, next)
}

func (s *Simulation) play(c *entity.Character, state entity.AnimationState) {
	c.Animation = state
	clip, opts := s.library.Resolve(state)
	s.players[c.Handle].PlayClip(clip, opts)
}

func (s *Simulation) publish(c *entity.Character) {
	if s.publisher == nil {
		return
	}
	last := s.published[c.Handle]

	if !last.sent || last.position != c.Position || last.facing != c.Facing {
		s.publisher.PublishTransform(c.Handle, c.Position, c.Facing, character.Orientation(c.Facing))
	}
	clip, _ := s.players[c.Handle].Current()
	if !last.sent || last.animation != c.Animation || last.clip != clip {
		s.publisher.PublishAnimation(c.Handle, c.Animation, clip)
	}

	*last = published{
		position:  c.Position,
		facing:    c.Facing,
		animation: c.Animation,
		clip:      clip,
		sent:      true,
	}
}

// Character returns the record for h, or nil.
func (s *Simulation) Character(h entity.Handle) *entity.Character {
	return s.table.Get(h)
}

// Characters returns copies of all records in handle order.
func (s *Simulation) Characters() []entity.Character {
	handles := s.table.Handles()
	out := make([]entity.Character, 0, len(handles))
	for _, h := range handles {
		out = append(out, *s.table.Get(h))
	}
	return out
}

// Player returns the local player handle.
func (s *Simulation) Player() (entity.Handle, bool) {
	return s.table.Player()
}

// AnimationPlayer returns the animation player of h.
func (s *Simulation) AnimationPlayer(h entity.Handle) animation.Player {
	return s.players[h]
}

// NavMesh returns the active mesh.
func (s *Simulation) NavMesh() *navmesh.NavMesh {
	return s.mesh
}

// Ticks returns the number of ticks run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// PendingMessages returns the size of the message list. It is zero
// between ticks.
func (s *Simulation) PendingMessages() int {
	return s.messages.Len()
}
