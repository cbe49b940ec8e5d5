package entity

import "sort"

// Handle identifies a character in a Table. Handles are never reused.
type Handle uint32

// Table owns the character records of a simulation.
type Table struct {
	characters map[Handle]*Character
	player     Handle
	hasPlayer  bool
	next       Handle
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		characters: make(map[Handle]*Character),
		next:       1,
	}
}

// Add inserts c, assigns its handle and returns it.
func (t *Table) Add(c *Character) Handle {
	h := t.next
	t.next++
	c.Handle = h
	t.characters[h] = c
	return h
}

// AddPlayer inserts c and marks it as the locally controlled character.
func (t *Table) AddPlayer(c *Character) Handle {
	h := t.Add(c)
	t.player = h
	t.hasPlayer = true
	return h
}

// Remove deletes a character.
func (t *Table) Remove(h Handle) {
	delete(t.characters, h)
	if t.hasPlayer && t.player == h {
		t.hasPlayer = false
	}
}

// Get returns the character for h or nil.
func (t *Table) Get(h Handle) *Character {
	return t.characters[h]
}

// Player returns the local player handle.
func (t *Table) Player() (Handle, bool) {
	return t.player, t.hasPlayer
}

// Handles returns all handles in ascending order.
func (t *Table) Handles() []Handle {
	out := make([]Handle, 0, len(t.characters))
	for h := range t.characters {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns the number of characters.
func (t *Table) Count() int {
	return len(t.characters)
}

// Clear removes every character.
func (t *Table) Clear() {
	t.characters = make(map[Handle]*Character)
	t.hasPlayer = false
}
