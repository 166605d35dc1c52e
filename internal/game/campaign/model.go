// Package campaign orchestrates content loading into validated,
// cross-referenced registries and exposes the read-only Campaign facade the
// UI, game-state, and combat layers consume.
package campaign

import (
	"sort"

	"github.com/cory-johannsen/tabletop/internal/game/bestiary"
	"github.com/cory-johannsen/tabletop/internal/game/item"
	"github.com/cory-johannsen/tabletop/internal/game/location"
	"github.com/cory-johannsen/tabletop/internal/game/npc"
	"github.com/cory-johannsen/tabletop/internal/game/trial"
)

// Campaign owns all loaded content for one adventure. It is built once by
// the Loader and treated as immutable afterward; the exposed views are
// copies or lookup results, never the internal maps.
type Campaign struct {
	ID               string
	Name             string
	Description      string
	Author           string
	Version          string
	StartingLocation string

	locations map[string]*location.Location
	npcs      map[string]*npc.NPC
	monsters  *bestiary.Registry
	items     *item.Registry
	trials    map[string]*trial.Trial
	minigames map[string]*trial.MiniGame

	diagnostics []Diagnostic
	fullyLoaded bool
}

// Location returns the location for the given id and whether it was found.
func (c *Campaign) Location(id string) (*location.Location, bool) {
	l, ok := c.locations[id]
	return l, ok
}

// Start returns the campaign's starting location, if it resolves.
func (c *Campaign) Start() (*location.Location, bool) {
	return c.Location(c.StartingLocation)
}

// NPC returns the NPC for the given id and whether it was found.
func (c *Campaign) NPC(id string) (*npc.NPC, bool) {
	n, ok := c.npcs[id]
	return n, ok
}

// Trial returns the trial for the given id and whether it was found.
func (c *Campaign) Trial(id string) (*trial.Trial, bool) {
	t, ok := c.trials[id]
	return t, ok
}

// MiniGame returns the mini-game for the given id and whether it was found.
func (c *Campaign) MiniGame(id string) (*trial.MiniGame, bool) {
	m, ok := c.minigames[id]
	return m, ok
}

// Monsters returns the monster template registry, which also mints live
// instances for the combat layer.
func (c *Campaign) Monsters() *bestiary.Registry {
	return c.monsters
}

// Items returns the item registry.
func (c *Campaign) Items() *item.Registry {
	return c.items
}

// Locations returns all locations sorted by ID.
//
// Postcondition: the returned slice is a fresh copy.
func (c *Campaign) Locations() []*location.Location {
	out := make([]*location.Location, 0, len(c.locations))
	for _, l := range c.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NPCs returns all NPCs sorted by ID.
//
// Postcondition: the returned slice is a fresh copy.
func (c *Campaign) NPCs() []*npc.NPC {
	out := make([]*npc.NPC, 0, len(c.npcs))
	for _, n := range c.npcs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Trials returns all trials sorted by ID.
//
// Postcondition: the returned slice is a fresh copy.
func (c *Campaign) Trials() []*trial.Trial {
	out := make([]*trial.Trial, 0, len(c.trials))
	for _, t := range c.trials {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MiniGames returns all mini-games sorted by ID.
//
// Postcondition: the returned slice is a fresh copy.
func (c *Campaign) MiniGames() []*trial.MiniGame {
	out := make([]*trial.MiniGame, 0, len(c.minigames))
	for _, m := range c.minigames {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Diagnostics returns the ordered list of load and validation findings.
//
// Postcondition: the returned slice is a fresh copy.
func (c *Campaign) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// FullyLoaded reports whether loading finished without a single diagnostic.
// A caller may start a degraded campaign when this is false; the policy
// decision is theirs.
func (c *Campaign) FullyLoaded() bool {
	return c.fullyLoaded
}
