package campaign

import (
	"sort"

	"github.com/cory-johannsen/tabletop/internal/game/location"
)

// validatorSource is the diagnostic source tag for cross-reference findings.
const validatorSource = "cross-reference"

// Validate walks every by-identifier reference in the campaign and reports
// one diagnostic per dangling reference, identifying the source entity, the
// relationship, and the missing target. Dangling references are reported but
// never removed: campaign content comes from a single trusted author, and
// partial playability beats refusal to start.
//
// Validate is pure and idempotent; it is safe to re-run after any content
// mutation.
func Validate(c *Campaign) []Diagnostic {
	var diags []Diagnostic
	report := func(format string, args ...any) {
		diags = append(diags, warning(validatorSource, format, args...))
	}

	if c.StartingLocation != "" {
		if _, ok := c.locations[c.StartingLocation]; !ok {
			report("campaign %q: starting location %q does not exist", c.ID, c.StartingLocation)
		}
	}

	// Trial prerequisite flags are opaque strings set by dialogue and
	// location content; a prerequisite nothing in the campaign can set is
	// unreachable and worth a finding.
	settable := settableFlags(c)

	for _, loc := range c.Locations() {
		dirs := make([]string, 0, len(loc.Exits))
		for dir := range loc.Exits {
			dirs = append(dirs, string(dir))
		}
		sort.Strings(dirs)
		for _, dir := range dirs {
			target := loc.Exits[location.Direction(dir)]
			if _, ok := c.locations[target]; !ok {
				report("location %q: exit %q targets unknown location %q", loc.ID, dir, target)
			}
		}
		for _, npcID := range loc.NPCs {
			if _, ok := c.npcs[npcID]; !ok {
				report("location %q: references unknown npc %q", loc.ID, npcID)
			}
		}
		for _, itemID := range loc.Items {
			if !c.items.Has(itemID) {
				report("location %q: ground item %q does not exist", loc.ID, itemID)
			}
		}
	}

	for _, n := range c.NPCs() {
		if n.HomeLocation != nil {
			if _, ok := c.locations[*n.HomeLocation]; !ok {
				report("npc %q: home location %q does not exist", n.ID, *n.HomeLocation)
			}
		}
	}

	for _, mg := range c.MiniGames() {
		if mg.RewardItem != nil && !c.items.Has(*mg.RewardItem) {
			report("minigame %q: reward item %q does not exist", mg.ID, *mg.RewardItem)
		}
	}

	for _, t := range c.Trials() {
		for _, mgID := range t.MiniGames {
			if _, ok := c.minigames[mgID]; !ok {
				report("trial %q: references unknown minigame %q", t.ID, mgID)
			}
		}
		prereqs := make([]string, 0, len(t.Prerequisites))
		for flag := range t.Prerequisites {
			prereqs = append(prereqs, flag)
		}
		sort.Strings(prereqs)
		for _, flag := range prereqs {
			if !settable[flag] {
				report("trial %q: prerequisite flag %q is never set by any content", t.ID, flag)
			}
		}
	}

	return diags
}

// settableFlags collects every flag the campaign content can set: dialogue
// sets_flag entries and location flag sets.
func settableFlags(c *Campaign) map[string]bool {
	flags := make(map[string]bool)
	for _, n := range c.NPCs() {
		for _, entry := range n.Dialogue {
			if entry.SetsFlag != "" {
				flags[entry.SetsFlag] = true
			}
		}
	}
	for _, loc := range c.Locations() {
		for flag := range loc.Flags {
			flags[flag] = true
		}
	}
	return flags
}
