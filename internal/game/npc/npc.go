// Package npc provides non-player character definitions and dialogue data.
package npc

import "fmt"

// DialogueEntry is one topic's response, with optional flag gating. The flag
// strings are opaque to the content core; evaluating and setting them is the
// game-state layer's job.
type DialogueEntry struct {
	// Response is the NPC's reply for the topic.
	Response string
	// RequiresFlag, when non-empty, names the flag that must be set before
	// this entry unlocks.
	RequiresFlag string
	// SetsFlag, when non-empty, names the flag set after this entry plays.
	SetsFlag string
}

// NPC defines a non-player character loaded from content.
type NPC struct {
	// ID uniquely identifies this NPC within the campaign.
	ID string
	// Name is the display name.
	Name string
	// Role is the NPC's function in the story (e.g. "innkeeper").
	Role string
	// Voice describes voice and personality for the narrator.
	Voice string
	// Greeting is the line spoken when the party first addresses the NPC.
	Greeting string
	// HomeLocation is the ID of the location the NPC starts in. Nil means
	// the NPC is not placed anywhere.
	HomeLocation *string
	// Dialogue maps a topic to its response entry.
	Dialogue map[string]DialogueEntry
	// Flavor is the ordered list of idle flavor lines.
	Flavor []string
}

// Placed reports whether the NPC has a home location.
func (n *NPC) Placed() bool {
	return n.HomeLocation != nil
}

// Topic returns the dialogue entry for topic, if one exists.
//
// Postcondition: Returns (entry, true) if found, or (DialogueEntry{}, false) otherwise.
func (n *NPC) Topic(topic string) (DialogueEntry, bool) {
	e, ok := n.Dialogue[topic]
	return e, ok
}

// Validate checks NPC invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (n *NPC) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("npc: id must not be empty")
	}
	if n.Name == "" {
		return fmt.Errorf("npc %q: name must not be empty", n.ID)
	}
	return nil
}
