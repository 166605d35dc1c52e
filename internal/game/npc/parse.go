package npc

import (
	"fmt"

	"github.com/cory-johannsen/tabletop/internal/document"
)

// ParseNPC builds an NPC from a decoded npc record.
//
// Dialogue is read from a "dialogue" mapping; each value may be a plain
// response string or a nested record with response/requires_flag/sets_flag.
// An absent "location" field means the NPC is not placed. A record with no
// id has no safe fallback and yields an error.
//
// Postcondition: on nil error the returned NPC passes Validate.
func ParseNPC(rec document.Record) (*NPC, []string, error) {
	id := rec.Str("id", "")
	if id == "" {
		return nil, nil, fmt.Errorf("npc record has no id")
	}

	n := &NPC{
		ID:       id,
		Name:     rec.Str("name", id),
		Role:     rec.Str("role", ""),
		Voice:    rec.Str("voice", ""),
		Greeting: rec.Str("greeting", ""),
		Dialogue: make(map[string]DialogueEntry),
		Flavor:   rec.StrList("flavor"),
	}

	if rec.Has("location") {
		loc := rec.Str("location", "")
		if loc != "" {
			n.HomeLocation = &loc
		}
	}

	if dialogue, ok := rec.Record("dialogue"); ok {
		for topic, raw := range dialogue {
			switch v := raw.(type) {
			case string:
				n.Dialogue[topic] = DialogueEntry{Response: v}
			case map[string]any:
				entry := document.Record(v)
				n.Dialogue[topic] = DialogueEntry{
					Response:     entry.Str("response", ""),
					RequiresFlag: entry.Str("requires_flag", ""),
					SetsFlag:     entry.Str("sets_flag", ""),
				}
			}
		}
	}

	if err := n.Validate(); err != nil {
		return nil, nil, err
	}
	return n, nil, nil
}
