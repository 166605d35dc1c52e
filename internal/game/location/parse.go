package location

import (
	"fmt"

	"github.com/cory-johannsen/tabletop/internal/document"
)

// ParseLocation builds a Location from a decoded location record.
//
// Exits are read from an "exits" mapping of direction → target ID. Flags are
// read from a "flags" string list; the reserved "locked" flag also sets the
// Locked bool. A record with no id has no safe fallback and yields an error.
//
// Postcondition: on nil error the returned Location passes Validate.
func ParseLocation(rec document.Record) (*Location, []string, error) {
	id := rec.Str("id", "")
	if id == "" {
		return nil, nil, fmt.Errorf("location record has no id")
	}

	loc := &Location{
		ID:          id,
		Name:        rec.Str("name", id),
		Description: rec.Str("description", ""),
		ReadAloud:   rec.Str("read_aloud", ""),
		Exits:       make(map[Direction]string),
		NPCs:        rec.StrList("npcs"),
		Items:       rec.StrList("items"),
		Flags:       make(map[string]bool),
	}

	for dir, target := range rec.StrMap("exits") {
		loc.Exits[Direction(dir)] = target
	}

	for _, flag := range rec.StrList("flags") {
		loc.Flags[flag] = true
	}
	loc.Locked = loc.Flags[FlagLocked]

	if err := loc.Validate(); err != nil {
		return nil, nil, err
	}
	return loc, nil, nil
}
