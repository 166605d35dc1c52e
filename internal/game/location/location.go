// Package location provides the campaign map model: locations, exits, and
// directions.
package location

import "fmt"

// Direction represents a compass direction or named exit.
type Direction string

// Standard compass directions and vertical movements.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
)

// StandardDirections contains all standard compass and vertical directions.
var StandardDirections = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
	Up, Down,
}

// IsStandard reports whether d is one of the ten standard directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Opposite returns the opposite of a standard direction.
// For custom directions, it returns an empty string.
//
// Precondition: d should be a standard direction for a meaningful result.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	case Up:
		return Down
	case Down:
		return Up
	default:
		return ""
	}
}

// FlagLocked is the reserved location flag that additionally toggles the
// boolean lock state.
const FlagLocked = "locked"

// Location represents one place in the campaign. It is mutated only during
// load; the initial snapshot it represents is handed to the game-state layer,
// which owns all play-time mutation.
type Location struct {
	// ID uniquely identifies this location within the campaign.
	ID string
	// Name is the short display name.
	Name string
	// Description is the full location description.
	Description string
	// ReadAloud is the boxed text read verbatim when the party first arrives.
	ReadAloud string
	// Exits maps a direction to the target location ID.
	Exits map[Direction]string
	// NPCs lists the IDs of NPCs present at load time.
	NPCs []string
	// Items lists the IDs of items on the ground at load time.
	Items []string
	// Flags is the set of string flags on this location.
	Flags map[string]bool
	// Locked mirrors the reserved "locked" flag.
	Locked bool
}

// Exit returns the target location ID for dir, if an exit exists.
//
// Postcondition: Returns (target, true) if found, or ("", false) otherwise.
func (l *Location) Exit(dir Direction) (string, bool) {
	target, ok := l.Exits[dir]
	return target, ok
}

// HasFlag reports whether the named flag is set on this location.
func (l *Location) HasFlag(flag string) bool {
	return l.Flags[flag]
}

// Validate checks location invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (l *Location) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("location: id must not be empty")
	}
	if l.Name == "" {
		return fmt.Errorf("location %q: name must not be empty", l.ID)
	}
	for dir, target := range l.Exits {
		if target == "" {
			return fmt.Errorf("location %q: exit %q has empty target", l.ID, dir)
		}
	}
	return nil
}
