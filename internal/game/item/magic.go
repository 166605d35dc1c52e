package item

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tabletop/internal/game/character"
)

// AttunementReq is the predicate token gating attunement: "" (anyone),
// "spellcaster", or a class ID such as "wizard".
type AttunementReq string

// met reports whether c satisfies the requirement.
func (r AttunementReq) met(c *character.Character) bool {
	switch {
	case r == "":
		return true
	case r == "spellcaster":
		return c.Spellcaster
	default:
		return strings.EqualFold(string(r), c.Class)
	}
}

// MagicItem composes a base Item with an ordered list of effects and the
// attunement state machine.
//
// Invariant: at most one character is attuned at a time.
type MagicItem struct {
	Item
	// Effects are invoked in insertion order.
	Effects []*Effect
	// RequiresAttunement gates active effects behind attunement.
	RequiresAttunement bool
	// Requirement is the attunement predicate; ignored unless
	// RequiresAttunement is true.
	Requirement AttunementReq

	// attunedTo is the attuned character's name; empty means unattuned.
	attunedTo string
}

// AttunedTo returns the attuned character's name and whether the item is
// currently attuned.
func (m *MagicItem) AttunedTo() (string, bool) {
	return m.attunedTo, m.attunedTo != ""
}

// Attune binds the item to c.
//
// Postcondition: on nil error the returned text describes the outcome.
// Attuning an item that needs no attunement, or re-attuning the same
// character, is informational, not an error. Attuning while bound to another
// character fails with ErrAlreadyAttuned; an unmet requirement fails with
// ErrAttunementRefused; a nil character fails with ErrNilCharacter. State is
// unchanged on every failure.
func (m *MagicItem) Attune(c *character.Character) (string, error) {
	if c == nil {
		return "", ErrNilCharacter
	}
	if !m.RequiresAttunement {
		return fmt.Sprintf("%s does not require attunement.", m.Name), nil
	}
	if m.attunedTo == c.Name {
		return fmt.Sprintf("%s is already attuned to %s.", m.Name, c.Name), nil
	}
	if m.attunedTo != "" {
		return "", fmt.Errorf("%w: %s is bound to %s", ErrAlreadyAttuned, m.Name, m.attunedTo)
	}
	if !m.Requirement.met(c) {
		return "", fmt.Errorf("%w: %s requires %q", ErrAttunementRefused, m.Name, m.Requirement)
	}
	m.attunedTo = c.Name
	return fmt.Sprintf("%s attunes to %s.", c.Name, m.Name), nil
}

// Unattune releases the attunement binding.
//
// Postcondition: the item is unattuned. Calling on an unattuned item is
// informational, never an error.
func (m *MagicItem) Unattune() string {
	if m.attunedTo == "" {
		return fmt.Sprintf("%s is not attuned to anyone.", m.Name)
	}
	prev := m.attunedTo
	m.attunedTo = ""
	return fmt.Sprintf("%s breaks attunement with %s.", prev, m.Name)
}

// CanUse reports whether c may invoke the item's active effects: either the
// item needs no attunement, or it is attuned to exactly c.
func (m *MagicItem) CanUse(c *character.Character) bool {
	if c == nil {
		return false
	}
	if !m.RequiresAttunement {
		return true
	}
	return m.attunedTo == c.Name
}

// Use invokes every currently-usable active effect in insertion order,
// consuming one charge from each limited effect.
//
// Postcondition: returns the composite result text. When no active effect is
// usable (all depleted, or only passive effects) the result is informational
// text with a nil error. A gated item used by a non-attuned character fails
// with ErrNotAttuned; a nil character fails with ErrNilCharacter.
func (m *MagicItem) Use(c *character.Character) (string, error) {
	if c == nil {
		return "", ErrNilCharacter
	}
	if !m.CanUse(c) {
		return "", fmt.Errorf("%w: %s", ErrNotAttuned, m.Name)
	}

	var lines []string
	for _, e := range m.Effects {
		if e.Usable() {
			lines = append(lines, e.invoke(m.Name, c))
		}
	}
	if len(lines) == 0 {
		return fmt.Sprintf("%s has nothing usable right now.", m.Name), nil
	}
	return strings.Join(lines, "\n"), nil
}

// UseEffectAt invokes the single active effect at index under the same
// gating rule as Use.
//
// Postcondition: an out-of-range index fails with ErrEffectIndex; a
// depleted or passive effect yields informational text with a nil error.
func (m *MagicItem) UseEffectAt(c *character.Character, index int) (string, error) {
	if c == nil {
		return "", ErrNilCharacter
	}
	if !m.CanUse(c) {
		return "", fmt.Errorf("%w: %s", ErrNotAttuned, m.Name)
	}
	if index < 0 || index >= len(m.Effects) {
		return "", fmt.Errorf("%w: %d of %d", ErrEffectIndex, index, len(m.Effects))
	}
	e := m.Effects[index]
	if !e.Usable() {
		return fmt.Sprintf("%s cannot be used right now.", e.Name), nil
	}
	return e.invoke(m.Name, c), nil
}

// UseEffectNamed invokes the single active effect whose name matches
// (case-insensitive) under the same gating rule as Use.
//
// Postcondition: an unmatched name is an ordinary player-typo path and
// yields informational text with a nil error, not a failure.
func (m *MagicItem) UseEffectNamed(c *character.Character, name string) (string, error) {
	if c == nil {
		return "", ErrNilCharacter
	}
	if !m.CanUse(c) {
		return "", fmt.Errorf("%w: %s", ErrNotAttuned, m.Name)
	}
	for _, e := range m.Effects {
		if strings.EqualFold(e.Name, name) {
			if !e.Usable() {
				return fmt.Sprintf("%s cannot be used right now.", e.Name), nil
			}
			return e.invoke(m.Name, c), nil
		}
	}
	return fmt.Sprintf("%s has no effect named %q.", m.Name, name), nil
}

// ResetDaily restores full charges to every daily-cadence effect.
// Effects with a different cadence are untouched.
func (m *MagicItem) ResetDaily() {
	for _, e := range m.Effects {
		e.resetOn(ResetDaily)
	}
}

// ResetLongRest restores full charges to every long-rest-cadence effect.
// Effects with a different cadence are untouched.
func (m *MagicItem) ResetLongRest() {
	for _, e := range m.Effects {
		e.resetOn(ResetLongRest)
	}
}

// PassiveEffects returns the always-active effects contributing to the
// owner's derived stats.
func (m *MagicItem) PassiveEffects() []*Effect {
	var out []*Effect
	for _, e := range m.Effects {
		if e.Passive {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy for template-style reuse. All effects and flags
// are duplicated; the copy always starts unattuned regardless of the
// source's state, because attunement is a per-instance relationship.
func (m *MagicItem) Clone() *MagicItem {
	dup := &MagicItem{
		Item:               m.Item,
		Effects:            make([]*Effect, 0, len(m.Effects)),
		RequiresAttunement: m.RequiresAttunement,
		Requirement:        m.Requirement,
	}
	for _, e := range m.Effects {
		dup.Effects = append(dup.Effects, e.Clone())
	}
	return dup
}

// Validate checks that the MagicItem and all its effects satisfy their
// invariants.
func (m *MagicItem) Validate() error {
	if err := m.Item.Validate(); err != nil {
		return err
	}
	for _, e := range m.Effects {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("magic item %q: %w", m.ID, err)
		}
	}
	return nil
}
