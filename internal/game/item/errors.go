package item

import "errors"

// Rule-violation failures signaled by the effect/attunement engine. These
// indicate caller errors the caller must not proceed past, unlike the
// informational outcomes which are ordinary results carrying text.
var (
	// ErrNilCharacter is returned when an operation requires a character and
	// none was supplied.
	ErrNilCharacter = errors.New("item: character must not be nil")
	// ErrAlreadyAttuned is returned when attuning a character to an item
	// already attuned to someone else.
	ErrAlreadyAttuned = errors.New("item: already attuned to another character")
	// ErrAttunementRefused is returned when the attunement requirement
	// predicate rejects the character.
	ErrAttunementRefused = errors.New("item: character does not meet the attunement requirement")
	// ErrNotAttuned is returned when a gated item is used by a character it
	// is not attuned to.
	ErrNotAttuned = errors.New("item: item must be attuned to the user")
	// ErrEffectIndex is returned for an out-of-range effect index.
	ErrEffectIndex = errors.New("item: effect index out of range")
)
