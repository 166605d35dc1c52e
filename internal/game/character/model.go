// Package character defines the minimal character model the content core
// needs: identity, class, spellcasting capability, and skill modifiers.
// Character creation and progression belong to the excluded wizard layer.
package character

// AbilityScores holds the six core ability score values for a character.
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Modifier returns the ability modifier for a given score: (score - 10) / 2.
func Modifier(score int) int {
	return (score - 10) / 2
}

// Character represents a player character as seen by the rule engines:
// attunement predicates read Class and Spellcaster, the skill-check resolver
// reads Skills.
type Character struct {
	Name  string
	Class string // class ID, e.g. "wizard"
	Level int

	Abilities AbilityScores
	// Spellcaster reports whether the character can cast spells; attunement
	// predicates such as "spellcaster" gate on it.
	Spellcaster bool
	// Skills maps a lowercase skill token to its total check modifier.
	Skills map[string]int

	MaxHP     int
	CurrentHP int
}

// SkillModifier returns the character's modifier for the named skill.
// Unknown or untrained skills contribute zero.
func (c *Character) SkillModifier(skill string) int {
	return c.Skills[skill]
}

// TakeDamage reduces CurrentHP by amount, flooring at zero.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHP >= 0.
func (c *Character) TakeDamage(amount int) {
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}
