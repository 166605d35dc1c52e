// Package trial provides trials, their mini-game puzzles, and the
// skill-check resolver that evaluates a mini-game attempt.
package trial

import (
	"fmt"
	"strings"
)

// Skill names an ability or proficiency a mini-game can test.
type Skill string

// The skill vocabulary.
const (
	SkillAthletics     Skill = "athletics"
	SkillAcrobatics    Skill = "acrobatics"
	SkillStealth       Skill = "stealth"
	SkillPerception    Skill = "perception"
	SkillInvestigation Skill = "investigation"
	SkillArcana        Skill = "arcana"
	SkillHistory       Skill = "history"
	SkillPersuasion    Skill = "persuasion"
	SkillDeception     Skill = "deception"
	SkillIntimidation  Skill = "intimidation"
	SkillSurvival      Skill = "survival"
	SkillLockpicking   Skill = "lockpicking"
)

// DefaultSkill is the fallback substituted for unrecognized skill tokens.
const DefaultSkill = SkillPerception

var validSkills = map[Skill]bool{
	SkillAthletics: true, SkillAcrobatics: true, SkillStealth: true,
	SkillPerception: true, SkillInvestigation: true, SkillArcana: true,
	SkillHistory: true, SkillPersuasion: true, SkillDeception: true,
	SkillIntimidation: true, SkillSurvival: true, SkillLockpicking: true,
}

// ParseSkill matches a case-insensitive token against the skill vocabulary.
//
// Postcondition: ok is true iff token names a known skill; on failure the
// returned Skill is DefaultSkill.
func ParseSkill(token string) (Skill, bool) {
	s := Skill(strings.ToLower(strings.TrimSpace(token)))
	if validSkills[s] {
		return s, true
	}
	return DefaultSkill, false
}

// MiniGame defines one puzzle encounter resolved by a skill check.
type MiniGame struct {
	ID          string
	Name        string
	Description string
	// Skill is the primary skill tested.
	Skill Skill
	// AlternateSkill, when non-nil, may be attempted instead of Skill.
	AlternateSkill *Skill
	// DC is the difficulty class the check total must meet or exceed.
	DC int
	// AllowRetry reports whether a failed attempt may be retried.
	AllowRetry bool
	// RewardItem, when non-nil, is the item ID granted on success.
	RewardItem *string
	// SuccessText and FailureText are the narrative outcomes.
	SuccessText string
	FailureText string
	// FailureDamage is the hit-point cost of a failed attempt.
	FailureDamage int
}

// Validate checks mini-game invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (m *MiniGame) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("minigame: id must not be empty")
	}
	if m.DC < 1 {
		return fmt.Errorf("minigame %q: dc must be >= 1", m.ID)
	}
	if m.FailureDamage < 0 {
		return fmt.Errorf("minigame %q: failure_damage must be >= 0", m.ID)
	}
	return nil
}

// Trial defines an ordered gauntlet of mini-games with prerequisite flags.
type Trial struct {
	ID          string
	Name        string
	Description string
	Difficulty  string
	// MiniGames is the ordered list of member mini-game IDs.
	MiniGames []string
	// Prerequisites is the set of flags that must be set before the trial
	// opens. The flag strings are opaque to the content core.
	Prerequisites map[string]bool
	// CompletionText is read when the whole trial is cleared.
	CompletionText string
}

// Validate checks trial invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (t *Trial) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("trial: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("trial %q: name must not be empty", t.ID)
	}
	return nil
}
