package trial

import (
	"fmt"

	"github.com/cory-johannsen/tabletop/internal/game/character"
	"github.com/cory-johannsen/tabletop/internal/game/dice"
)

// Outcome is the result of one mini-game evaluation.
type Outcome struct {
	// Success reports whether the check met the DC. Ties succeed.
	Success bool
	// Skill is the skill that was tested.
	Skill Skill
	// Roll is the full audit trail of the d20 roll.
	Roll dice.RollResult
	// Text is the mini-game's success or failure narrative.
	Text string
	// RewardItem is the granted item ID; nil unless the check succeeded and
	// the mini-game names a reward.
	RewardItem *string
	// Damage is the hit-point cost applied on failure; 0 on success.
	Damage int
}

// String returns a one-line summary including the roll audit.
func (o Outcome) String() string {
	verdict := "failure"
	if o.Success {
		verdict = "success"
	}
	return fmt.Sprintf("%s check: %s (%s)", o.Skill, verdict, o.Roll)
}

// Resolver evaluates mini-game skill checks using an injected dice source.
type Resolver struct {
	src dice.Source
}

// NewResolver returns a Resolver rolling from src.
//
// Precondition: src must be non-nil.
func NewResolver(src dice.Source) *Resolver {
	return &Resolver{src: src}
}

// UsableSkills returns the skills a caller may choose for mg: the required
// skill, plus the alternate when one is defined.
//
// Postcondition: the required skill is always first.
func (r *Resolver) UsableSkills(mg *MiniGame) []Skill {
	skills := []Skill{mg.Skill}
	if mg.AlternateSkill != nil {
		skills = append(skills, *mg.AlternateSkill)
	}
	return skills
}

// Evaluate performs a single skill check of mg for c using the chosen skill:
// one d20 roll plus the character's modifier, compared against the DC. A
// total meeting or exceeding the DC succeeds. Retry and alternate-skill
// selection are the caller's orchestration; this is one roll, one verdict.
//
// On failure the outcome carries mg.FailureDamage; applying it to the
// character is the caller's job.
//
// Precondition: mg and c must be non-nil; skill should come from UsableSkills.
func (r *Resolver) Evaluate(mg *MiniGame, c *character.Character, skill Skill) Outcome {
	roll := dice.D20(c.SkillModifier(string(skill)), r.src)

	if roll.Total() >= mg.DC {
		return Outcome{
			Success:    true,
			Skill:      skill,
			Roll:       roll,
			Text:       mg.SuccessText,
			RewardItem: mg.RewardItem,
		}
	}
	return Outcome{
		Skill:  skill,
		Roll:   roll,
		Text:   mg.FailureText,
		Damage: mg.FailureDamage,
	}
}
