package trial

import (
	"fmt"

	"github.com/cory-johannsen/tabletop/internal/document"
)

// ParseMiniGame builds a MiniGame from a decoded minigame record.
//
// Unrecognized skill tokens are reported as warnings with the documented
// fallback substituted. A record with no id yields an error.
//
// Postcondition: on nil error the returned MiniGame passes Validate.
func ParseMiniGame(rec document.Record) (*MiniGame, []string, error) {
	id := rec.Str("id", "")
	if id == "" {
		return nil, nil, fmt.Errorf("minigame record has no id")
	}

	var warnings []string

	skill, ok := ParseSkill(rec.Str("skill", string(DefaultSkill)))
	if !ok {
		warnings = append(warnings, fmt.Sprintf(
			"minigame %q: unknown skill %q, using %q", id, rec.Str("skill", ""), DefaultSkill))
	}

	mg := &MiniGame{
		ID:            id,
		Name:          rec.Str("name", id),
		Description:   rec.Str("description", ""),
		Skill:         skill,
		DC:            rec.Int("dc", 10),
		AllowRetry:    rec.Bool("allow_retry", false),
		SuccessText:   rec.Str("success_text", ""),
		FailureText:   rec.Str("failure_text", ""),
		FailureDamage: rec.Int("failure_damage", 0),
	}

	if rec.Has("alternate_skill") {
		alt, ok := ParseSkill(rec.Str("alternate_skill", ""))
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"minigame %q: unknown alternate skill %q, using %q", id, rec.Str("alternate_skill", ""), DefaultSkill))
		}
		mg.AlternateSkill = &alt
	}
	if reward := rec.Str("reward_item", ""); reward != "" {
		mg.RewardItem = &reward
	}

	if err := mg.Validate(); err != nil {
		return nil, warnings, err
	}
	return mg, warnings, nil
}

// ParseTrial builds a Trial from a decoded trial record.
//
// A record with no id yields an error.
//
// Postcondition: on nil error the returned Trial passes Validate.
func ParseTrial(rec document.Record) (*Trial, []string, error) {
	id := rec.Str("id", "")
	if id == "" {
		return nil, nil, fmt.Errorf("trial record has no id")
	}

	t := &Trial{
		ID:             id,
		Name:           rec.Str("name", id),
		Description:    rec.Str("description", ""),
		Difficulty:     rec.Str("difficulty", "normal"),
		MiniGames:      rec.StrList("minigames"),
		Prerequisites:  make(map[string]bool),
		CompletionText: rec.Str("completion_text", ""),
	}
	for _, flag := range rec.StrList("prerequisites") {
		t.Prerequisites[flag] = true
	}

	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	return t, nil, nil
}
