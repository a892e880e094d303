// Package stats computes combat and domain statistics from a character's
// attributes and skills. Every function here is pure.
package stats

import "github.com/cory-johannsen/tactics/internal/game/character"

// DerivedStats holds the combat-facing values computed from a character sheet.
type DerivedStats struct {
	Vitality   int `json:"vitality" yaml:"vitality"`
	Guard      int `json:"guard" yaml:"guard"`
	Evasion    int `json:"evasion" yaml:"evasion"`
	Reaction   int `json:"reaction" yaml:"reaction"`
	Will       int `json:"will" yaml:"will"`
	Movement   int `json:"movement" yaml:"movement"`
	Tension    int `json:"tension" yaml:"tension"`
	Fortitude  int `json:"fortitude" yaml:"fortitude"`
	Conviction int `json:"conviction" yaml:"conviction"`
	Influence  int `json:"influence" yaml:"influence"`
}

// baseMovement is the movement every unit has before reflexes and athletics.
const baseMovement = 2

// CalculateDerived computes DerivedStats.
//
// Precondition: a must be normalized; skills may be nil.
// Postcondition: Every field of the result is >= 0.
func CalculateDerived(a character.Attributes, skills character.SkillMap) DerivedStats {
	return DerivedStats{
		Vitality:   nonNegative(2*a.Body + a.Determination + skills.Level(character.SkillResistance)),
		Guard:      nonNegative(half(a.Body+a.Coordination) + skills.Level(character.SkillResistance)),
		Evasion:    nonNegative(a.Reflexes + skills.Level(character.SkillEvasion)),
		Reaction:   nonNegative(half(a.Reflexes+a.Intuition) + skills.Level(character.SkillPerception)),
		Will:       nonNegative(a.Determination + a.Intuition),
		Movement:   nonNegative(baseMovement + half(a.Reflexes) + half(skills.Level(character.SkillAthletics))),
		Tension:    nonNegative(2 * a.Determination),
		Fortitude:  nonNegative(a.Body + a.Determination),
		Conviction: nonNegative(a.Determination + a.Charisma),
		Influence:  nonNegative(a.Charisma + skills.Level(character.SkillPersuasion)),
	}
}

// half is floor division by two that also floors negative inputs.
func half(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
