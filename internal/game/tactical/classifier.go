package tactical

import "github.com/cory-johannsen/tactics/internal/game/character"

// Classification thresholds. The order of checks in DetermineUnitType is
// the tie-break policy.
const (
	supportSkillThreshold  = 4
	mentalMarginThreshold  = 2
	rangedSkillThreshold   = 3
	mobilitySkillThreshold = 4
	cavalryReflexes        = 4
)

// DetermineUnitType assigns exactly one role to d. The first matching rule wins:
// commander, support, ranged, cavalry, then infantry.
//
// Precondition: d must be non-nil.
// Postcondition: Returns the same value for the same inputs.
func DetermineUnitType(d *character.Draft, asCommander bool) UnitType {
	if asCommander {
		return Commander
	}

	a := character.Normalize(d.Attributes)
	s := d.SkillLevels()

	supportSkills := s.Sum(character.SkillMedicine, character.SkillPersuasion)
	physical := a.Body + a.Reflexes
	mental := a.Reasoning + a.Intuition
	if supportSkills >= supportSkillThreshold || mental-physical > mentalMarginThreshold {
		return Support
	}

	ranged := s.Sum(character.SkillShooting, character.SkillArtillery)
	melee := s.Sum(character.SkillFighting, character.SkillResistance, character.SkillBlades)
	if ranged > melee && ranged >= rangedSkillThreshold {
		return Ranged
	}

	mobility := s.Sum(character.SkillAthletics, character.SkillEvasion)
	if mobility >= mobilitySkillThreshold && a.Reflexes >= cavalryReflexes {
		return Cavalry
	}

	return Infantry
}
