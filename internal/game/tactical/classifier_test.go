package tactical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
)

func draft(attrs map[string]int, skills character.SkillMap) *character.Draft {
	return &character.Draft{ID: "c1", Name: "Test", Attributes: attrs, Skills: skills}
}

func TestDetermineUnitType_DefaultsToInfantry(t *testing.T) {
	assert.Equal(t, tactical.Infantry, tactical.DetermineUnitType(draft(nil, character.SkillMap{}), false))
}

func TestDetermineUnitType_CommanderOverridesEverything(t *testing.T) {
	d := draft(map[string]int{"reasoning": 6, "intuition": 6}, character.SkillMap{"medicina": 5, "tiro": 5})
	assert.Equal(t, tactical.Commander, tactical.DetermineUnitType(d, true))
}

func TestDetermineUnitType_SupportBySkills(t *testing.T) {
	assert.Equal(t, tactical.Support, tactical.DetermineUnitType(draft(nil, character.SkillMap{"medicina": 4}), false))
	assert.Equal(t, tactical.Support, tactical.DetermineUnitType(draft(nil, character.SkillMap{"medicina": 2, "persuasao": 2}), false))
	assert.Equal(t, tactical.Infantry, tactical.DetermineUnitType(draft(nil, character.SkillMap{"medicina": 3}), false))
}

func TestDetermineUnitType_SupportByMentalMargin(t *testing.T) {
	// mental 3+3=6, physical 1+1=2: margin 4 > 2
	assert.Equal(t, tactical.Support, tactical.DetermineUnitType(draft(map[string]int{"reasoning": 3, "intuition": 3}, nil), false))
	// mental 3+2=5, physical 2: margin 3 > 2
	assert.Equal(t, tactical.Support, tactical.DetermineUnitType(draft(map[string]int{"reasoning": 3, "intuition": 2}, nil), false))
	// margin exactly 2 is not enough
	assert.Equal(t, tactical.Infantry, tactical.DetermineUnitType(draft(map[string]int{"reasoning": 2, "intuition": 2}, nil), false))
}

func TestDetermineUnitType_SupportBeatsRanged(t *testing.T) {
	d := draft(nil, character.SkillMap{"medicina": 4, "tiro": 5})
	assert.Equal(t, tactical.Support, tactical.DetermineUnitType(d, false))
}

func TestDetermineUnitType_Ranged(t *testing.T) {
	assert.Equal(t, tactical.Ranged, tactical.DetermineUnitType(draft(nil, character.SkillMap{"tiro": 4}), false))
	assert.Equal(t, tactical.Ranged, tactical.DetermineUnitType(draft(nil, character.SkillMap{"tiro": 2, "artilharia": 1}), false))
}

func TestDetermineUnitType_RangedNeedsMajorityAndThreshold(t *testing.T) {
	// ranged 2 < threshold
	assert.Equal(t, tactical.Infantry, tactical.DetermineUnitType(draft(nil, character.SkillMap{"tiro": 2}), false))
	// ranged 3 == melee 3
	assert.Equal(t, tactical.Infantry, tactical.DetermineUnitType(draft(nil, character.SkillMap{"tiro": 3, "luta": 1, "laminas": 1, "resistencia": 1}), false))
}

func TestDetermineUnitType_Cavalry(t *testing.T) {
	d := draft(map[string]int{"reflexes": 4}, character.SkillMap{"atletismo": 2, "esquiva": 2})
	assert.Equal(t, tactical.Cavalry, tactical.DetermineUnitType(d, false))
}

func TestDetermineUnitType_CavalryNeedsReflexes(t *testing.T) {
	d := draft(map[string]int{"reflexes": 3}, character.SkillMap{"atletismo": 3, "esquiva": 3})
	assert.Equal(t, tactical.Infantry, tactical.DetermineUnitType(d, false))
}

func TestDetermineUnitType_RangedBeatsCavalry(t *testing.T) {
	d := draft(map[string]int{"reflexes": 5}, character.SkillMap{"atletismo": 4, "tiro": 3})
	assert.Equal(t, tactical.Ranged, tactical.DetermineUnitType(d, false))
}

// Property: the classifier is a pure function of its inputs.
func TestProperty_DetermineUnitTypeDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		attrs := map[string]int{}
		for _, name := range character.AttributeNames {
			attrs[name] = rapid.IntRange(1, 6).Draw(rt, name)
		}
		skills := character.SkillMap{}
		for _, id := range []string{"medicina", "persuasao", "tiro", "artilharia", "luta", "resistencia", "laminas", "atletismo", "esquiva"} {
			skills[id] = rapid.IntRange(0, 5).Draw(rt, id)
		}
		asCommander := rapid.Bool().Draw(rt, "asCommander")
		d := draft(attrs, skills)

		first := tactical.DetermineUnitType(d, asCommander)
		for i := 0; i < 3; i++ {
			if got := tactical.DetermineUnitType(d, asCommander); got != first {
				rt.Fatalf("classification changed: %s then %s", first, got)
			}
		}
		if asCommander && first != tactical.Commander {
			rt.Fatalf("asCommander produced %s", first)
		}
		if !asCommander && first == tactical.Commander {
			rt.Fatal("commander assigned without asCommander")
		}
	})
}
