package tactical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tactics/internal/game/cards"
	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/stats"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
	"github.com/cory-johannsen/tactics/internal/pkg/idgen"
)

func newConverter() *tactical.Converter {
	return tactical.NewConverter(idgen.NewSequential("id"), nil)
}

func fullAttributes(v int) map[string]int {
	attrs := map[string]int{}
	for _, name := range character.AttributeNames {
		attrs[name] = v
	}
	return attrs
}

func TestConvert_DefaultCharacter(t *testing.T) {
	d := &character.Draft{ID: "c1", Name: "Recruit", FactionID: "north"}
	res := newConverter().Convert(d, tactical.DefaultOptions())

	u := res.Unit
	assert.Equal(t, "id_1", u.ID)
	assert.Equal(t, "Recruit", u.Name)
	assert.Equal(t, tactical.Infantry, u.Type)
	assert.Equal(t, "player", u.TeamID)
	assert.Equal(t, 3, u.HP)
	assert.Equal(t, u.HP, u.MaxHP)
	assert.Equal(t, 1, u.Defense)
	assert.Equal(t, 1, u.Evasion)
	assert.Equal(t, 2, u.Speed)
	assert.Equal(t, 1, u.Initiative)
	assert.Equal(t, 2, u.Morale)
	assert.Equal(t, u.Morale, u.MaxMorale)
	assert.Equal(t, 0, u.Stress)
	assert.Equal(t, 2, u.MaxStress)
	assert.Equal(t, tactical.Position{}, u.Position)
	assert.True(t, u.IsActive)
	assert.False(t, u.HasActed)
	assert.False(t, u.IsCommander)
	assert.Nil(t, u.Command)
	assert.Nil(t, u.Strategy)
	assert.Nil(t, u.Influence)
	assert.Equal(t, "c1", u.CharacterID)
	assert.Equal(t, "north", u.FactionID)
	assert.Equal(t, character.ThemeAkashic, u.Theme)

	require.Len(t, res.Cards, 1)
	assert.Equal(t, "Basic Attack", res.Cards[0].Name)
	assert.Equal(t, u.ID, res.Cards[0].UnitID)

	assert.Equal(t, []string{"HP too low (3); unit may fall quickly"}, res.Warnings)
}

func TestConvert_AsCommander(t *testing.T) {
	attrs := fullAttributes(3)
	d := &character.Draft{ID: "c1", Name: "Marshal", Attributes: attrs, Skills: character.SkillMap{"lideranca": 2, "tatica": 1, "persuasao": 1}}
	opts := tactical.DefaultOptions()
	opts.AsCommander = true
	res := newConverter().Convert(d, opts)

	u := res.Unit
	assert.Equal(t, tactical.Commander, u.Type)
	assert.True(t, u.IsCommander)
	require.NotNil(t, u.Command)
	require.NotNil(t, u.Strategy)
	require.NotNil(t, u.Influence)
	assert.Equal(t, 5, *u.Command)   // (3+3)/2 + 2
	assert.Equal(t, 4, *u.Strategy)  // (3+3)/2 + 1
	assert.Equal(t, 4, *u.Influence) // 3 + 1
	assert.Empty(t, res.Warnings)
}

func TestConvert_LowCommandWarning(t *testing.T) {
	opts := tactical.DefaultOptions()
	opts.AsCommander = true
	res := newConverter().Convert(&character.Draft{Name: "Green"}, opts)
	assert.Contains(t, res.Warnings, "Low command (1) for a commander")
}

func TestConvert_ArmorBonusRequiresEquipment(t *testing.T) {
	d := &character.Draft{Name: "Knight", Attributes: fullAttributes(2), ArmorID: "plate"}

	with := newConverter().Convert(d, tactical.DefaultOptions())
	assert.Equal(t, 4, with.Unit.Defense) // guard 2 + armor 2

	opts := tactical.DefaultOptions()
	opts.IncludeEquipment = false
	without := newConverter().Convert(d, opts)
	assert.Equal(t, 2, without.Unit.Defense)

	d.ArmorID = ""
	bare := newConverter().Convert(d, tactical.DefaultOptions())
	assert.Equal(t, 2, bare.Unit.Defense)
}

func TestConvert_NoCardsWhenDisabled(t *testing.T) {
	opts := tactical.DefaultOptions()
	opts.GenerateCards = false
	res := newConverter().Convert(&character.Draft{Name: "Quiet", Skills: character.SkillMap{"luta": 3}}, opts)
	assert.NotNil(t, res.Cards)
	assert.Empty(t, res.Cards)
	assert.NotContains(t, res.Warnings, "no combat cards generated")
}

func TestConvert_CustomTeamAndTheme(t *testing.T) {
	opts := tactical.DefaultOptions()
	opts.TeamID = "enemy"
	res := newConverter().Convert(&character.Draft{Name: "Raider", Theme: "scifi"}, opts)
	assert.Equal(t, "enemy", res.Unit.TeamID)
	assert.Equal(t, character.ThemeSciFi, res.Unit.Theme)
}

func TestConvert_EmptyTeamFallsBackToPlayer(t *testing.T) {
	res := newConverter().Convert(&character.Draft{Name: "X"}, tactical.Options{GenerateCards: true})
	assert.Equal(t, tactical.DefaultTeamID, res.Unit.TeamID)
}

func TestConvert_SkillCardsReferenceUnit(t *testing.T) {
	d := &character.Draft{Name: "Scout", Attributes: fullAttributes(2), Skills: character.SkillMap{"tiro": 4, "furtividade": 3}}
	res := newConverter().Convert(d, tactical.DefaultOptions())

	assert.Equal(t, tactical.Ranged, res.Unit.Type)
	require.Len(t, res.Cards, 2)
	for _, c := range res.Cards {
		assert.Equal(t, res.Unit.ID, c.UnitID)
	}
}

func TestConvert_DoesNotMutateDraft(t *testing.T) {
	d := &character.Draft{Name: "Stable", Attributes: map[string]int{"body": 3}}
	newConverter().Convert(d, tactical.DefaultOptions())
	assert.Equal(t, map[string]int{"body": 3}, d.Attributes)
	assert.Nil(t, d.Skills)
}

func TestConvert_LogsWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := tactical.NewConverter(idgen.NewSequential("u"), zap.New(core))
	c.Convert(&character.Draft{Name: "Frail"}, tactical.DefaultOptions())

	assert.Equal(t, 1, logs.FilterMessage("character converted").Len())
	warn := logs.FilterMessage("conversion warning").All()
	require.Len(t, warn, 1)
	assert.Equal(t, "Frail", warn[0].ContextMap()["character"])
}

func TestNewConverter_DefaultsToUUIDs(t *testing.T) {
	c := tactical.NewConverter(nil, nil)
	a := c.Convert(&character.Draft{Name: "A"}, tactical.DefaultOptions())
	b := c.Convert(&character.Draft{Name: "A"}, tactical.DefaultOptions())
	assert.NotEqual(t, a.Unit.ID, b.Unit.ID)
	assert.Len(t, a.Unit.ID, 36)
}

func TestMapStats_CommanderAptitude(t *testing.T) {
	d := stats.DerivedStats{Vitality: 8, Guard: 3, Conviction: 4, Influence: 2}
	assert.True(t, tactical.MapStats(d, stats.RegencyStats{Command: 4}, false).IsCommander)
	assert.True(t, tactical.MapStats(d, stats.RegencyStats{Strategy: 4}, false).IsCommander)
	assert.False(t, tactical.MapStats(d, stats.RegencyStats{Command: 3, Strategy: 3}, false).IsCommander)

	m := tactical.MapStats(d, stats.RegencyStats{}, true)
	assert.Equal(t, 8, m.HP)
	assert.Equal(t, 5, m.Defense)
	assert.Equal(t, 4, m.Morale)
}

// Property: fresh units start at full HP and morale, and commander fields
// track the AsCommander option.
func TestProperty_ConvertInvariants(t *testing.T) {
	conv := newConverter()
	rapid.Check(t, func(rt *rapid.T) {
		attrs := map[string]int{}
		for _, name := range character.AttributeNames {
			if rapid.Bool().Draw(rt, "has_"+name) {
				attrs[name] = rapid.IntRange(1, 6).Draw(rt, name)
			}
		}
		skills := character.SkillMap{}
		for _, id := range []string{"luta", "tiro", "medicina", "lideranca", "esquiva", "furtividade", "ocultismo"} {
			skills[id] = rapid.IntRange(0, 5).Draw(rt, id)
		}
		opts := tactical.DefaultOptions()
		opts.AsCommander = rapid.Bool().Draw(rt, "asCommander")

		res := conv.Convert(&character.Draft{Name: "P", Attributes: attrs, Skills: skills}, opts)
		u := res.Unit
		if u.HP != u.MaxHP || u.Morale != u.MaxMorale {
			rt.Fatalf("unit not at full strength: hp %d/%d morale %d/%d", u.HP, u.MaxHP, u.Morale, u.MaxMorale)
		}
		if u.IsCommander != opts.AsCommander || (u.Type == tactical.Commander) != opts.AsCommander {
			rt.Fatalf("commander flag mismatch: %v type %s", u.IsCommander, u.Type)
		}
		hasFields := u.Command != nil && u.Strategy != nil && u.Influence != nil
		noFields := u.Command == nil && u.Strategy == nil && u.Influence == nil
		if opts.AsCommander && !hasFields || !opts.AsCommander && !noFields {
			rt.Fatal("commander fields do not match IsCommander")
		}
		if len(res.Cards) == 0 {
			rt.Fatal("no cards")
		}
		for _, c := range res.Cards {
			if c.CurrentCooldown != 0 || len(c.Effects) == 0 {
				rt.Fatalf("bad card %+v", c)
			}
		}
		for _, w := range res.Warnings {
			if w == "no combat cards generated" {
				rt.Fatal("fallback card should prevent the empty-deck warning")
			}
		}
	})
}

func TestConvert_CourageVirtueCard(t *testing.T) {
	d := &character.Draft{Name: "Bold", StartingVirtue: character.VirtueCourage, Skills: character.SkillMap{"luta": 2}}
	res := newConverter().Convert(d, tactical.DefaultOptions())
	require.Len(t, res.Cards, 2)
	v := res.Cards[1]
	assert.Equal(t, cards.Rare, v.Rarity)
	assert.True(t, v.HasEffect(cards.KindCleanse))
}
