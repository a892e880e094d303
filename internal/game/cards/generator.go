package cards

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/condition"
	"github.com/cory-johannsen/tactics/internal/pkg/idgen"
)

// Generate builds the combat cards for a character owned by unitID.
//
// Skills are visited in ascending id order. Each skill with level > 0 that
// has a card type yields one card. If none does, a basic attack is added.
// A recognised starting virtue appends one more card. theme is accepted
// for symmetry with the stat calculators and does not alter card content.
//
// Precondition: d and ids must be non-nil.
// Postcondition: Returns at least one card; every card has CurrentCooldown 0
// and at least one effect.
func Generate(d *character.Draft, unitID string, theme character.Theme, ids idgen.Generator) []CombatCard {
	skills := d.SkillLevels()

	keys := make([]string, 0, len(skills))
	for k := range skills {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []CombatCard
	for _, skill := range keys {
		level := skills[skill]
		if level <= 0 {
			continue
		}
		cardType, ok := skillCardType[skill]
		if !ok {
			continue
		}
		out = append(out, skillCard(ids.Generate(), unitID, skill, level, cardType))
	}

	if len(out) == 0 {
		out = append(out, basicAttack(ids.Generate(), unitID))
	}

	if d.StartingVirtue != "" {
		if t, ok := virtueCards[d.StartingVirtue]; ok {
			out = append(out, virtueCard(ids.Generate(), unitID, d.StartingVirtue, t))
		}
	}
	return out
}

func skillCard(id, unitID, skill string, level int, cardType CardType) CombatCard {
	rarity := RarityForLevel(level)
	name, desc := cardTextFor(skill, level)
	return CombatCard{
		ID:          id,
		Name:        name,
		Type:        cardType,
		Rarity:      rarity,
		UnitID:      unitID,
		Cost:        baseCost[cardType] + level/3,
		Cooldown:    cooldownByRarity[rarity],
		Description: desc,
		Effects:     skillEffects(skill, level, cardType),
		Source:      skill,
	}
}

func cardTextFor(skill string, level int) (string, string) {
	if texts, ok := skillCardText[skill]; ok && level >= 1 && level <= len(texts) {
		t := texts[level-1]
		return t.Name, t.Description
	}
	return fmt.Sprintf("Technique Level %d", level), "Special effect"
}

func skillEffects(skill string, level int, cardType CardType) Effects {
	switch cardType {
	case TypeAttack:
		effects := Effects{Damage{Value: 2 + level, Target: TargetEnemy}}
		if level >= 4 {
			status := condition.Suppressed
			if meleeSkills[skill] {
				status = condition.Staggered
			}
			effects = append(effects, Status{StatusID: status, Duration: 1, Target: TargetEnemy})
		}
		return effects
	case TypeDefense:
		stat := "defense"
		if skill == character.SkillEvasion {
			stat = "evasion"
		}
		return Effects{Buff{Stat: stat, Value: 1 + level/2, Duration: 2, Target: TargetSelf}}
	case TypeMovement:
		effects := Effects{Movement{Value: 1 + level/2, Target: TargetSelf}}
		if skill == character.SkillStealth && level >= 3 {
			effects = append(effects, Status{StatusID: condition.Hidden, Duration: 1, Target: TargetSelf})
		}
		return effects
	case TypeSupport:
		return Effects{Heal{Value: 2 + level, Target: TargetAlly}}
	case TypeCommand:
		return Effects{Buff{Stat: "morale", Value: level, Duration: 2, Target: TargetAllies}}
	default:
		return Effects{Special{Value: level, Target: TargetVaries, SpecialEffect: skill}}
	}
}

func basicAttack(id, unitID string) CombatCard {
	return CombatCard{
		ID:          id,
		Name:        "Basic Attack",
		Type:        TypeAttack,
		Rarity:      Common,
		UnitID:      unitID,
		Cost:        1,
		Cooldown:    0,
		Description: "A simple strike with whatever is at hand.",
		Effects:     Effects{Damage{Value: 2, Target: TargetEnemy}},
		Source:      SourceFallback,
	}
}

func virtueCard(id, unitID, virtue string, t virtueTemplate) CombatCard {
	return CombatCard{
		ID:          id,
		Name:        t.Name,
		Type:        t.Type,
		Rarity:      Rare,
		UnitID:      unitID,
		Cost:        virtueCost,
		Cooldown:    virtueCooldown,
		Description: t.Description,
		Effects:     append(Effects(nil), t.Effects...),
		Source:      "virtue:" + virtue,
	}
}
