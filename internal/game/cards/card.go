// Package cards generates the combat cards a tactical unit can play, one
// per trained skill plus an optional virtue card.
package cards

// CardType classifies what a card is used for.
type CardType string

const (
	TypeAttack   CardType = "attack"
	TypeDefense  CardType = "defense"
	TypeMovement CardType = "movement"
	TypeSupport  CardType = "support"
	TypeSpecial  CardType = "special"
	TypeCommand  CardType = "command"
)

// Rarity grades a card by the skill level that produced it.
type Rarity string

const (
	Common   Rarity = "common"
	Uncommon Rarity = "uncommon"
	Rare     Rarity = "rare"
	Epic     Rarity = "epic"
)

// SourceFallback marks the basic attack injected when no skill produced a card.
const SourceFallback = "fallback"

// CombatCard is a generated ability. UnitID is a lookup key for the owning
// unit, not a reference to it.
type CombatCard struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Type            CardType `json:"type" yaml:"type"`
	Rarity          Rarity   `json:"rarity" yaml:"rarity"`
	UnitID          string   `json:"unitId" yaml:"unit_id"`
	Cost            int      `json:"cost" yaml:"cost"`
	Cooldown        int      `json:"cooldown" yaml:"cooldown"`
	CurrentCooldown int      `json:"currentCooldown" yaml:"current_cooldown"`
	Description     string   `json:"description" yaml:"description"`
	Effects         Effects  `json:"effects" yaml:"effects"`
	// Source is the skill id, "virtue:<id>", or SourceFallback.
	Source string `json:"source" yaml:"source"`
}

// HasEffect reports whether the card carries an effect of kind k.
func (c *CombatCard) HasEffect(k EffectKind) bool {
	for _, e := range c.Effects {
		if e.Kind() == k {
			return true
		}
	}
	return false
}
