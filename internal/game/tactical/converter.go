package tactical

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tactics/internal/game/cards"
	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/stats"
	"github.com/cory-johannsen/tactics/internal/pkg/idgen"
)

const (
	// armorDefenseBonus is the flat defense granted by any equipped armor.
	armorDefenseBonus = 2
	// commanderAptitude is the command or strategy at which Mapping.IsCommander is set.
	commanderAptitude = 4
	lowHPThreshold    = 5
	lowCommandLimit   = 3
)

// Options controls a single conversion.
type Options struct {
	AsCommander      bool
	GenerateCards    bool
	IncludeEquipment bool
	TeamID           string
}

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions() Options {
	return Options{
		AsCommander:      false,
		GenerateCards:    true,
		IncludeEquipment: true,
		TeamID:           DefaultTeamID,
	}
}

// ConversionResult is the outcome of converting one character. Warnings are
// advisory and never prevent the unit from being built.
type ConversionResult struct {
	Unit     Unit               `json:"unit" yaml:"unit"`
	Cards    []cards.CombatCard `json:"cards" yaml:"cards"`
	Warnings []string           `json:"warnings" yaml:"warnings"`
}

// Converter builds units and cards from character drafts. It holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	ids    idgen.Generator
	logger *zap.Logger
}

// NewConverter creates a Converter. A nil ids defaults to UUID generation;
// a nil logger discards output.
//
// Postcondition: Returns a non-nil Converter.
func NewConverter(ids idgen.Generator, logger *zap.Logger) *Converter {
	if ids == nil {
		ids = idgen.NewUUID("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{ids: ids, logger: logger}
}

// MapStats translates derived and regency stats into unit values.
func MapStats(d stats.DerivedStats, r stats.RegencyStats, hasArmor bool) Mapping {
	defense := d.Guard
	if hasArmor {
		defense += armorDefenseBonus
	}
	return Mapping{
		HP:          d.Vitality,
		Defense:     defense,
		Evasion:     d.Evasion,
		Speed:       d.Movement,
		Initiative:  d.Reaction,
		Morale:      d.Conviction,
		Tension:     d.Tension,
		Command:     r.Command,
		Strategy:    r.Strategy,
		Influence:   d.Influence,
		IsCommander: r.Command >= commanderAptitude || r.Strategy >= commanderAptitude,
	}
}

// Convert builds a unit and, unless disabled, its combat cards.
//
// Precondition: d must be non-nil. Validation is the caller's concern;
// incomplete drafts still convert using attribute defaults.
// Postcondition: Unit.HP == Unit.MaxHP, Unit.Morale == Unit.MaxMorale, and
// the commander fields are set if and only if opts.AsCommander.
func (c *Converter) Convert(d *character.Draft, opts Options) ConversionResult {
	teamID := opts.TeamID
	if teamID == "" {
		teamID = DefaultTeamID
	}

	attrs := character.Normalize(d.Attributes)
	skills := d.SkillLevels()
	theme := d.ResolvedTheme()

	derived := stats.CalculateDerived(attrs, skills)
	regency := stats.CalculateRegency(attrs, skills, theme)
	m := MapStats(derived, regency, opts.IncludeEquipment && d.ArmorID != "")

	unit := Unit{
		ID:          c.ids.Generate(),
		Name:        d.Name,
		Type:        DetermineUnitType(d, opts.AsCommander),
		TeamID:      teamID,
		HP:          m.HP,
		MaxHP:       m.HP,
		Defense:     m.Defense,
		Evasion:     m.Evasion,
		Speed:       m.Speed,
		Initiative:  m.Initiative,
		Morale:      m.Morale,
		MaxMorale:   m.Morale,
		Stress:      0,
		MaxStress:   m.Tension,
		Position:    Position{X: 0, Y: 0},
		IsCommander: opts.AsCommander,
		IsActive:    true,
		HasActed:    false,
		CharacterID: d.ID,
		FactionID:   d.FactionID,
		Theme:       theme,
	}
	if opts.AsCommander {
		command, strategy, influence := m.Command, m.Strategy, m.Influence
		unit.Command = &command
		unit.Strategy = &strategy
		unit.Influence = &influence
	}

	deck := []cards.CombatCard{}
	if opts.GenerateCards {
		deck = cards.Generate(d, unit.ID, theme, c.ids)
	}

	warnings := []string{}
	if opts.GenerateCards && len(deck) == 0 {
		warnings = append(warnings, "no combat cards generated")
	}
	if unit.HP < lowHPThreshold {
		warnings = append(warnings, fmt.Sprintf("HP too low (%d); unit may fall quickly", unit.HP))
	}
	if opts.AsCommander && m.Command < lowCommandLimit {
		warnings = append(warnings, fmt.Sprintf("Low command (%d) for a commander", m.Command))
	}

	c.logger.Debug("character converted",
		zap.String("character", d.Name),
		zap.String("unit_id", unit.ID),
		zap.String("type", string(unit.Type)),
		zap.String("team", teamID),
		zap.Int("cards", len(deck)),
		zap.Bool("commander_aptitude", m.IsCommander),
	)
	for _, w := range warnings {
		c.logger.Info("conversion warning", zap.String("character", d.Name), zap.String("warning", w))
	}

	return ConversionResult{Unit: unit, Cards: deck, Warnings: warnings}
}
