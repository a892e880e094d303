// Package tactical converts character drafts into battle-ready units and
// their combat cards.
package tactical

import "github.com/cory-johannsen/tactics/internal/game/character"

// UnitType is the tactical role assigned to a unit.
type UnitType string

const (
	Commander UnitType = "commander"
	Support   UnitType = "support"
	Ranged    UnitType = "ranged"
	Cavalry   UnitType = "cavalry"
	Infantry  UnitType = "infantry"
)

// DefaultTeamID is used when no team is given.
const DefaultTeamID = "player"

// Position is a cell on the tactical grid.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Unit is the battle representation of a character. The converter never
// modifies a Unit after returning it.
//
// Command, Strategy and Influence are non-nil if and only if IsCommander.
// CharacterID is a lookup key for the source draft.
type Unit struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Type        UnitType        `json:"type" yaml:"type"`
	TeamID      string          `json:"teamId" yaml:"team_id"`
	HP          int             `json:"hp" yaml:"hp"`
	MaxHP       int             `json:"maxHp" yaml:"max_hp"`
	Defense     int             `json:"defense" yaml:"defense"`
	Evasion     int             `json:"evasion" yaml:"evasion"`
	Speed       int             `json:"speed" yaml:"speed"`
	Initiative  int             `json:"initiative" yaml:"initiative"`
	Morale      int             `json:"morale" yaml:"morale"`
	MaxMorale   int             `json:"maxMorale" yaml:"max_morale"`
	Stress      int             `json:"stress" yaml:"stress"`
	MaxStress   int             `json:"maxStress" yaml:"max_stress"`
	Position    Position        `json:"position" yaml:"position"`
	IsCommander bool            `json:"isCommander" yaml:"is_commander"`
	IsActive    bool            `json:"isActive" yaml:"is_active"`
	HasActed    bool            `json:"hasActed" yaml:"has_acted"`
	CharacterID string          `json:"characterId,omitempty" yaml:"character_id,omitempty"`
	Command     *int            `json:"command,omitempty" yaml:"command,omitempty"`
	Strategy    *int            `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Influence   *int            `json:"influence,omitempty" yaml:"influence,omitempty"`
	FactionID   string          `json:"factionId,omitempty" yaml:"faction_id,omitempty"`
	Theme       character.Theme `json:"theme" yaml:"theme"`
}

// Mapping is the intermediate translation of derived and regency stats
// into unit values.
type Mapping struct {
	HP         int
	Defense    int
	Evasion    int
	Speed      int
	Initiative int
	Morale     int
	Tension    int
	Command    int
	Strategy   int
	Influence  int
	// IsCommander reports leadership aptitude only. A unit's actual
	// commander flag comes from Options.AsCommander.
	IsCommander bool
}
