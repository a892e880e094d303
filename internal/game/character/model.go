// Package character defines the character draft consumed by the tactical
// conversion engine, and the pure normalization logic applied to it.
package character

// Attribute names as they appear in a draft's attribute map.
const (
	Knowledge     = "knowledge"
	Reasoning     = "reasoning"
	Body          = "body"
	Reflexes      = "reflexes"
	Determination = "determination"
	Coordination  = "coordination"
	Charisma      = "charisma"
	Intuition     = "intuition"
)

// AttributeNames lists the eight named attributes in sheet order.
var AttributeNames = []string{
	Knowledge, Reasoning, Body, Reflexes,
	Determination, Coordination, Charisma, Intuition,
}

// Skill ids. The vocabulary is fixed; drafts may carry other keys, which
// the engine ignores.
const (
	SkillFighting      = "luta"
	SkillBlades        = "laminas"
	SkillResistance    = "resistencia"
	SkillShooting      = "tiro"
	SkillArtillery     = "artilharia"
	SkillMedicine      = "medicina"
	SkillPersuasion    = "persuasao"
	SkillAthletics     = "atletismo"
	SkillEvasion       = "esquiva"
	SkillStealth       = "furtividade"
	SkillLeadership    = "lideranca"
	SkillTactics       = "tatica"
	SkillOccultism     = "ocultismo"
	SkillTechnology    = "tecnologia"
	SkillInvestigation = "investigacao"
	SkillSurvival      = "sobrevivencia"
	SkillPerception    = "percepcao"
)

// Theme is a closed-set setting identifier.
type Theme string

const (
	ThemeAkashic  Theme = "akashic"
	ThemeMedieval Theme = "medieval"
	ThemeSciFi    Theme = "scifi"
)

// DefaultTheme is used whenever a draft carries no theme or an unknown one.
const DefaultTheme = ThemeAkashic

// Themes lists every supported theme.
var Themes = []Theme{ThemeAkashic, ThemeMedieval, ThemeSciFi}

// ParseTheme resolves s to a known theme.
//
// Postcondition: Returns the matching Theme and true, or DefaultTheme and false.
func ParseTheme(s string) (Theme, bool) {
	for _, t := range Themes {
		if string(t) == s {
			return t, true
		}
	}
	return DefaultTheme, false
}

// Virtue ids eligible as a starting virtue.
const (
	VirtueWisdom       = "sabedoria"
	VirtueCourage      = "coragem"
	VirtuePerseverance = "perseveranca"
	VirtueHarmony      = "harmonia"
)

// Attributes holds the eight attribute values after normalization.
type Attributes struct {
	Knowledge     int
	Reasoning     int
	Body          int
	Reflexes      int
	Determination int
	Coordination  int
	Charisma      int
	Intuition     int
}

// SkillMap maps skill id to level. Absent keys read as level 0.
type SkillMap map[string]int

// Level returns the level for id, or 0 if absent.
func (s SkillMap) Level(id string) int {
	return s[id]
}

// Sum returns the total level of the given skills.
func (s SkillMap) Sum(ids ...string) int {
	total := 0
	for _, id := range ids {
		total += s[id]
	}
	return total
}

// Draft is a character sheet as produced by the character builder.
//
// Attributes is a map so that absent entries are observable; use Normalize
// to obtain a fully populated Attributes value.
type Draft struct {
	ID             string         `yaml:"id" json:"id,omitempty"`
	Name           string         `yaml:"name" json:"name"`
	Theme          string         `yaml:"theme" json:"theme,omitempty"`
	FactionID      string         `yaml:"faction_id" json:"factionId,omitempty"`
	Attributes     map[string]int `yaml:"attributes" json:"attributes"`
	Skills         SkillMap       `yaml:"skills" json:"skills"`
	Virtues        map[string]int `yaml:"virtues" json:"virtues,omitempty"`
	StartingVirtue string         `yaml:"starting_virtue" json:"startingVirtue,omitempty"`
	WeaponID       string         `yaml:"weapon_id" json:"weaponId,omitempty"`
	ArmorID        string         `yaml:"armor_id" json:"armorId,omitempty"`
	ItemIDs        []string       `yaml:"item_ids" json:"itemIds,omitempty"`
}

// ResolvedTheme returns the draft's theme, falling back to DefaultTheme.
func (d *Draft) ResolvedTheme() Theme {
	t, _ := ParseTheme(d.Theme)
	return t
}
