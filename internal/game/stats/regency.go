package stats

import "github.com/cory-johannsen/tactics/internal/game/character"

// RegencyStats holds the domain and leadership values of a character.
type RegencyStats struct {
	Command   int `json:"command" yaml:"command"`
	Strategy  int `json:"strategy" yaml:"strategy"`
	Logistics int `json:"logistics" yaml:"logistics"`
	Diplomacy int `json:"diplomacy" yaml:"diplomacy"`
	Intrigue  int `json:"intrigue" yaml:"intrigue"`
}

// logisticsSkill is the skill each theme trains for supply and administration.
var logisticsSkill = map[character.Theme]string{
	character.ThemeAkashic:  character.SkillOccultism,
	character.ThemeMedieval: character.SkillSurvival,
	character.ThemeSciFi:    character.SkillTechnology,
}

// LogisticsSkill returns the logistics skill for theme, using the default
// theme's skill when theme is unknown.
func LogisticsSkill(theme character.Theme) string {
	if s, ok := logisticsSkill[theme]; ok {
		return s
	}
	return logisticsSkill[character.DefaultTheme]
}

// CalculateRegency computes RegencyStats for the given theme.
//
// Precondition: a must be normalized; skills may be nil.
// Postcondition: Every field of the result is >= 0.
func CalculateRegency(a character.Attributes, skills character.SkillMap, theme character.Theme) RegencyStats {
	return RegencyStats{
		Command:   nonNegative(half(a.Charisma+a.Determination) + skills.Level(character.SkillLeadership)),
		Strategy:  nonNegative(half(a.Reasoning+a.Knowledge) + skills.Level(character.SkillTactics)),
		Logistics: nonNegative(half(a.Knowledge+a.Coordination) + skills.Level(LogisticsSkill(theme))),
		Diplomacy: nonNegative(half(a.Charisma+a.Intuition) + skills.Level(character.SkillPersuasion)),
		Intrigue:  nonNegative(half(a.Intuition+a.Reasoning) + skills.Level(character.SkillStealth)),
	}
}
