package stats

import "github.com/cory-johannsen/tactics/internal/game/character"

// Labels maps stat keys ("vitality", "command", ...) to theme-specific
// display names.
type Labels map[string]string

var themeLabels = map[character.Theme]Labels{
	character.ThemeAkashic: {
		"vitality": "Vitality", "guard": "Guard", "evasion": "Evasion",
		"reaction": "Reaction", "will": "Will", "movement": "Movement",
		"tension": "Tension", "fortitude": "Fortitude", "conviction": "Conviction",
		"influence": "Influence", "command": "Command", "strategy": "Strategy",
		"logistics": "Logistics", "diplomacy": "Diplomacy", "intrigue": "Intrigue",
	},
	character.ThemeMedieval: {
		"vitality": "Vigor", "guard": "Parry", "evasion": "Dodge",
		"reaction": "Alertness", "will": "Resolve", "movement": "March",
		"tension": "Strain", "fortitude": "Endurance", "conviction": "Faith",
		"influence": "Renown", "command": "Lordship", "strategy": "Warcraft",
		"logistics": "Stewardship", "diplomacy": "Courtesy", "intrigue": "Scheming",
	},
	character.ThemeSciFi: {
		"vitality": "Integrity", "guard": "Shielding", "evasion": "Countermeasures",
		"reaction": "Response", "will": "Composure", "movement": "Thrust",
		"tension": "Overload", "fortitude": "Hardening", "conviction": "Drive",
		"influence": "Reach", "command": "Command Link", "strategy": "Doctrine",
		"logistics": "Supply Chain", "diplomacy": "Relations", "intrigue": "Infosec",
	},
}

// LabelsFor returns the display labels for theme. Unknown themes get the
// default theme's labels. The returned map must not be modified.
func LabelsFor(theme character.Theme) Labels {
	if l, ok := themeLabels[theme]; ok {
		return l
	}
	return themeLabels[character.DefaultTheme]
}

// Label returns the label for key, or key itself when there is none.
func (l Labels) Label(key string) string {
	if v, ok := l[key]; ok {
		return v
	}
	return key
}
