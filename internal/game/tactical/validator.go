package tactical

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/stats"
)

// ValidationResult reports whether a draft is ready for battle.
type ValidationResult struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors" yaml:"errors"`
}

// Validate checks that d has a name, all eight attributes, and positive
// vitality. Every check runs; errors accumulate.
//
// Precondition: d must be non-nil.
// Postcondition: Valid is true if and only if Errors is empty.
func Validate(d *character.Draft) ValidationResult {
	errs := []string{}

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, "character name is required")
	}
	if n := len(d.Attributes); n < len(character.AttributeNames) {
		errs = append(errs, fmt.Sprintf("all %d attributes are required, got %d", len(character.AttributeNames), n))
	}
	derived := stats.CalculateDerived(character.Normalize(d.Attributes), d.SkillLevels())
	if derived.Vitality < 1 {
		errs = append(errs, fmt.Sprintf("vitality must be at least 1, got %d", derived.Vitality))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
