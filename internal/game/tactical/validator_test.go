package tactical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
)

func TestValidate_Complete(t *testing.T) {
	res := tactical.Validate(&character.Draft{Name: "Ready", Attributes: fullAttributes(2)})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidate_EmptyNameAndAttributes(t *testing.T) {
	res := tactical.Validate(&character.Draft{Name: "", Attributes: map[string]int{}})
	assert.False(t, res.Valid)
	assert.GreaterOrEqual(t, len(res.Errors), 2)
	assert.Contains(t, res.Errors, "character name is required")
	assert.Contains(t, res.Errors, "all 8 attributes are required, got 0")
}

func TestValidate_WhitespaceName(t *testing.T) {
	res := tactical.Validate(&character.Draft{Name: "   ", Attributes: fullAttributes(1)})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"character name is required"}, res.Errors)
}

func TestValidate_ZeroVitality(t *testing.T) {
	attrs := fullAttributes(0)
	res := tactical.Validate(&character.Draft{Name: "Ghost", Attributes: attrs})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"vitality must be at least 1, got 0"}, res.Errors)
}

func TestValidate_AllChecksAccumulate(t *testing.T) {
	res := tactical.Validate(&character.Draft{Attributes: map[string]int{"body": 0, "determination": 0}})
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
}

func TestValidate_ExtraAttributeKeysCount(t *testing.T) {
	attrs := fullAttributes(1)
	delete(attrs, "intuition")
	attrs["luck"] = 3
	res := tactical.Validate(&character.Draft{Name: "Lucky", Attributes: attrs})
	assert.True(t, res.Valid)
}
