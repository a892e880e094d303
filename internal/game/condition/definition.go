// Package condition defines the status conditions that combat cards apply
// or remove.
package condition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Status ids referenced by generated combat cards.
const (
	Staggered  = "staggered"
	Suppressed = "suppressed"
	Hidden     = "hidden"
	Fear       = "fear"
)

// CardStatuses lists every status id the card generator can emit.
var CardStatuses = []string{Staggered, Suppressed, Hidden, Fear}

// ConditionDef is the static definition of a status condition, loaded from YAML.
type ConditionDef struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Category        string   `yaml:"category"`      // "debuff" | "buff" | "control"
	DurationType    string   `yaml:"duration_type"` // "turns" | "until_cleansed" | "permanent"
	DefensePenalty  int      `yaml:"defense_penalty"`
	EvasionBonus    int      `yaml:"evasion_bonus"`
	SpeedPenalty    int      `yaml:"speed_penalty"`
	MoralePenalty   int      `yaml:"morale_penalty"`
	RestrictActions []string `yaml:"restrict_actions"`
}

// Validate checks the fields every definition must carry.
func (d *ConditionDef) Validate() error {
	var errs []string
	if d.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	validCategories := map[string]bool{"debuff": true, "buff": true, "control": true}
	if !validCategories[d.Category] {
		errs = append(errs, fmt.Sprintf("category must be one of [debuff, buff, control], got %q", d.Category))
	}
	validDurations := map[string]bool{"turns": true, "until_cleansed": true, "permanent": true}
	if !validDurations[d.DurationType] {
		errs = append(errs, fmt.Sprintf("duration_type must be one of [turns, until_cleansed, permanent], got %q", d.DurationType))
	}
	if len(errs) > 0 {
		return fmt.Errorf("condition %q: %s", d.ID, strings.Join(errs, "; "))
	}
	return nil
}

// Registry holds all known ConditionDefs keyed by ID.
type Registry struct {
	defs map[string]*ConditionDef
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*ConditionDef)}
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *ConditionDef) {
	r.defs[def.ID] = def
}

// Get returns the ConditionDef for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*ConditionDef, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns a snapshot slice of all registered ConditionDefs ordered by ID.
func (r *Registry) All() []*ConditionDef {
	out := make([]*ConditionDef, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Missing returns the ids from want that have no registered definition.
func (r *Registry) Missing(want ...string) []string {
	var missing []string
	for _, id := range want {
		if _, ok := r.defs[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// LoadDirectory reads every *.yaml file in dir, parses each as a ConditionDef,
// and returns a populated Registry.
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading condition dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def ConditionDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("validating %q: %w", path, err)
		}
		reg.Register(&def)
	}
	return reg, nil
}
