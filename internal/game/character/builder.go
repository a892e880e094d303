package character

import "fmt"

// defaultAttribute is substituted for any attribute missing from a draft.
const defaultAttribute = 1

// Normalize builds a fully populated Attributes value from a draft's
// attribute map. Every missing attribute is set to 1.
//
// Precondition: raw may be nil.
// Postcondition: Every field of the result is either the raw value or 1.
func Normalize(raw map[string]int) Attributes {
	get := func(name string) int {
		if v, ok := raw[name]; ok {
			return v
		}
		return defaultAttribute
	}
	return Attributes{
		Knowledge:     get(Knowledge),
		Reasoning:     get(Reasoning),
		Body:          get(Body),
		Reflexes:      get(Reflexes),
		Determination: get(Determination),
		Coordination:  get(Coordination),
		Charisma:      get(Charisma),
		Intuition:     get(Intuition),
	}
}

// SkillLevels returns the draft's skill map, never nil.
func (d *Draft) SkillLevels() SkillMap {
	if d.Skills == nil {
		return SkillMap{}
	}
	return d.Skills
}

// Get returns the value of the named attribute.
//
// Postcondition: Returns 0 for unknown names.
func (a Attributes) Get(name string) int {
	switch name {
	case Knowledge:
		return a.Knowledge
	case Reasoning:
		return a.Reasoning
	case Body:
		return a.Body
	case Reflexes:
		return a.Reflexes
	case Determination:
		return a.Determination
	case Coordination:
		return a.Coordination
	case Charisma:
		return a.Charisma
	case Intuition:
		return a.Intuition
	}
	return 0
}

// MissingAttributes returns the short labels of the named attributes absent
// from raw, in sheet order.
func MissingAttributes(raw map[string]int) []string {
	var missing []string
	for _, name := range AttributeNames {
		if _, ok := raw[name]; !ok {
			missing = append(missing, AttributeName(name))
		}
	}
	return missing
}

// AttributeName returns the short display label for an attribute.
func AttributeName(field string) string {
	names := map[string]string{
		Knowledge:     "KNO",
		Reasoning:     "RSN",
		Body:          "BOD",
		Reflexes:      "REF",
		Determination: "DET",
		Coordination:  "COO",
		Charisma:      "CHA",
		Intuition:     "INT",
	}
	if n, ok := names[field]; ok {
		return n
	}
	return fmt.Sprintf("<%s>", field)
}
