package cards

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EffectKind discriminates the concrete Effect types.
type EffectKind string

const (
	KindDamage   EffectKind = "damage"
	KindHeal     EffectKind = "heal"
	KindMovement EffectKind = "movement"
	KindBuff     EffectKind = "buff"
	KindDebuff   EffectKind = "debuff"
	KindStatus   EffectKind = "status"
	KindCleanse  EffectKind = "cleanse"
	KindSpecial  EffectKind = "special"
)

// Target names who an effect applies to.
type Target string

const (
	TargetSelf    Target = "self"
	TargetAlly    Target = "ally"
	TargetAllies  Target = "allies"
	TargetEnemy   Target = "enemy"
	TargetEnemies Target = "enemies"
	TargetVaries  Target = "varies"
)

// Effect is one mechanical consequence of playing a card. The set of
// implementations is closed; switch on the concrete type to consume one.
type Effect interface {
	Kind() EffectKind
	EffectTarget() Target
	isEffect()
}

// Damage removes Value hit points from the target.
type Damage struct {
	Value  int
	Target Target
}

// Heal restores Value hit points to the target.
type Heal struct {
	Value  int
	Target Target
}

// Movement grants Value extra grid steps.
type Movement struct {
	Value  int
	Target Target
}

// Buff raises Stat by Value for Duration turns.
type Buff struct {
	Stat     string
	Value    int
	Duration int
	Target   Target
}

// Debuff lowers Stat by Value for Duration turns.
type Debuff struct {
	Stat     string
	Value    int
	Duration int
	Target   Target
}

// Status applies the condition StatusID for Duration turns.
type Status struct {
	StatusID string
	Duration int
	Target   Target
}

// Cleanse removes the condition StatusID.
type Cleanse struct {
	StatusID string
	Target   Target
}

// Special carries an effect resolved by battle logic according to SpecialEffect.
type Special struct {
	Value         int
	Target        Target
	SpecialEffect string
}

func (Damage) Kind() EffectKind   { return KindDamage }
func (Heal) Kind() EffectKind     { return KindHeal }
func (Movement) Kind() EffectKind { return KindMovement }
func (Buff) Kind() EffectKind     { return KindBuff }
func (Debuff) Kind() EffectKind   { return KindDebuff }
func (Status) Kind() EffectKind   { return KindStatus }
func (Cleanse) Kind() EffectKind  { return KindCleanse }
func (Special) Kind() EffectKind  { return KindSpecial }

func (e Damage) EffectTarget() Target   { return e.Target }
func (e Heal) EffectTarget() Target     { return e.Target }
func (e Movement) EffectTarget() Target { return e.Target }
func (e Buff) EffectTarget() Target     { return e.Target }
func (e Debuff) EffectTarget() Target   { return e.Target }
func (e Status) EffectTarget() Target   { return e.Target }
func (e Cleanse) EffectTarget() Target  { return e.Target }
func (e Special) EffectTarget() Target  { return e.Target }

func (Damage) isEffect()   {}
func (Heal) isEffect()     {}
func (Movement) isEffect() {}
func (Buff) isEffect()     {}
func (Debuff) isEffect()   {}
func (Status) isEffect()   {}
func (Cleanse) isEffect()  {}
func (Special) isEffect()  {}

// Effects is an ordered effect list with a tagged JSON and YAML encoding.
type Effects []Effect

// wireEffect is the flat tagged encoding of every Effect variant.
type wireEffect struct {
	Type          EffectKind `json:"type" yaml:"type"`
	Target        Target     `json:"target" yaml:"target"`
	Value         int        `json:"value,omitempty" yaml:"value,omitempty"`
	Stat          string     `json:"stat,omitempty" yaml:"stat,omitempty"`
	Duration      int        `json:"duration,omitempty" yaml:"duration,omitempty"`
	Status        string     `json:"status,omitempty" yaml:"status,omitempty"`
	SpecialEffect string     `json:"specialEffect,omitempty" yaml:"special_effect,omitempty"`
}

func toWire(e Effect) wireEffect {
	w := wireEffect{Type: e.Kind(), Target: e.EffectTarget()}
	switch v := e.(type) {
	case Damage:
		w.Value = v.Value
	case Heal:
		w.Value = v.Value
	case Movement:
		w.Value = v.Value
	case Buff:
		w.Stat, w.Value, w.Duration = v.Stat, v.Value, v.Duration
	case Debuff:
		w.Stat, w.Value, w.Duration = v.Stat, v.Value, v.Duration
	case Status:
		w.Status, w.Duration = v.StatusID, v.Duration
	case Cleanse:
		w.Status = v.StatusID
	case Special:
		w.Value, w.SpecialEffect = v.Value, v.SpecialEffect
	}
	return w
}

func fromWire(w wireEffect) (Effect, error) {
	switch w.Type {
	case KindDamage:
		return Damage{Value: w.Value, Target: w.Target}, nil
	case KindHeal:
		return Heal{Value: w.Value, Target: w.Target}, nil
	case KindMovement:
		return Movement{Value: w.Value, Target: w.Target}, nil
	case KindBuff:
		return Buff{Stat: w.Stat, Value: w.Value, Duration: w.Duration, Target: w.Target}, nil
	case KindDebuff:
		return Debuff{Stat: w.Stat, Value: w.Value, Duration: w.Duration, Target: w.Target}, nil
	case KindStatus:
		return Status{StatusID: w.Status, Duration: w.Duration, Target: w.Target}, nil
	case KindCleanse:
		return Cleanse{StatusID: w.Status, Target: w.Target}, nil
	case KindSpecial:
		return Special{Value: w.Value, Target: w.Target, SpecialEffect: w.SpecialEffect}, nil
	}
	return nil, fmt.Errorf("unknown effect type %q", w.Type)
}

func (es Effects) wire() []wireEffect {
	out := make([]wireEffect, 0, len(es))
	for _, e := range es {
		out = append(out, toWire(e))
	}
	return out
}

// MarshalJSON encodes each effect as an object tagged with "type".
func (es Effects) MarshalJSON() ([]byte, error) {
	return json.Marshal(es.wire())
}

// UnmarshalJSON decodes tagged effect objects. Unknown tags are an error.
func (es *Effects) UnmarshalJSON(data []byte) error {
	var ws []wireEffect
	if err := json.Unmarshal(data, &ws); err != nil {
		return err
	}
	return es.fromWireList(ws)
}

func (es *Effects) fromWireList(ws []wireEffect) error {
	out := make(Effects, 0, len(ws))
	for i, w := range ws {
		e, err := fromWire(w)
		if err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}
		out = append(out, e)
	}
	*es = out
	return nil
}

// MarshalYAML encodes effects in the same tagged shape as JSON.
func (es Effects) MarshalYAML() (any, error) {
	return es.wire(), nil
}

// UnmarshalYAML decodes the tagged shape written by MarshalYAML. Unknown
// tags are an error.
func (es *Effects) UnmarshalYAML(value *yaml.Node) error {
	var ws []wireEffect
	if err := value.Decode(&ws); err != nil {
		return err
	}
	return es.fromWireList(ws)
}
