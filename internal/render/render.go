// Package render turns an evaluated keymap.Configuration into the JSON
// document consumed by the remapping daemon.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/remapc/internal/keymap"
)

// Document is the wire format. Both tiers are always present.
type Document struct {
	Remap map[string]Action            `json:"remap" jsonschema:"description=Global rules keyed by trigger key"`
	InApp map[string]map[string]Action `json:"in_app" jsonschema:"description=Per-application rules keyed by window class name"`
}

// RemapAction is the wire form of a keymap.KeyRemap.
type RemapAction struct {
	To   string   `json:"to" jsonschema:"description=Key emitted instead of the trigger"`
	With []string `json:"with" jsonschema:"description=Modifiers held while emitting the key, in order"`
}

// ExecuteAction is the wire form of a keymap.Execution.
type ExecuteAction struct {
	Execute string `json:"execute" jsonschema:"description=Shell command run instead of emitting a key"`
}

// Action holds exactly one of Remap or Exec.
type Action struct {
	Remap *RemapAction
	Exec  *ExecuteAction
}

// MarshalJSON emits the populated variant.
func (a Action) MarshalJSON() ([]byte, error) {
	switch {
	case a.Exec != nil:
		return marshalVerbatim(a.Exec)
	case a.Remap != nil:
		with := a.Remap.With
		if with == nil {
			with = []string{}
		}
		return marshalVerbatim(RemapAction{To: a.Remap.To, With: with})
	default:
		return nil, fmt.Errorf("render: empty action")
	}
}

// marshalVerbatim is json.Marshal without HTML escaping. Escapes in a
// Marshaler's output survive the outer encoder's SetEscapeHTML(false).
func marshalVerbatim(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// NewAction converts a resolved keymap action.
func NewAction(action keymap.KeyAction) (Action, error) {
	switch a := action.(type) {
	case keymap.KeyRemap:
		return Action{Remap: &RemapAction{To: a.To, With: a.With}}, nil
	case keymap.Execution:
		return Action{Exec: &ExecuteAction{Execute: a.Command}}, nil
	default:
		return Action{}, fmt.Errorf("render: unsupported action type %T", action)
	}
}

// FromConfiguration builds the Document for cfg. A nil cfg yields an empty
// document.
func FromConfiguration(cfg *keymap.Configuration) (Document, error) {
	doc := Document{
		Remap: map[string]Action{},
		InApp: map[string]map[string]Action{},
	}
	if cfg == nil {
		return doc, nil
	}

	global, err := fromRuleSet(cfg.Global)
	if err != nil {
		return Document{}, fmt.Errorf("global rules: %w", err)
	}
	doc.Remap = global

	for class, rules := range cfg.InApp {
		converted, err := fromRuleSet(rules)
		if err != nil {
			return Document{}, fmt.Errorf("rules for %q: %w", class, err)
		}
		doc.InApp[class] = converted
	}
	return doc, nil
}

func fromRuleSet(rules keymap.RuleSet) (map[string]Action, error) {
	out := make(map[string]Action, len(rules))
	for key, action := range rules {
		a, err := NewAction(action)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = a
	}
	return out, nil
}

// Encode writes doc as JSON followed by a newline. Map keys come out sorted.
func Encode(w io.Writer, doc Document, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return nil
}
