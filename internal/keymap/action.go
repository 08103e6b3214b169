// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the Action Resolver: the discriminated match that turns
// the options of a remap directive into exactly one KeyAction.
//
// The recognized shapes are tested in priority order and the first match
// wins:
//
//  1. to is an Execution                 -> Execution
//  2. to is a key name, with_modifier set -> KeyRemap with the modifiers
//  3. to is a key name                    -> KeyRemap without modifiers
//  4. anything else                       -> MalformedDirectiveError
package keymap

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Option names understood by the resolver.
const (
	OptionTo           = "to"
	OptionWithModifier = "with_modifier"
	OptionExecute      = "execute"
)

// KeyAction is a normalized remap entry. It is implemented only by KeyRemap
// and Execution.
type KeyAction interface {
	isKeyAction()
}

// KeyRemap emits To instead of the trigger key, with the modifiers in With
// held in the given order.
type KeyRemap struct {
	To   string
	With []string
}

func (KeyRemap) isKeyAction() {}

// NewKeyRemap returns a KeyRemap owning its own copy of the modifiers.
func NewKeyRemap(to string, with ...string) KeyRemap {
	mods := make([]string, len(with))
	copy(mods, with)
	return KeyRemap{To: to, With: mods}
}

// Execution runs Command instead of emitting a key.
type Execution struct {
	Command string
}

func (Execution) isKeyAction() {}

// Execute builds the value a remap's "to" option consumes to request a
// command execution. It has no side effect.
func Execute(command string) Execution {
	return Execution{Command: command}
}

// TargetSpec holds the options passed to a remap directive, keyed by option
// name. Values are plain Go values: string, []string, []any, map[string]any,
// Execution or nil.
type TargetSpec map[string]any

// String renders the target options with sorted keys, for error messages.
func (s TargetSpec) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, formatOption(s[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatOption(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case Execution:
		return fmt.Sprintf("execute(%q)", v.Command)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Resolve decides which action shape spec denotes. It is pure: the same spec
// always resolves to an equal KeyAction.
func Resolve(spec TargetSpec) (KeyAction, error) {
	to, ok := spec[OptionTo]
	if !ok {
		return nil, malformed(spec, "missing %q option", OptionTo)
	}

	if exec, ok := asExecution(to); ok {
		return exec, nil
	}

	key, ok := to.(string)
	if !ok {
		return nil, malformed(spec, "%q must be a key name or an execution, got %s", OptionTo, describe(to))
	}

	raw, ok := spec[OptionWithModifier]
	if !ok {
		return NewKeyRemap(key), nil
	}

	mods, err := StringOrSlice(raw)
	if err != nil {
		return nil, malformed(spec, "%q: %v", OptionWithModifier, err)
	}
	return NewKeyRemap(key, mods...), nil
}

// UnknownOptions lists, sorted, the option names Resolve does not look at.
func UnknownOptions(spec TargetSpec) []string {
	var unknown []string
	for k := range spec {
		if k != OptionTo && k != OptionWithModifier {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// asExecution accepts an Execution value or an object carrying a string
// "execute" attribute, which is what the script-level execute() produces.
func asExecution(v any) (Execution, bool) {
	switch v := v.(type) {
	case Execution:
		return v, true
	case *Execution:
		if v != nil {
			return *v, true
		}
	case map[string]any:
		if cmd, ok := v[OptionExecute].(string); ok {
			return Execute(cmd), true
		}
	}
	return Execution{}, false
}

// StringOrSlice coerces a scalar-or-sequence option into an ordered slice. A
// string becomes a one-element slice, a sequence of strings passes through in
// order and nil becomes the empty slice.
func StringOrSlice(v any) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return []string{v}, nil
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d must be a string, got %s", i, describe(item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a string or a list of strings, got %s", describe(v))
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64, float32, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
