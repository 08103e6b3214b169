// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package keymap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		spec TargetSpec
		want KeyAction
	}{
		{
			name: "plain key remap has no modifiers",
			spec: TargetSpec{"to": "Left"},
			want: KeyRemap{To: "Left", With: []string{}},
		},
		{
			name: "scalar modifier becomes one element",
			spec: TargetSpec{"to": "Left", "with_modifier": "Shift"},
			want: KeyRemap{To: "Left", With: []string{"Shift"}},
		},
		{
			name: "modifier list keeps order",
			spec: TargetSpec{"to": "Left", "with_modifier": []any{"Shift", "Control"}},
			want: KeyRemap{To: "Left", With: []string{"Shift", "Control"}},
		},
		{
			name: "typed modifier list passes through",
			spec: TargetSpec{"to": "a", "with_modifier": []string{"Alt"}},
			want: KeyRemap{To: "a", With: []string{"Alt"}},
		},
		{
			name: "null modifier becomes empty",
			spec: TargetSpec{"to": "a", "with_modifier": nil},
			want: KeyRemap{To: "a", With: []string{}},
		},
		{
			name: "execution value",
			spec: TargetSpec{"to": Execute("deepin-screenshot")},
			want: Execution{Command: "deepin-screenshot"},
		},
		{
			name: "execution object from script",
			spec: TargetSpec{"to": map[string]any{"execute": "gnome-terminal"}},
			want: Execution{Command: "gnome-terminal"},
		},
		{
			name: "execution wins over modifiers",
			spec: TargetSpec{"to": Execute("ls"), "with_modifier": "Shift"},
			want: Execution{Command: "ls"},
		},
		{
			name: "extra options are ignored",
			spec: TargetSpec{"to": "Right", "note": "ignored"},
			want: KeyRemap{To: "Right", With: []string{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_Malformed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		spec         TargetSpec
		wantContains string
	}{
		{name: "empty spec", spec: TargetSpec{}, wantContains: `missing "to"`},
		{name: "unknown option only", spec: TargetSpec{"foo": "bar"}, wantContains: `missing "to"`},
		{name: "null target", spec: TargetSpec{"to": nil}, wantContains: "got null"},
		{name: "numeric target", spec: TargetSpec{"to": float64(1)}, wantContains: "got number"},
		{name: "object without execute", spec: TargetSpec{"to": map[string]any{"run": "ls"}}, wantContains: "got object"},
		{name: "non-string modifier", spec: TargetSpec{"to": "a", "with_modifier": true}, wantContains: "got bool"},
		{name: "mixed modifier list", spec: TargetSpec{"to": "a", "with_modifier": []any{"Shift", float64(2)}}, wantContains: "element 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tc.spec)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrMalformedDirective))
			assert.ErrorContains(t, err, tc.wantContains)

			var mde *MalformedDirectiveError
			require.ErrorAs(t, err, &mde)
			assert.Equal(t, tc.spec, mde.Spec)
		})
	}
}

func TestResolve_ScalarAndSingletonModifierAreEquivalent(t *testing.T) {
	t.Parallel()

	scalar, err := Resolve(TargetSpec{"to": "Left", "with_modifier": "Shift"})
	require.NoError(t, err)
	list, err := Resolve(TargetSpec{"to": "Left", "with_modifier": []any{"Shift"}})
	require.NoError(t, err)

	assert.Equal(t, scalar, list)
}

func TestResolve_CopiesModifiers(t *testing.T) {
	t.Parallel()

	mods := []string{"Shift", "Alt"}
	action, err := Resolve(TargetSpec{"to": "x", "with_modifier": mods})
	require.NoError(t, err)

	mods[0] = "Super"
	assert.Equal(t, []string{"Shift", "Alt"}, action.(KeyRemap).With)
}

func TestUnknownOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, UnknownOptions(TargetSpec{"to": "a", "with_modifier": "Shift"}))
	assert.Equal(t, []string{"alpha", "zeta"}, UnknownOptions(TargetSpec{"to": "a", "zeta": 1, "alpha": 2}))
}

func TestStringOrSlice(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   any
		want    []string
		wantErr bool
	}{
		{name: "nil", input: nil, want: []string{}},
		{name: "string", input: "chromium", want: []string{"chromium"}},
		{name: "empty string list", input: []any{}, want: []string{}},
		{name: "any list", input: []any{"a", "b"}, want: []string{"a", "b"}},
		{name: "string list", input: []string{"b", "a"}, want: []string{"b", "a"}},
		{name: "number", input: float64(3), wantErr: true},
		{name: "list with bool", input: []any{"a", false}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := StringOrSlice(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTargetSpecString(t *testing.T) {
	t.Parallel()

	spec := TargetSpec{"to": Execute("ls"), "foo": "bar", "with_modifier": nil}
	assert.Equal(t, `{foo: "bar", to: execute("ls"), with_modifier: null}`, spec.String())
}
