// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package keymap is the evaluator at the heart of remapc. It turns the
// directives of a remapping script (remap, window, execute) into a two-tier
// Configuration: global rules and per-application rule overrides.
//
// # Core Concepts
//
//   - KeyAction: the normalized result of a single remap directive. It is
//     either a KeyRemap (emit another key, optionally with modifiers) or an
//     Execution (run a shell command instead).
//
//   - RuleSet: trigger key -> KeyAction. A later remap of the same key in the
//     same context overwrites the earlier one.
//
//   - Configuration: the global RuleSet plus one RuleSet per application
//     window class, created lazily on first reference.
//
//   - ActiveContext: the explicit handle naming which RuleSet remap writes
//     into. It is global except for the duration of a window block.
//
// The package knows nothing about the script syntax. Loaders (see the
// hcl_adapter package) translate their input into calls on an Evaluator, and
// the render package turns the final Configuration into the wire format.
package keymap
