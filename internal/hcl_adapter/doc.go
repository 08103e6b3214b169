// Package hcl_adapter implements config.Loader for remapping scripts written
// in HCL, either native syntax or its JSON variant.
//
// A script is a sequence of top-level blocks:
//
//	compiler { required_version = ">= 0.3" }   // optional, once per file
//	locals   { keys = ["a", "b"] }             // evaluated in dependency order
//	remap "C-b" { to = "Left" }                // one remap directive
//	dynamic "remap" { ... }                    // remap loop, see ext/dynblock
//	window { class_only = ["firefox"] ... }    // per-application remaps
//
// Loading happens in two passes. The first gathers every locals block across
// all files and evaluates them in dependency order. The second walks each
// file's directive blocks top to bottom and replays them on a
// keymap.Evaluator, which owns the resulting Configuration.
package hcl_adapter
