// Package dag is a small directed graph used to order script locals. An edge
// from A to B means B depends on A, so A must be evaluated first.
// TopologicalSort returns a deterministic order and fails on cycles.
package dag
