// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package keymap

import "sort"

// RuleSet maps a trigger key to the action it performs.
type RuleSet map[string]KeyAction

// Configuration is the two-tier result of evaluating a script.
type Configuration struct {
	// Global holds the rules that apply in every application.
	Global RuleSet
	// InApp holds per-application overrides, keyed by window class name.
	InApp map[string]RuleSet
}

// NewConfiguration returns an empty Configuration with both tiers allocated.
func NewConfiguration() *Configuration {
	return &Configuration{
		Global: make(RuleSet),
		InApp:  make(map[string]RuleSet),
	}
}

// Application returns the RuleSet for class, creating it on first reference.
// Later calls with the same class return the same RuleSet.
func (c *Configuration) Application(class string) RuleSet {
	rules, ok := c.InApp[class]
	if !ok {
		rules = make(RuleSet)
		c.InApp[class] = rules
	}
	return rules
}

// Applications returns the sorted class names that have a RuleSet.
func (c *Configuration) Applications() []string {
	names := make([]string, 0, len(c.InApp))
	for name := range c.InApp {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
