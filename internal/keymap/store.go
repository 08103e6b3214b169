// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package keymap

import "fmt"

// ContextKind tells which tier of the Configuration is active.
type ContextKind int

const (
	// GlobalContext is the initial and terminal state of every evaluation.
	GlobalContext ContextKind = iota
	// ApplicationContext is active only for the duration of a window block.
	ApplicationContext
)

// ActiveContext names the RuleSet that remap directives write into.
type ActiveContext struct {
	Kind        ContextKind
	Application string
}

// GlobalScope returns the global context handle.
func GlobalScope() ActiveContext {
	return ActiveContext{Kind: GlobalContext}
}

// ApplicationScope returns the context handle for a window class.
func ApplicationScope(class string) ActiveContext {
	return ActiveContext{Kind: ApplicationContext, Application: class}
}

// String implements fmt.Stringer.
func (a ActiveContext) String() string {
	if a.Kind == ApplicationContext {
		return fmt.Sprintf("in_app[%q]", a.Application)
	}
	return "global"
}

// Store owns the Configuration under construction and the active context.
// It is not safe for concurrent use.
type Store struct {
	config *Configuration
	active ActiveContext
}

// NewStore returns a Store with an empty Configuration in the global context.
func NewStore() *Store {
	return &Store{
		config: NewConfiguration(),
		active: GlobalScope(),
	}
}

// Active returns the current context handle.
func (s *Store) Active() ActiveContext {
	return s.active
}

// Current returns the RuleSet selected by the active context.
func (s *Store) Current() RuleSet {
	if s.active.Kind == ApplicationContext {
		return s.config.Application(s.active.Application)
	}
	return s.config.Global
}

// ApplyKeyAction inserts or overwrites key in the current RuleSet.
func (s *Store) ApplyKeyAction(key string, action KeyAction) {
	s.Current()[key] = action
}

// Configuration returns the Configuration built so far.
func (s *Store) Configuration() *Configuration {
	return s.config
}

// EnterApplication runs block once per class name, in order, with the active
// context switched to that class. The global context is restored after each
// run, whether block returns, fails or panics. The first error stops the
// iteration.
func (s *Store) EnterApplication(classNames []string, block func(ActiveContext) error) error {
	if s.active.Kind != GlobalContext {
		return fmt.Errorf("%w: already in %s", ErrNestedWindow, s.active)
	}

	for _, name := range classNames {
		if err := s.withApplication(name, block); err != nil {
			return fmt.Errorf("window %q: %w", name, err)
		}
	}
	return nil
}

func (s *Store) withApplication(name string, block func(ActiveContext) error) error {
	s.config.Application(name)
	s.active = ApplicationScope(name)
	defer func() { s.active = GlobalScope() }()

	return block(s.active)
}
