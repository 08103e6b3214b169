// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package keymap

import (
	"errors"
	"log/slog"
)

// Evaluator executes remap and window directives against a Store. A fresh
// Evaluator is used for every script.
type Evaluator struct {
	store  *Store
	logger *slog.Logger
}

// NewEvaluator creates an Evaluator in the global context. A nil logger
// discards all output.
func NewEvaluator(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{
		store:  NewStore(),
		logger: logger,
	}
}

// Remap resolves spec and records the resulting action for key in the active
// context. A MalformedDirectiveError is returned with Key filled in.
func (e *Evaluator) Remap(key string, spec TargetSpec) error {
	action, err := Resolve(spec)
	if err != nil {
		var mde *MalformedDirectiveError
		if errors.As(err, &mde) {
			mde.Key = key
		}
		return err
	}

	active := e.store.Active().String()
	if ignored := UnknownOptions(spec); len(ignored) > 0 {
		e.logger.Warn("Ignoring unrecognized remap options.", "key", key, "options", ignored, "context", active)
	}
	if _, exists := e.store.Current()[key]; exists {
		e.logger.Debug("Overwriting earlier remap.", "key", key, "context", active)
	}

	e.store.ApplyKeyAction(key, action)
	e.logger.Debug("Remap recorded.", "key", key, "context", active)
	return nil
}

// Window runs block once per class in classOnly with that application as the
// active context.
func (e *Evaluator) Window(classOnly []string, block func() error) error {
	return e.store.EnterApplication(classOnly, func(active ActiveContext) error {
		e.logger.Debug("Entering application context.", "class", active.Application)
		return block()
	})
}

// Execute is the directive form of the package-level Execute.
func (e *Evaluator) Execute(command string) Execution {
	return Execute(command)
}

// Active returns the current context handle.
func (e *Evaluator) Active() ActiveContext {
	return e.store.Active()
}

// Configuration returns the Configuration built so far.
func (e *Evaluator) Configuration() *Configuration {
	return e.store.Configuration()
}
