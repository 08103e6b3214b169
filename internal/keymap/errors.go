// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package keymap

import (
	"errors"
	"fmt"
)

// ErrMalformedDirective matches every MalformedDirectiveError via errors.Is.
var ErrMalformedDirective = errors.New("malformed directive")

// ErrNestedWindow is returned when a window is entered while another
// application context is still active.
var ErrNestedWindow = errors.New("window blocks cannot be nested")

// MalformedDirectiveError reports remap options that match none of the
// recognized action shapes.
type MalformedDirectiveError struct {
	Key    string
	Spec   TargetSpec
	Reason string
}

// Error implements the error interface.
func (e *MalformedDirectiveError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s: unexpected action %s", ErrMalformedDirective, e.Reason, e.Spec)
	}
	return fmt.Sprintf("%s: remap %q: %s: unexpected action %s", ErrMalformedDirective, e.Key, e.Reason, e.Spec)
}

// Unwrap lets errors.Is match ErrMalformedDirective.
func (e *MalformedDirectiveError) Unwrap() error {
	return ErrMalformedDirective
}

func malformed(spec TargetSpec, format string, args ...any) *MalformedDirectiveError {
	return &MalformedDirectiveError{
		Spec:   spec,
		Reason: fmt.Sprintf(format, args...),
	}
}
