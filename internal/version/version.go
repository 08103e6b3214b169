// Package version holds the remapc release version. Release builds override
// Version with -ldflags "-X github.com/vk/remapc/internal/version.Version=...".
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the semantic version of this build.
var Version = "0.3.0"

// Semver parses Version.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", Version, err)
	}
	return v, nil
}

// Satisfies reports whether this build meets constraint, e.g. ">= 0.3, < 1".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := Semver()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
