// Package config defines the boundary between remapc and the formats it
// reads: the Loader interface implemented by script loaders, and the
// Settings file that supplies defaults for command-line flags.
package config
