// Package jndi configuration follows the functional options pattern used
// throughout the netresearch Go libraries.
package jndi

import (
	"log/slog"
	"path/filepath"
)

// Option represents a functional option for configuring a Fixture.
type Option func(*Fixture)

// WithLogger sets a custom structured logger for fixture and registry
// operations. If not provided, slog.Default() is used.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	fixture, err := jndi.New(jndi.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fixture) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithPath overrides the full path of the properties file. The default is
// TestUtils.properties in the user's home directory.
func WithPath(path string) Option {
	return func(f *Fixture) {
		f.path = path
	}
}

// WithHomeDir resolves the properties file against dir instead of the user's
// home directory, keeping the default file name.
func WithHomeDir(dir string) Option {
	return func(f *Fixture) {
		f.path = filepath.Join(dir, DefaultFileName)
	}
}

// WithStrictValidation makes a data-source definition with missing
// driverClassName/url/username/password sub-keys a construction error.
// Without this option missing sub-keys silently become empty descriptor
// fields, matching the behavior of the original Java fixture.
func WithStrictValidation() Option {
	return func(f *Fixture) {
		f.strict = true
	}
}

// WithRegistry binds data sources into an existing registry instead of a
// fresh one, for tests that share one registry across several fixtures.
func WithRegistry(registry *Registry) Option {
	return func(f *Fixture) {
		if registry != nil {
			f.registry = registry
		}
	}
}

// WithReadFile replaces the function used to read the properties file.
// Tests use this to count reads or to supply in-memory file content.
func WithReadFile(readFile ReadFileFunc) Option {
	return func(f *Fixture) {
		if readFile != nil {
			f.readFile = readFile
		}
	}
}
