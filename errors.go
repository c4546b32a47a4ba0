package jndi

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for fixture and registry failures.
// These provide a stable API for error classification with errors.Is.
var (
	// Properties file errors
	ErrPropertiesFile  = errors.New("jndi: properties file unreadable")
	ErrPropertiesParse = errors.New("jndi: properties file malformed")

	// Registry errors
	ErrRegistryActive   = errors.New("jndi: registry already active")
	ErrRegistryInactive = errors.New("jndi: registry not active")
	ErrNotBound         = errors.New("jndi: name not bound")

	// Data source errors
	ErrIncompleteDataSource = errors.New("jndi: incomplete data source definition")
	ErrNotADataSource       = errors.New("jndi: bound object is not a data source")

	// Directory errors
	ErrDirectoryNotDefined = errors.New("jndi: directory connection not defined")
)

// FixtureError represents an enhanced error with context for fixture operations.
// It wraps underlying errors while providing operation-specific context for debugging.
type FixtureError struct {
	// Op is the operation name (e.g., "New", "Bind", "DirectoryConfig")
	Op string
	// Path is the properties file path involved in the operation (if applicable)
	Path string
	// Name is the JNDI name or property base name involved (if applicable)
	Name string
	// Err is the underlying error
	Err error
	// Timestamp indicates when the error occurred
	Timestamp time.Time
}

// Error implements the error interface, providing a formatted error message.
func (e *FixtureError) Error() string {
	switch {
	case e.Path != "" && e.Name != "":
		return fmt.Sprintf("jndi %s failed for %q in %q: %v", e.Op, e.Name, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("jndi %s failed for %q: %v", e.Op, e.Path, e.Err)
	case e.Name != "":
		return fmt.Sprintf("jndi %s failed for %q: %v", e.Op, e.Name, e.Err)
	default:
		return fmt.Sprintf("jndi %s failed: %v", e.Op, e.Err)
	}
}

// Unwrap implements the Go 1.13+ error unwrapping interface.
func (e *FixtureError) Unwrap() error {
	return e.Err
}

// Is implements the Go 1.13+ error comparison interface for compatibility with errors.Is.
func (e *FixtureError) Is(target error) bool {
	if fixErr, ok := target.(*FixtureError); ok {
		return e.Op == fixErr.Op && e.Name == fixErr.Name
	}
	return errors.Is(e.Err, target)
}

// NewFixtureError creates a new enhanced fixture error with the specified context.
func NewFixtureError(op string, err error) *FixtureError {
	return &FixtureError{
		Op:        op,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// WithPath adds the properties file path to the error context.
func (e *FixtureError) WithPath(path string) *FixtureError {
	e.Path = path
	return e
}

// WithName adds a JNDI name or property base name to the error context.
func (e *FixtureError) WithName(name string) *FixtureError {
	e.Name = name
	return e
}

// IsPropertiesError reports whether err stems from reading or parsing the
// properties file.
func IsPropertiesError(err error) bool {
	return errors.Is(err, ErrPropertiesFile) || errors.Is(err, ErrPropertiesParse)
}

// IsRegistryError reports whether err stems from registry state or lookups.
func IsRegistryError(err error) bool {
	return errors.Is(err, ErrRegistryActive) ||
		errors.Is(err, ErrRegistryInactive) ||
		errors.Is(err, ErrNotBound)
}

// ExtractOperation extracts the operation name from a fixture error, or ""
// when err carries no fixture context.
func ExtractOperation(err error) string {
	var fixErr *FixtureError
	if errors.As(err, &fixErr) {
		return fixErr.Op
	}
	return ""
}

// ExtractPath extracts the properties file path from a fixture error, or ""
// when err carries no fixture context.
func ExtractPath(err error) string {
	var fixErr *FixtureError
	if errors.As(err, &fixErr) {
		return fixErr.Path
	}
	return ""
}
