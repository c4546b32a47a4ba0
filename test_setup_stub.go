//go:build !integration
// +build !integration

package jndi

import (
	"testing"
)

// DirectoryContainer is a stub for non-integration builds
type DirectoryContainer struct {
	Config DirectoryConfig
	BaseDN string
}

// SetupDirectoryContainer creates a directory test container.
// This is a stub implementation - actual integration tests require Docker.
func SetupDirectoryContainer(t *testing.T) *DirectoryContainer {
	t.Skip("Integration tests require Docker container setup")
	return &DirectoryContainer{
		BaseDN: "dc=example,dc=org",
		Config: DirectoryConfig{
			Server: "ldap://localhost:389",
			BaseDN: "dc=example,dc=org",
		},
	}
}

// Close closes the test container
func (dc *DirectoryContainer) Close(t *testing.T) {}

// WriteProperties is a stub for non-integration builds
func (dc *DirectoryContainer) WriteProperties(t *testing.T, base, extra string) string {
	t.Skip("Integration tests require Docker container setup")
	return ""
}
