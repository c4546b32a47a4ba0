//go:build integration

package jndi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/openldap"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DirectoryContainer wraps an OpenLDAP container together with the
// DirectoryConfig tests use to reach it.
type DirectoryContainer struct {
	Container *openldap.OpenLDAPContainer
	Config    DirectoryConfig
	BaseDN    string
	ctx       context.Context
}

// SetupDirectoryContainer starts an OpenLDAP container for directory tests.
func SetupDirectoryContainer(t *testing.T) *DirectoryContainer {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "osixia/openldap:1.5.0",
		ExposedPorts: []string{"389/tcp", "636/tcp"},
		Env: map[string]string{
			"LDAP_ORGANISATION":    "Example Org",
			"LDAP_DOMAIN":          "example.org",
			"LDAP_ADMIN_PASSWORD":  "admin123",
			"LDAP_CONFIG_PASSWORD": "config123",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("slapd starting").WithStartupTimeout(120*time.Second).WithPollInterval(2*time.Second),
			wait.ForListeningPort("389/tcp").WithStartupTimeout(120*time.Second).WithPollInterval(2*time.Second),
		),
	}

	genericContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	container := &openldap.OpenLDAPContainer{
		Container: genericContainer,
	}

	host, err := genericContainer.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := genericContainer.MappedPort(ctx, "389/tcp")
	require.NoError(t, err)

	server := fmt.Sprintf("ldap://%s:%s", host, mappedPort.Port())

	return &DirectoryContainer{
		Container: container,
		BaseDN:    "dc=example,dc=org",
		ctx:       ctx,
		Config: DirectoryConfig{
			Server:      server,
			BaseDN:      "dc=example,dc=org",
			Username:    "cn=admin,dc=example,dc=org",
			Password:    "admin123",
			DialTimeout: 10 * time.Second,
		},
	}
}

// Close terminates the container.
func (dc *DirectoryContainer) Close(t *testing.T) {
	if dc.Container != nil {
		require.NoError(t, dc.Container.Terminate(dc.ctx))
	}
}

// WriteProperties writes a TestUtils.properties describing this container
// under base, plus extra content, and returns the home directory to load
// the fixture from.
func (dc *DirectoryContainer) WriteProperties(t *testing.T, base, extra string) string {
	content := fmt.Sprintf(`
%[1]s.jndiName = ldap/%[1]s
%[1]s.url      = %[2]s
%[1]s.baseDN   = %[3]s
%[1]s.username = %[4]s
%[1]s.password = %[5]s
%[6]s`, base, dc.Config.Server, dc.Config.BaseDN, dc.Config.Username, dc.Config.Password, extra)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0o600))
	return dir
}
