//go:build !integration

package jndi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersDataSources(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantBindings []string
	}{
		{
			name:         "empty file yields empty registry",
			content:      "",
			wantBindings: nil,
		},
		{
			name: "no jndiName keys yields empty registry",
			content: `
some.property = value
another.url   = jdbc:h2:mem:unrelated
`,
			wantBindings: nil,
		},
		{
			name: "jdbc entry is bound under java:comp/env",
			content: `
myDS.jndiName        = jdbc/myDS
myDS.driverClassName = org.postgresql.Driver
myDS.url             = jdbc:postgresql://localhost/test
myDS.username        = tester
myDS.password        = secret
`,
			wantBindings: []string{"java:comp/env/jdbc/myDS"},
		},
		{
			name: "non-jdbc entry is skipped",
			content: `
myDir.jndiName = ldap/myDir
myDir.url      = ldap://localhost:389
`,
			wantBindings: nil,
		},
		{
			name: "mixed entries bind only the jdbc ones",
			content: `
one.jndiName   = jdbc/one
two.jndiName   = jdbc/two
three.jndiName = ldap/three
`,
			wantBindings: []string{"java:comp/env/jdbc/one", "java:comp/env/jdbc/two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture, err := New(WithHomeDir(writeProperties(t, tt.content)))
			require.NoError(t, err)

			if tt.wantBindings == nil {
				assert.Equal(t, 0, fixture.Registry().Len())
			} else {
				assert.Equal(t, tt.wantBindings, fixture.Registry().Names())
			}
		})
	}
}

func TestNewDataSourceFields(t *testing.T) {
	dir := writeProperties(t, `
myDS.jndiName        = jdbc/myDS
myDS.driverClassName = org.postgresql.Driver
myDS.url             = jdbc:postgresql://localhost/test
myDS.username        = tester
myDS.password        = secret
`)

	fixture, err := New(WithHomeDir(dir))
	require.NoError(t, err)

	ds, err := fixture.LookupDataSource("java:comp/env/jdbc/myDS")
	require.NoError(t, err)
	assert.Equal(t, "org.postgresql.Driver", ds.DriverClassName)
	assert.Equal(t, "jdbc:postgresql://localhost/test", ds.URL)
	assert.Equal(t, "tester", ds.Username)
	assert.Equal(t, "secret", ds.Password)
}

func TestNewMissingQuartetIsLenientByDefault(t *testing.T) {
	dir := writeProperties(t, `
myDS.jndiName = jdbc/myDS
myDS.url      = jdbc:h2:mem:test
`)

	fixture, err := New(WithHomeDir(dir))
	require.NoError(t, err)

	ds, err := fixture.LookupDataSource("java:comp/env/jdbc/myDS")
	require.NoError(t, err)
	assert.Equal(t, "", ds.DriverClassName)
	assert.Equal(t, "jdbc:h2:mem:test", ds.URL)
	assert.Equal(t, "", ds.Username)
	assert.Equal(t, "", ds.Password)
}

func TestNewStrictValidation(t *testing.T) {
	t.Run("incomplete quartet fails", func(t *testing.T) {
		dir := writeProperties(t, `
myDS.jndiName = jdbc/myDS
myDS.url      = jdbc:h2:mem:test
`)

		_, err := New(WithHomeDir(dir), WithStrictValidation())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIncompleteDataSource)
		assert.Contains(t, err.Error(), "driverClassName")
	})

	t.Run("complete quartet passes", func(t *testing.T) {
		dir := writeProperties(t, `
myDS.jndiName        = jdbc/myDS
myDS.driverClassName = org.h2.Driver
myDS.url             = jdbc:h2:mem:test
myDS.username        = sa
myDS.password        = sa
`)

		fixture, err := New(WithHomeDir(dir), WithStrictValidation())
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.Registry().Len())
	})
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(WithHomeDir(t.TempDir()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertiesFile)
	assert.True(t, IsPropertiesError(err))
}

func TestNewMalformedFile(t *testing.T) {
	dir := writeProperties(t, `bad = \uZZZZ`)

	_, err := New(WithHomeDir(dir))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertiesParse)
	assert.True(t, IsPropertiesError(err))
}

func TestFixtureActivationToggleKeepsBindings(t *testing.T) {
	dir := writeProperties(t, `
myDS.jndiName = jdbc/myDS
myDS.url      = jdbc:h2:mem:test
`)

	fixture, err := New(WithHomeDir(dir))
	require.NoError(t, err)
	require.Equal(t, 1, fixture.Registry().Len())

	fixture.Deactivate()
	require.NoError(t, fixture.Activate())

	ds, err := fixture.LookupDataSource("java:comp/env/jdbc/myDS")
	require.NoError(t, err)
	assert.Equal(t, "jdbc:h2:mem:test", ds.URL)
}

func TestFixtureProperties(t *testing.T) {
	dir := writeProperties(t, `
# arbitrary entries are passed through for ad-hoc test use
smtp.host = mail.example.com
smtp.port = 2525
`)

	fixture, err := New(WithHomeDir(dir))
	require.NoError(t, err)

	props := fixture.Properties()
	assert.Equal(t, "mail.example.com", props.GetString("smtp.host", ""))
	assert.Equal(t, 2525, props.GetInt("smtp.port", 0))
	assert.Equal(t, 0, fixture.Registry().Len())
}

func TestFixturePath(t *testing.T) {
	dir := writeProperties(t, "")

	fixture, err := New(WithHomeDir(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFileName), fixture.Path())
}

func TestLookupDataSourceTypeMismatch(t *testing.T) {
	dir := writeProperties(t, "")

	fixture, err := New(WithHomeDir(dir))
	require.NoError(t, err)

	fixture.Registry().Bind("java:comp/env/jdbc/notads", "just a string")

	_, err = fixture.LookupDataSource("java:comp/env/jdbc/notads")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotADataSource)
}

func TestWithRegistrySharesBindings(t *testing.T) {
	shared := NewRegistry()

	dirA := writeProperties(t, "a.jndiName = jdbc/a\n")
	dirB := writeProperties(t, "b.jndiName = jdbc/b\n")

	_, err := New(WithHomeDir(dirA), WithRegistry(shared))
	require.NoError(t, err)
	_, err = New(WithHomeDir(dirB), WithRegistry(shared))
	require.NoError(t, err)

	assert.Equal(t, []string{"java:comp/env/jdbc/a", "java:comp/env/jdbc/b"}, shared.Names())
}
