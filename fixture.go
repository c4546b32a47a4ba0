package jndi

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/magiconair/properties"
)

const (
	// jndiNameSuffix marks a property as a naming-context entry.
	jndiNameSuffix = ".jndiName"
	// jdbcPrefix selects the entries that become data-source bindings.
	jdbcPrefix = "jdbc/"
	// envPrefix is the synthetic path prefix application code looks up,
	// matching the java:comp/env namespace of a real container.
	envPrefix = "java:comp/env/"
)

// Fixture loads TestUtils.properties and populates a mock naming registry
// with the data sources it defines, so tests that expect a populated naming
// context can run without a full application server.
//
// Data sources must be registered before the code under test resolves them,
// so the recommended use is to call Default in TestMain or a package-level
// setup helper. The fixture is immutable after construction: the properties
// are read once and never refreshed.
type Fixture struct {
	path     string
	props    *properties.Properties
	registry *Registry
	logger   *slog.Logger
	strict   bool
	readFile ReadFileFunc
}

var (
	defaultOnce    sync.Once
	defaultFixture *Fixture
	defaultErr     error
)

// Default returns the process-wide fixture, constructing it on first call.
// Construction reads the properties file exactly once; concurrent first
// calls are serialized and every caller receives the same instance. A
// construction failure is sticky and returned to all subsequent callers.
//
// Options are applied only by the call that performs construction.
func Default(opts ...Option) (*Fixture, error) {
	defaultOnce.Do(func() {
		defaultFixture, defaultErr = New(opts...)
	})
	return defaultFixture, defaultErr
}

// New creates a fixture: it loads the properties file, creates an empty
// activated registry and binds a data source for every well-formed
// <base>.jndiName entry whose value starts with "jdbc/".
//
// A missing or unreadable properties file is an error; the fixture never
// starts from an empty configuration silently.
func New(opts ...Option) (*Fixture, error) {
	start := time.Now()

	f := &Fixture{
		logger:   slog.Default(),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.path == "" {
		f.path = DefaultPath()
	}
	f.registry.logger = f.logger

	props, err := loadProperties(f.readFile, f.path)
	if err != nil {
		f.logger.Error("fixture_load_failed",
			slog.String("path", f.path),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return nil, err
	}
	f.props = props

	if err := f.registerDataSources(); err != nil {
		return nil, err
	}

	f.logger.Info("fixture_loaded",
		slog.String("path", f.path),
		slog.Int("properties", f.props.Len()),
		slog.Int("bindings", f.registry.Len()),
		slog.Duration("duration", time.Since(start)))
	return f, nil
}

// registerDataSources scans the loaded properties for ".jndiName" keys and
// binds a DataSource under "java:comp/env/" plus the entry's value for every
// value starting with "jdbc/". Values with any other prefix (e.g. "ldap/")
// are skipped without feedback; that filter is part of the file's contract.
func (f *Fixture) registerDataSources() error {
	for _, key := range f.props.Keys() {
		if !strings.HasSuffix(key, jndiNameSuffix) {
			continue
		}
		base := strings.TrimSuffix(key, jndiNameSuffix)
		value := f.props.GetString(key, "")
		if !strings.HasPrefix(value, jdbcPrefix) {
			continue
		}

		ds := &DataSource{
			DriverClassName: f.props.GetString(base+".driverClassName", ""),
			URL:             f.props.GetString(base+".url", ""),
			Username:        f.props.GetString(base+".username", ""),
			Password:        f.props.GetString(base+".password", ""),
		}
		if f.strict {
			if err := ds.Validate(); err != nil {
				return NewFixtureError("New", err).WithPath(f.path).WithName(base)
			}
		}

		name := envPrefix + value
		f.registry.Bind(name, ds)
		f.logger.Debug("datasource_bound",
			slog.String("name", name),
			slog.String("base", base),
			slog.String("url", ds.URL))
	}
	return nil
}

// Activate turns the mock registry on for lookups. It fails when the
// registry is already active.
func (f *Fixture) Activate() error {
	return f.registry.Activate()
}

// Deactivate turns the mock registry off. The mock naming context is not
// compatible with LDAP connections, so deactivate the fixture before running
// directory tests. Bindings are kept and become reachable again after
// Activate.
func (f *Fixture) Deactivate() {
	f.registry.Deactivate()
}

// Registry returns the shared mock naming registry. The handle is shared
// with the fixture and with every other caller; do not assume exclusive
// control.
func (f *Fixture) Registry() *Registry {
	return f.registry
}

// Properties returns the loaded configuration set. Any extra entries in
// TestUtils.properties beyond the data-source convention are available here
// for ad-hoc test use.
func (f *Fixture) Properties() *properties.Properties {
	return f.props
}

// Path returns the properties file the fixture was loaded from.
func (f *Fixture) Path() string {
	return f.path
}

// LookupDataSource resolves name through the registry and asserts the bound
// object is a DataSource.
func (f *Fixture) LookupDataSource(name string) (*DataSource, error) {
	value, err := f.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	ds, ok := value.(*DataSource)
	if !ok {
		return nil, NewFixtureError("LookupDataSource", ErrNotADataSource).WithName(name)
	}
	return ds, nil
}
