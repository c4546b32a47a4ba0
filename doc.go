// Package jndi provides a mock JNDI-style naming context for Go test code
// that needs a populated naming registry without a full application server.
//
// Properties are loaded from a file named TestUtils.properties in the
// user's home directory. Property names with a ".jndiName" suffix and a
// value starting with "jdbc/" are trimmed of that suffix to determine a
// base name, and a data source is assembled from the properties
//   - {base name}.driverClassName
//   - {base name}.url
//   - {base name}.username
//   - {base name}.password
//
// and bound into the registry under "java:comp/env/" plus the value.
//
// # Basic Usage
//
//	fixture, err := jndi.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ds, err := fixture.LookupDataSource("java:comp/env/jdbc/myDS")
//	if err != nil {
//		log.Printf("lookup failed: %v", err)
//		return
//	}
//	fmt.Printf("connecting to %s as %s\n", ds.URL, ds.Username)
//
// Data sources must be registered before the code under test resolves them,
// so call Default during test setup (TestMain or a sync.Once guarded
// helper).
//
// The mock naming context is not compatible with real LDAP connections.
// Deactivate the fixture before running directory tests and reactivate it
// afterwards; bindings survive the toggle:
//
//	fixture.Deactivate()
//	defer func() { _ = fixture.Activate() }()
//
//	cfg, err := fixture.DirectoryConfig("corp")
//	if err != nil {
//		log.Fatal(err)
//	}
//	conn, err := cfg.Connect(ctx)
//
// Any other entries in TestUtils.properties are available through
// Properties() for ad-hoc test use.
package jndi
