package jndi

import (
	"fmt"
	"strings"
)

// DataSource describes how a test connects to a database. It mirrors the
// four-property convention of the TestUtils.properties file:
//
//	myDS.jndiName        = jdbc/myDS
//	myDS.driverClassName = org.postgresql.Driver
//	myDS.url             = jdbc:postgresql://localhost/test
//	myDS.username        = tester
//	myDS.password        = secret
//
// It is a plain value record bound into the registry, not a live connection
// or a pool.
type DataSource struct {
	DriverClassName string
	URL             string
	Username        string
	Password        string
}

// Validate reports the property sub-keys missing from the data source
// definition. The zero value for a field means the corresponding
// <base>.driverClassName/.url/.username/.password entry was absent.
func (ds *DataSource) Validate() error {
	var missing []string
	if ds.DriverClassName == "" {
		missing = append(missing, "driverClassName")
	}
	if ds.URL == "" {
		missing = append(missing, "url")
	}
	if ds.Username == "" {
		missing = append(missing, "username")
	}
	if ds.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteDataSource, strings.Join(missing, ", "))
	}
	return nil
}

// String implements fmt.Stringer with the password masked for safe logging.
func (ds *DataSource) String() string {
	return fmt.Sprintf("DataSource{driver: %s, url: %s, username: %s, password: %s}",
		ds.DriverClassName, ds.URL, ds.Username, maskSensitiveData(ds.Password))
}

// maskSensitiveData masks sensitive information for logging
func maskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 4 {
		return strings.Repeat("*", len(data))
	}
	// Show first and last character, mask the middle
	return data[:1] + strings.Repeat("*", len(data)-2) + data[len(data)-1:]
}
