package jndi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DirectoryConfig describes a directory server used by LDAP tests. It is
// assembled from the properties file using the same base-name convention as
// data sources:
//
//	corp.url               = ldaps://ldap.example.com:636
//	corp.baseDN            = dc=example,dc=com
//	corp.username          = cn=admin,dc=example,dc=com
//	corp.password          = secret
//	corp.isActiveDirectory = true
//
// The mock registry is not compatible with real LDAP connections, so
// deactivate the fixture before calling Connect.
type DirectoryConfig struct {
	Server            string
	BaseDN            string
	Username          string
	Password          string
	IsActiveDirectory bool
	DialTimeout       time.Duration

	logger *slog.Logger
}

// DirectoryConfig builds a directory configuration from the properties
// registered under base. It fails with ErrDirectoryNotDefined when
// <base>.url is absent; the remaining sub-keys are optional and an empty
// username skips the authenticated bind on Connect.
func (f *Fixture) DirectoryConfig(base string) (*DirectoryConfig, error) {
	server := f.props.GetString(base+".url", "")
	if server == "" {
		return nil, NewFixtureError("DirectoryConfig", ErrDirectoryNotDefined).WithName(base)
	}

	return &DirectoryConfig{
		Server:            server,
		BaseDN:            f.props.GetString(base+".baseDN", ""),
		Username:          f.props.GetString(base+".username", ""),
		Password:          f.props.GetString(base+".password", ""),
		IsActiveDirectory: f.props.GetBool(base+".isActiveDirectory", false),
		DialTimeout:       10 * time.Second,
		logger:            f.logger,
	}, nil
}

// Connect dials the directory server and performs a simple bind when a
// username is configured. The caller owns the returned connection and must
// Close it.
func (c *DirectoryConfig) Connect(ctx context.Context) (*ldap.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewFixtureError("Connect", err).WithName(c.Server)
	}

	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	dialer := &net.Dialer{Timeout: c.DialTimeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := ldap.DialURL(c.Server, ldap.DialWithDialer(dialer))
	if err != nil {
		logger.Error("directory_connect_failed",
			slog.String("server", c.Server),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return nil, NewFixtureError("Connect", err).WithName(c.Server)
	}

	if c.Username != "" {
		if err := conn.Bind(c.Username, c.Password); err != nil {
			conn.Close()
			logger.Error("directory_bind_failed",
				slog.String("server", c.Server),
				slog.String("username", c.Username),
				slog.Duration("duration", time.Since(start)))
			return nil, NewFixtureError("Connect", err).WithName(c.Server)
		}
	}

	logger.Debug("directory_connected",
		slog.String("server", c.Server),
		slog.String("base_dn", c.BaseDN),
		slog.Bool("is_active_directory", c.IsActiveDirectory),
		slog.Duration("duration", time.Since(start)))
	return conn, nil
}

// EncodeUnicodePwd encodes a password for the Active Directory unicodePwd
// attribute: the quoted password as UTF-16 little endian. Tests seeding AD
// users over LDAPS need this form.
func EncodeUnicodePwd(password string) (string, error) {
	encoded, err := utf16le.NewEncoder().String("\"" + password + "\"")
	if err != nil {
		return "", fmt.Errorf("encoding password: %w", err)
	}
	return encoded, nil
}
