package jndi

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/magiconair/properties"
)

// DefaultFileName is the properties file the fixture loads from the user's
// home directory.
const DefaultFileName = "TestUtils.properties"

// ReadFileFunc reads the raw bytes of a properties file. It exists so tests
// can count or fake file reads; the default is os.ReadFile.
type ReadFileFunc func(path string) ([]byte, error)

// DefaultPath returns the default properties file location,
// <home>/TestUtils.properties.
func DefaultPath() string {
	return filepath.Join(xdg.Home, DefaultFileName)
}

// loadProperties reads and parses the file at path. Java property files are
// ISO 8859-1 and do not expand ${...} references, so both behaviors are
// matched here. Read failures (including a missing file) wrap
// ErrPropertiesFile, parse failures wrap ErrPropertiesParse.
func loadProperties(readFile ReadFileFunc, path string) (*properties.Properties, error) {
	if readFile == nil {
		readFile = os.ReadFile
	}

	data, err := readFile(path)
	if err != nil {
		return nil, NewFixtureError("LoadProperties", fmt.Errorf("%w: %w", ErrPropertiesFile, err)).WithPath(path)
	}

	loader := &properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, NewFixtureError("LoadProperties", fmt.Errorf("%w: %w", ErrPropertiesParse, err)).WithPath(path)
	}
	return props, nil
}
