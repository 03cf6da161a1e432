// Package config provides the optional options file loader for otpsync.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads the YAML options file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the options file. When explicitPath is set the file must
// exist; otherwise otpsync.yaml is looked up in the current working
// directory and a missing file simply yields nil, so built-in defaults
// apply.
func (l *Loader) Load(explicitPath string) (*File, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(".", domain.ConfigFileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the CLI flag or cwd
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(wrapped, "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(wrapped, "path", path)
	}

	return &file, nil
}
