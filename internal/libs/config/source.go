package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Source looks up raw configuration values by variable name.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a lookup function to Source.
type SourceFunc func(key string) (string, bool)

// Lookup calls f.
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// Environ reads the process environment.
var Environ Source = SourceFunc(os.LookupEnv)

// MapSource serves values from a map.
type MapSource map[string]string

// Lookup returns the mapped value.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Layered consults each source in order; the first one that has the key
// wins, even when its value is empty.
type Layered []Source

// Lookup returns the first hit.
func (l Layered) Lookup(key string) (string, bool) {
	for _, src := range l {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// DotenvFiles returns the dotenv files consulted for mode, lowest
// priority first. Local overrides are not read in test mode.
func DotenvFiles(mode Mode) []string {
	files := []string{".env"}
	if mode != ModeTest {
		files = append(files, ".env.local")
	}
	if mode != "" {
		files = append(files, ".env."+string(mode))
		if mode != ModeTest {
			files = append(files, ".env."+string(mode)+".local")
		}
	}
	return files
}

// ReadDotenv merges the dotenv files for mode found in dir. Later files
// override earlier ones. Missing files are skipped.
func ReadDotenv(dir string, mode Mode) (MapSource, error) {
	merged := MapSource{}
	for _, name := range DotenvFiles(mode) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for k, v := range values {
			merged[k] = v
		}
	}
	return merged, nil
}
