// Package params implements the build parameter store on top of koanf.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
)

// delim separates nested parameter names, e.g. "training.src".
const delim = "."

var (
	_ ports.Parameters      = (*Store)(nil)
	_ ports.ParameterLoader = (*Loader)(nil)
)

// Store is a read-only view of loaded build parameters.
type Store struct {
	k *koanf.Koanf
}

// Get returns the value of name, or fallback when name is unset.
func (s *Store) Get(name, fallback string) string {
	if v, ok := s.Lookup(name); ok {
		return v
	}
	return fallback
}

// Lookup returns the value of name and whether it is set.
// Scalars are returned as written in the file; lists and maps are encoded as
// compact JSON.
func (s *Store) Lookup(name string) (string, bool) {
	if !s.k.Exists(name) {
		return "", false
	}
	return stringify(s.k.Get(name)), true
}

// Keys returns every leaf parameter name in sorted order.
func (s *Store) Keys() []string {
	return s.k.Keys()
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case scalar:
		return string(t)
	case nil:
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// Loader reads parameters from a YAML file overlaid with environment variables.
type Loader struct {
	envPrefix string
}

// NewLoader creates a Loader using the default environment prefix.
func NewLoader() *Loader {
	return &Loader{envPrefix: domain.ParameterEnvPrefix}
}

// WithEnvPrefix overrides the environment variable prefix.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load reads the parameters file at path, then applies environment overrides.
// Variable names match file keys case-insensitively; names not in the file are
// lowercased. An empty path skips the file.
func (l *Loader) Load(path string) (ports.Parameters, error) {
	k := koanf.New(delim)

	if path != "" {
		if err := k.Load(file.Provider(path), scalarParser{}); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, errors.Join(domain.ErrParametersReadFailed, zerr.With(zerr.Wrap(err, domain.ErrParametersReadFailed.Error()), "path", path))
			}
			return nil, errors.Join(domain.ErrParametersParseFailed, zerr.With(zerr.Wrap(err, domain.ErrParametersParseFailed.Error()), "path", path))
		}
	}

	if l.envPrefix != "" {
		prefix := l.envPrefix
		known := make(map[string]string)
		for _, key := range k.Keys() {
			known[strings.ToLower(key)] = key
		}
		err := k.Load(env.Provider(prefix, delim, func(s string) string {
			name := strings.ToLower(strings.TrimPrefix(s, prefix))
			name = strings.ReplaceAll(name, "__", delim)
			if key, ok := known[name]; ok {
				return key
			}
			return name
		}), nil)
		if err != nil {
			return nil, errors.Join(domain.ErrParametersReadFailed, zerr.Wrap(err, domain.ErrParametersReadFailed.Error()))
		}
	}

	return &Store{k: k}, nil
}
