package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/arthur-debert/clitools/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// DefaultFileName is loaded from the working directory when no path is given.
const DefaultFileName = "config.toml"

// Config is a read-only view over a parsed TOML document.
// The document is never modified after Load.
type Config struct {
	path string
	data map[string]any
}

// Load reads and parses the configuration file at path.
// An empty path resolves to config.toml in the current working directory.
// The resolved path is always absolute.
func Load(path string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS is Load reading through fsys. The path is resolved against the
// process working directory either way.
func LoadFS(fsys afero.Fs, path string) (*Config, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")

	info, err := fsys.Stat(resolved)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrConfigNotFound, "configuration file not found at: %s", resolved).
				WithDetail("path", resolved)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat configuration file %s", resolved).
			WithDetail("path", resolved)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "configuration path is a directory: %s", resolved).
			WithDetail("path", resolved)
	}

	data, err := decodeFile(fsys, resolved)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", resolved).Int("keys", len(data)).Msg("Configuration loaded")

	return &Config{path: resolved, data: data}, nil
}

// ResolvePath returns the absolute path Load would read for path.
func ResolvePath(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		path = filepath.Join(cwd, DefaultFileName)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve configuration path %s", path)
	}
	return abs, nil
}

func decodeFile(fsys afero.Fs, path string) (map[string]any, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open configuration file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	var data map[string]any
	if err := toml.NewDecoder(f).Decode(&data); err != nil {
		formatErr := errors.Wrapf(err, errors.ErrConfigFormat, "malformed configuration file %s", path).
			WithDetail("path", path)

		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			line, column := decodeErr.Position()
			formatErr.WithDetail("line", line).WithDetail("column", column)
		}
		return nil, formatErr
	}

	// An empty file decodes to a nil map; the root must stay a table.
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

// Path returns the absolute path the document was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Data returns the whole document. Callers must not modify it.
func (c *Config) Data() map[string]any {
	return c.data
}

// String implements fmt.Stringer
func (c *Config) String() string {
	return fmt.Sprintf("Config(path=%s, data=%v)", c.path, c.data)
}

// Get walks the document along path.
//
// When a key along the path is missing, or the node reached so far is not a
// table, Get returns the fallback value if one was given with Or, and a
// KEY_NOT_FOUND error naming the key when fallback is Strict. An empty path
// returns the whole document.
func (c *Config) Get(path KeyPath, fallback Fallback) (any, error) {
	var node any = c.data
	for i, key := range path {
		table, ok := node.(map[string]any)
		if ok {
			node, ok = table[key]
		}
		if !ok {
			if fallback.IsStrict() {
				return nil, errors.Newf(errors.ErrKeyNotFound, "key '%s' not found in configuration", key).
					WithDetail("key", key).
					WithDetail("path", path[:i+1].String())
			}
			return fallback.Value(), nil
		}
	}
	return node, nil
}

// Lookup is Get with a strict fallback.
func (c *Config) Lookup(keys ...string) (any, error) {
	return c.Get(KeyPath(keys), Strict)
}

// LookupOr is Get with fallback returned on any miss.
func (c *Config) LookupOr(fallback any, keys ...string) any {
	// Get cannot fail with a non-strict fallback.
	value, _ := c.Get(KeyPath(keys), Or(fallback))
	return value
}

// GetMapping returns the table at path.
//
// The value found (or the fallback returned on a miss) must be a table. When
// valueKinds is non-empty every value in the table must be of at least one of
// those kinds. The returned map is the document's own table, not a copy.
func (c *Config) GetMapping(valueKinds []Kind, path KeyPath, fallback Fallback) (map[string]any, error) {
	value, err := c.Get(path, fallback)
	if err != nil {
		return nil, err
	}

	table, ok := value.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrTypeMismatch, "expected a table at `%s`, but found: %s", path, KindOf(value)).
			WithDetail("path", path.String()).
			WithDetail("actual", KindOf(value).String())
	}

	if len(valueKinds) == 0 {
		return table, nil
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		actual := KindOf(table[key])
		if !actual.In(valueKinds) {
			return nil, errors.Newf(errors.ErrTypeMismatch, "expected value of `%s` for key '%s', but found: %s",
				KindList(valueKinds), key, actual).
				WithDetail("path", path.String()).
				WithDetail("key", key).
				WithDetail("expected", KindList(valueKinds)).
				WithDetail("actual", actual.String())
		}
	}

	return table, nil
}
