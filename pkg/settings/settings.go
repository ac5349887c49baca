package settings

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	clierrors "github.com/arthur-debert/clitools/pkg/errors"
	"github.com/arthur-debert/clitools/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override settings.
const EnvPrefix = "CLITOOLS_"

//go:embed defaults.toml
var defaultSettings []byte

// Settings configures the clitools command itself. It is separate from the
// user's config.toml, which tools read through pkg/config.
type Settings struct {
	Logging Logging `koanf:"logging"`
	Setup   Setup   `koanf:"setup"`
}

// Logging controls the log file.
type Logging struct {
	File bool   `koanf:"file"`
	Path string `koanf:"path"`
}

// Setup lists the template files and placeholders used by `clitools setup`.
type Setup struct {
	ModulePath  string   `koanf:"module_path"`
	Name        string   `koanf:"name"`
	DisplayName string   `koanf:"display_name"`
	Files       []string `koanf:"files"`
	Dirs        []string `koanf:"dirs"`
	Extensions  []string `koanf:"extensions"`
	PackageDir  string   `koanf:"package_dir"`
}

// Options selects the layers Load reads.
type Options struct {
	// File is the user settings file. Empty means DefaultFile().
	File string
	// SkipFile ignores the settings file.
	SkipFile bool
	// SkipEnv ignores CLITOOLS_* environment variables.
	SkipEnv bool
}

// DefaultFile returns $XDG_CONFIG_HOME/clitools/settings.toml.
func DefaultFile() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "settings.toml")
}

// Load layers the embedded defaults, the settings file if it exists, and the
// environment, in that order.
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("settings")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, clierrors.Wrap(err, clierrors.ErrSettingsLoad, "failed to load default settings")
	}

	// 2. User settings file, if present
	path := opts.File
	if path == "" {
		path = DefaultFile()
	}
	if _, err := os.Stat(path); err == nil && !opts.SkipFile {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, clierrors.Wrapf(err, clierrors.ErrSettingsLoad, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	}

	// 3. Environment overrides
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, clierrors.Wrap(err, clierrors.ErrSettingsLoad, "failed to load settings from environment")
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, clierrors.Wrap(err, clierrors.ErrSettingsLoad, "failed to decode settings")
	}
	return &s, nil
}

// Default returns the embedded defaults alone.
func Default() *Settings {
	s, err := Load(Options{SkipFile: true, SkipEnv: true})
	if err != nil {
		// defaults.toml is compiled in; an error here is a broken build.
		panic(err)
	}
	return s
}

// envKey maps CLITOOLS_SETUP__PACKAGE_DIR to setup.package_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
