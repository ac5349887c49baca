package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.True(t, s.Logging.File)
	assert.Empty(t, s.Logging.Path)
	assert.Equal(t, "github.com/arthur-debert/clitools", s.Setup.ModulePath)
	assert.Equal(t, "clitools", s.Setup.Name)
	assert.Equal(t, "CLI Tools", s.Setup.DisplayName)
	assert.Equal(t, "cmd/clitools", s.Setup.PackageDir)
	assert.Contains(t, s.Setup.Files, "go.mod")
	assert.Contains(t, s.Setup.Files, "README.md")
	assert.Equal(t, []string{"cmd", "internal", "pkg"}, s.Setup.Dirs)
	assert.Equal(t, []string{".go", ".md", ".txt", ".toml"}, s.Setup.Extensions)
}

func TestLoad_SettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
file = false

[setup]
files = ["only.txt"]
`), 0644))

	s, err := Load(Options{File: path, SkipEnv: true})
	require.NoError(t, err)

	assert.False(t, s.Logging.File)
	assert.Equal(t, []string{"only.txt"}, s.Setup.Files)
	// Untouched keys keep their defaults.
	assert.Equal(t, "clitools", s.Setup.Name)
}

func TestLoad_MissingSettingsFileIsIgnored(t *testing.T) {
	s, err := Load(Options{File: filepath.Join(t.TempDir(), "absent.toml"), SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_MalformedSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging\n"), 0644))

	_, err := Load(Options{File: path, SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CLITOOLS_LOGGING__FILE", "false")
	t.Setenv("CLITOOLS_LOGGING__PATH", "/tmp/custom.log")
	t.Setenv("CLITOOLS_SETUP__PACKAGE_DIR", "cmd/other")

	s, err := Load(Options{SkipFile: true})
	require.NoError(t, err)

	assert.False(t, s.Logging.File)
	assert.Equal(t, "/tmp/custom.log", s.Logging.Path)
	assert.Equal(t, "cmd/other", s.Setup.PackageDir)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[setup]\nname = \"fromfile\"\n"), 0644))
	t.Setenv("CLITOOLS_SETUP__NAME", "fromenv")

	s, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "fromenv", s.Setup.Name)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CLITOOLS_LOGGING__FILE", "logging.file"},
		{"CLITOOLS_SETUP__PACKAGE_DIR", "setup.package_dir"},
		{"CLITOOLS_SETUP__MODULE_PATH", "setup.module_path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestDefaultFile(t *testing.T) {
	assert.Equal(t, "settings.toml", filepath.Base(DefaultFile()))
	assert.Equal(t, "clitools", filepath.Base(filepath.Dir(DefaultFile())))
}
