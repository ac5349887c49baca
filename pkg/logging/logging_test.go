package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "state", "clitools.log")

			Setup(Options{Verbosity: tt.verbosity, LogFile: logPath, Console: &bytes.Buffer{}})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetup_WritesToConsoleAndFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "clitools.log")
	var console bytes.Buffer

	Setup(Options{Verbosity: 1, LogFile: logPath, Console: &console})
	logger := GetLogger("test-component")
	logger.Info().Msg("hello from test")

	assert.Contains(t, console.String(), "hello from test")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test-component"`)
	assert.Contains(t, string(data), "hello from test")
}

func TestSetup_DisableFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "never.log")

	Setup(Options{Verbosity: 1, LogFile: logPath, DisableFile: true, Console: &bytes.Buffer{}})

	_, err := os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "log file should not be created")
}

func TestSetup_UnwritableLogFileFallsBackToConsole(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	var console bytes.Buffer

	// A regular file where the log directory should be makes MkdirAll fail.
	Setup(Options{LogFile: filepath.Join(blocker, "sub", "clitools.log"), Console: &console})

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestDefaultLogFilePath(t *testing.T) {
	got := DefaultLogFilePath()

	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	assert.True(t, strings.HasSuffix(filepath.ToSlash(got), "clitools/clitools.log"), "got %s", got)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("greet", []string{"--name", "ada"})

	output := buf.String()
	assert.Contains(t, output, "greet")
	assert.Contains(t, output, "--name")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "setup")
	time.Sleep(time.Millisecond)
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
