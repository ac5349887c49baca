// Package settings handles configuration of the clitools command itself:
// logging and the placeholders used by the setup command.
// Layers are loaded with koanf from the embedded defaults, an optional TOML
// file under the XDG config directory and CLITOOLS_* environment variables.
package settings
