// Package cli builds the clitools command tree: global flags, lazy
// configuration loading, the config and setup commands and one command per
// registered tool.
package cli
