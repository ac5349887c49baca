package cli

import (
	_ "embed"
	"strings"
)

// AppName is the binary name.
const AppName = "clitools"

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "CLI Tools: a starting point for command line tools"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man page"
	MsgConfigShort      = "Inspect the configuration file"
	MsgConfigGetShort   = "Print the value at a dotted key"
	MsgConfigTableShort = "Print a table, checking the kinds of its values"
	MsgConfigShowShort  = "Print the whole configuration"
	MsgConfigInitShort  = "Write a starter config.toml"
	MsgSetupShort       = "Turn this template into a new project"

	// Status messages
	MsgConfigWritten  = "Wrote %s\n"
	MsgSetupCancelled = "Setup cancelled, nothing was written."
	MsgSetupConfirm   = "Apply these changes?"

	// Prompts
	MsgPromptName        = "Project name"
	MsgPromptDisplayName = "Display name"
	MsgPromptModule      = "Go module path"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file (default ./config.toml)"
	MsgFlagDefault     = "Value printed when the key is missing"
	MsgFlagKinds       = "Allowed value kinds (string, integer, float, boolean, datetime, local-datetime, local-date, local-time, array, table)"
	MsgFlagOutput      = "Output format: toml, yaml or json"
	MsgFlagForce       = "Overwrite an existing file"
	MsgFlagDisplayName = "Human readable project name (default: the project name)"
	MsgFlagModule      = "Go module path (default: the template's with the new name)"
	MsgFlagRoot        = "Project root directory"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagYes         = "Apply without asking for confirmation"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimRight(msgSetupExampleRaw, "\n")

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")
)
