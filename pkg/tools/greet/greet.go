// Package greet is the example tool shipped with clitools. It shows a tool
// taking flag defaults from the configuration and validating a table.
//
// Configuration:
//
//	[greet]
//	name = "world"
//	greeting = "Hello"
//
//	[greet.aliases]
//	bob = "Robert"
package greet

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/clitools/pkg/config"
	"github.com/arthur-debert/clitools/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Used when the configuration does not set them.
const (
	DefaultName     = "world"
	DefaultGreeting = "Hello"
)

// Tool prints a greeting.
type Tool struct{}

// New creates the greet tool
func New() *Tool {
	return &Tool{}
}

// Name implements tools.Tool
func (t *Tool) Name() string {
	return "greet"
}

// Help implements tools.Tool
func (t *Tool) Help() string {
	return `Print a greeting

The greeting and the default name are read from the [greet] table of
config.toml. Names listed in [greet.aliases] are replaced by their alias.`
}

// SetupFlags implements tools.Tool
func (t *Tool) SetupFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.String("name", stringOr(cfg, DefaultName, "greet", "name"), "who to greet")
	flags.Bool("shout", false, "print the greeting in upper case")
}

// Run implements tools.Tool
func (t *Tool) Run(cmd *cobra.Command, args []string, cfg *config.Config) error {
	logger := logging.GetLogger("greet")

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	shout, err := cmd.Flags().GetBool("shout")
	if err != nil {
		return err
	}

	if cfg != nil {
		aliases, err := cfg.GetMapping([]config.Kind{config.KindString},
			config.Keys("greet", "aliases"), config.Or(map[string]any{}))
		if err != nil {
			return err
		}
		// Values were checked to be strings above.
		if alias, ok := aliases[name].(string); ok {
			logger.Debug().Str("name", name).Str("alias", alias).Msg("Using alias")
			name = alias
		}
	}

	message := Message(stringOr(cfg, DefaultGreeting, "greet", "greeting"), name, shout)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
	return err
}

// Message builds the greeting line.
func Message(greeting, name string, shout bool) string {
	message := fmt.Sprintf("%s, %s!", greeting, name)
	if shout {
		message = strings.ToUpper(message)
	}
	return message
}

// stringOr reads a string at keys, or returns fallback when cfg is nil, the
// key is missing, or the value is not a string.
func stringOr(cfg *config.Config, fallback string, keys ...string) string {
	if cfg == nil {
		return fallback
	}
	if s, ok := cfg.LookupOr(fallback, keys...).(string); ok {
		return s
	}
	return fallback
}
