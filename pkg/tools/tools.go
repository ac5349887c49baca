package tools

import (
	"strings"

	"github.com/arthur-debert/clitools/pkg/config"
	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/arthur-debert/clitools/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Tool is a subcommand with its own flags and an optional configuration.
type Tool interface {
	// Name is the subcommand name.
	Name() string
	// Help is the command description. Its first line is the short help.
	Help() string
	// SetupFlags registers the tool's flags. cfg is nil when no
	// configuration file is present; flag defaults may be read from it.
	SetupFlags(flags *pflag.FlagSet, cfg *config.Config)
	// Run executes the tool. cfg is nil when no configuration file is present.
	Run(cmd *cobra.Command, args []string, cfg *config.Config) error
}

// ConfigSource returns the configuration for a run, or nil when there is none.
type ConfigSource func() (*config.Config, error)

// NoConfig is a ConfigSource for running tools without a configuration.
func NoConfig() (*config.Config, error) {
	return nil, nil
}

// Registry holds tools in registration order.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Tool)}
}

// Register adds a tool. Names must be non-empty and unique.
func (r *Registry) Register(t Tool) error {
	if t == nil {
		return errors.New(errors.ErrToolRegistration, "cannot register a nil tool")
	}
	name := t.Name()
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrToolRegistration, "tool name cannot be empty")
	}
	if _, exists := r.byName[name]; exists {
		return errors.Newf(errors.ErrToolRegistration, "tool %q is already registered", name).
			WithDetail("name", name)
	}

	r.tools = append(r.tools, t)
	r.byName[name] = t
	logger := logging.GetLogger("tools")
	logger.Trace().Str("tool", name).Msg("Registered tool")
	return nil
}

// MustRegister is Register that panics on error. Use it for built-in tools.
func (r *Registry) MustRegister(t Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	return append([]Tool(nil), r.tools...)
}

// Commands builds one cobra command per tool, in registration order.
func (r *Registry) Commands(source ConfigSource) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(r.tools))
	for _, t := range r.tools {
		cmds = append(cmds, Command(t, source))
	}
	return cmds
}

// Command wraps a single tool in a cobra command.
//
// Flags are registered without a configuration so help and completion work
// before any file is read. Once the command runs and source has produced a
// configuration, defaults derived from it are applied to every flag the user
// did not set on the command line.
func Command(t Tool, source ConfigSource) *cobra.Command {
	if source == nil {
		source = NoConfig
	}

	help := strings.TrimSpace(t.Help())
	short, _, _ := strings.Cut(help, "\n")

	cmd := &cobra.Command{
		Use:   t.Name(),
		Short: short,
		Long:  help,
	}
	t.SetupFlags(cmd.Flags(), nil)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("tools")

		cfg, err := source()
		if err != nil {
			return err
		}
		if cfg != nil {
			if err := applyConfigDefaults(t, cmd.Flags(), cfg); err != nil {
				return err
			}
		}

		logger.Debug().
			Str("tool", t.Name()).
			Bool("config", cfg != nil).
			Strs("args", args).
			Msg("Running tool")
		return t.Run(cmd, args, cfg)
	}

	return cmd
}

// applyConfigDefaults re-runs SetupFlags against cfg on a scratch flag set and
// copies any default that changed onto flags the user left unset.
func applyConfigDefaults(t Tool, flags *pflag.FlagSet, cfg *config.Config) error {
	scratch := pflag.NewFlagSet(t.Name(), pflag.ContinueOnError)
	t.SetupFlags(scratch, cfg)

	var firstErr error
	scratch.VisitAll(func(f *pflag.Flag) {
		target := flags.Lookup(f.Name)
		if firstErr != nil || target == nil || target.Changed || target.DefValue == f.DefValue {
			return
		}

		var err error
		if src, ok := f.Value.(pflag.SliceValue); ok {
			if dst, ok := target.Value.(pflag.SliceValue); ok {
				err = dst.Replace(src.GetSlice())
			}
		} else {
			err = target.Value.Set(f.DefValue)
		}
		if err != nil {
			firstErr = errors.Wrapf(err, errors.ErrInvalidInput, "invalid configured default for --%s", f.Name).
				WithDetail("flag", f.Name)
			return
		}
		target.DefValue = f.DefValue
	})
	return firstErr
}
