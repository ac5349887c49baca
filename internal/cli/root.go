package cli

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/clitools/internal/version"
	"github.com/arthur-debert/clitools/pkg/cobrax/topics"
	"github.com/arthur-debert/clitools/pkg/config"
	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/arthur-debert/clitools/pkg/logging"
	"github.com/arthur-debert/clitools/pkg/settings"
	"github.com/arthur-debert/clitools/pkg/tools"
	"github.com/arthur-debert/clitools/pkg/tools/greet"
	"github.com/arthur-debert/clitools/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed help
var helpFS embed.FS

// Options replaces the process environment of the command tree. The zero
// value uses the real filesystem, terminal and settings locations.
type Options struct {
	// FS backs config.toml reads, config init and setup. Settings files are
	// read from the real filesystem.
	FS       afero.Fs
	Prompter ui.Prompter
	// Interactive reports whether prompts may be shown.
	Interactive func() bool
	Settings    settings.Options
	// LogConsole receives console log output. Defaults to stderr.
	LogConsole     io.Writer
	DisableLogFile bool
	// Tools are added to the built-in tools.
	Tools []tools.Tool
}

// app is the state shared by the commands of one invocation.
type app struct {
	opts Options

	verbosity  int
	configPath string

	settings *settings.Settings

	cfg       *config.Config
	cfgErr    error
	cfgLoaded bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with injected dependencies.
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Prompter == nil {
		opts.Prompter = ui.NewPtermPrompter()
	}
	if opts.Interactive == nil {
		opts.Interactive = func() bool { return ui.IsTerminal(os.Stdin) }
	}
	if opts.Settings.File == "" && !opts.Settings.SkipFile {
		opts.Settings.File = settings.DefaultFile()
	}

	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:               AppName,
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		PersistentPreRunE: a.preRun,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newSetupCmd())

	registry := tools.NewRegistry()
	registry.MustRegister(greet.New())
	for _, t := range opts.Tools {
		registry.MustRegister(t)
	}
	for _, cmd := range registry.Commands(a.config) {
		rootCmd.AddCommand(cmd)
	}

	// Topic-based help from the embedded help directory
	if tm, err := topics.New(helpFS, "help", topics.Options{Renderer: &topics.MarkdownRenderer{}}); err == nil {
		tm.Install(rootCmd)
	}

	return rootCmd
}

// preRun loads the CLI settings and sets up logging for every command.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	s, err := settings.Load(a.opts.Settings)
	if err != nil {
		return err
	}
	a.settings = s

	logging.Setup(logging.Options{
		Verbosity:   a.verbosity,
		LogFile:     s.Logging.Path,
		DisableFile: !s.Logging.File || a.opts.DisableLogFile,
		Console:     a.opts.LogConsole,
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	logging.LogCommand(cmd.CommandPath(), args)
	return nil
}

// config loads the configuration once per invocation.
//
// An explicit --config must load. Without it, a missing config.toml yields a
// nil configuration; a malformed one is still an error.
func (a *app) config() (*config.Config, error) {
	if a.cfgLoaded {
		return a.cfg, a.cfgErr
	}
	a.cfgLoaded = true

	cfg, err := config.LoadFS(a.opts.FS, a.configPath)
	switch {
	case err == nil:
		a.cfg = cfg
	case a.configPath == "" && errors.IsErrorCode(err, errors.ErrConfigNotFound):
		log.Debug().Err(err).Msg("No configuration file, continuing without one")
	default:
		a.cfgErr = err
	}
	return a.cfg, a.cfgErr
}

// requireConfig is config for commands that cannot run without a file.
func (a *app) requireConfig() (*config.Config, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		// Reports the not-found error for the default path.
		return config.LoadFS(a.opts.FS, a.configPath)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String(AppName))
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(clitools completion bash)

Zsh:
  $ clitools completion zsh > "${fpath[1]}/_clitools"

Fish:
  $ clitools completion fish | source

PowerShell:
  PS> clitools completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Long:  `Generate the clitools man page on standard output`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   strings.ToUpper(AppName),
				Section: "1",
				Source:  AppName + " " + version.Version,
				Manual:  AppName + " manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
