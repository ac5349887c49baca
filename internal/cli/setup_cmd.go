package cli

import (
	"fmt"

	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/arthur-debert/clitools/pkg/setup"
	"github.com/arthur-debert/clitools/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newSetupCmd() *cobra.Command {
	var (
		displayName string
		modulePath  string
		root        string
		dryRun      bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:     "setup [name]",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Example: MsgSetupExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := setup.FromSettings(a.settings.Setup)
			opts.Root = root
			opts.DisplayName = displayName
			opts.ModulePath = modulePath
			if len(args) > 0 {
				opts.Name = args[0]
			}

			if err := a.completeSetupOptions(&opts); err != nil {
				return err
			}

			log.Info().
				Str("name", opts.Name).
				Str("module", opts.ModulePath).
				Str("root", opts.Root).
				Bool("dry_run", dryRun).
				Msg("Setting up project")

			plan := opts
			plan.DryRun = true
			result, err := setup.Run(a.opts.FS, plan)
			if err != nil {
				return err
			}
			if err := ui.PrintMarkdown(cmd.OutOrStdout(), result.Markdown()); err != nil {
				return err
			}
			if dryRun {
				return nil
			}

			if !yes {
				if !a.opts.Interactive() {
					return errors.New(errors.ErrInvalidInput, "refusing to modify files without --yes when input is not a terminal")
				}
				ok, err := a.opts.Prompter.Confirm(MsgSetupConfirm, false)
				if err != nil {
					return errors.Wrap(err, errors.ErrCancelled, "confirmation failed")
				}
				if !ok {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgSetupCancelled)
					return err
				}
			}

			result, err = setup.Run(a.opts.FS, opts)
			if err != nil {
				return err
			}
			return ui.PrintMarkdown(cmd.OutOrStdout(), result.Markdown())
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", MsgFlagDisplayName)
	cmd.Flags().StringVar(&modulePath, "module", "", MsgFlagModule)
	cmd.Flags().StringVar(&root, "root", ".", MsgFlagRoot)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

// completeSetupOptions asks for the values not given on the command line.
// Without a terminal only the name is required; the rest keep their defaults.
func (a *app) completeSetupOptions(opts *setup.Options) error {
	if !a.opts.Interactive() {
		if opts.Name == "" {
			return errors.New(errors.ErrInvalidInput, "project name is required when input is not a terminal")
		}
		return nil
	}

	p := a.opts.Prompter
	var err error

	if opts.Name == "" {
		if opts.Name, err = p.Text(MsgPromptName, ""); err != nil {
			return errors.Wrap(err, errors.ErrCancelled, "prompt failed")
		}
	}
	if err := setup.ValidateName(opts.Name); err != nil {
		return err
	}
	if opts.DisplayName == "" {
		if opts.DisplayName, err = p.Text(MsgPromptDisplayName, opts.Name); err != nil {
			return errors.Wrap(err, errors.ErrCancelled, "prompt failed")
		}
	}
	if opts.ModulePath == "" {
		def := setup.DefaultModulePath(opts.Placeholders.ModulePath, opts.Name)
		if opts.ModulePath, err = p.Text(MsgPromptModule, def); err != nil {
			return errors.Wrap(err, errors.ErrCancelled, "prompt failed")
		}
	}
	return nil
}
