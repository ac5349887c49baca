package cli

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/clitools/pkg/config"
	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed templates/config.toml
var starterConfig []byte

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Example: MsgConfigExample,
	}

	cmd.AddCommand(a.newConfigGetCmd())
	cmd.AddCommand(a.newConfigTableCmd())
	cmd.AddCommand(a.newConfigShowCmd())
	cmd.AddCommand(a.newConfigInitCmd())
	return cmd
}

func (a *app) newConfigGetCmd() *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "get <dotted.key>",
		Short: MsgConfigGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.requireConfig()
			if err != nil {
				return err
			}

			fb := config.Strict
			if cmd.Flags().Changed("default") {
				fb = config.Or(fallback)
			}

			value, err := cfg.Get(config.ParseKeyPath(args[0]), fb)
			if err != nil {
				return err
			}

			out, err := formatValue(value)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&fallback, "default", "", MsgFlagDefault)
	return cmd
}

func (a *app) newConfigTableCmd() *cobra.Command {
	var kindNames []string

	cmd := &cobra.Command{
		Use:   "table <dotted.key>",
		Short: MsgConfigTableShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(kindNames)
			if err != nil {
				return err
			}

			cfg, err := a.requireConfig()
			if err != nil {
				return err
			}

			table, err := cfg.GetMapping(kinds, config.ParseKeyPath(args[0]), config.Strict)
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(table))
			for key := range table {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				out, err := formatValue(table[key])
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kindNames, "kinds", nil, MsgFlagKinds)
	return cmd
}

func (a *app) newConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.requireConfig()
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), cfg.Data(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "toml", MsgFlagOutput)
	return cmd
}

func (a *app) newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long: `Write a starter config.toml to the path given with --config, or to the
working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(a.configPath)
			if err != nil {
				return err
			}

			exists, err := afero.Exists(a.opts.FS, path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot check %s", path)
			}
			if exists && !force {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists, use --force to overwrite", path).
					WithDetail("path", path)
			}

			if err := a.opts.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory for %s", path)
			}
			if err := afero.WriteFile(a.opts.FS, path, starterConfig, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
					WithDetail("path", path)
			}

			log.Info().Str("path", path).Bool("overwrite", exists).Msg("Wrote starter configuration")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func parseKinds(names []string) ([]config.Kind, error) {
	kinds := make([]config.Kind, 0, len(names))
	for _, name := range names {
		kind, ok := config.ParseKind(strings.TrimSpace(name))
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown value kind %q", name).
				WithDetail("kind", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// formatValue renders a configuration value for the terminal: strings as is,
// tables as TOML documents and everything else as a TOML value.
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return v.String(), nil
	case map[string]any:
		data, err := toml.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "cannot encode table")
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	data, err := toml.Marshal(map[string]any{"value": value})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot encode value")
	}
	line := strings.TrimSpace(string(data))
	if rest, ok := strings.CutPrefix(line, "value = "); ok && !strings.Contains(rest, "\n") {
		return rest, nil
	}
	return fmt.Sprint(value), nil
}

// writeDocument writes the whole document in the requested format.
func writeDocument(w io.Writer, data map[string]any, format string) error {
	switch strings.ToLower(format) {
	case "toml", "":
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(data); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot encode configuration as TOML")
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plain(data)); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot encode configuration as YAML")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plain(data)); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot encode configuration as JSON")
		}
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want toml, yaml or json)", format).
			WithDetail("output", format)
	}
}

// plain converts TOML local date and time values to strings so that YAML and
// JSON encoders print them the way they appear in the file.
func plain(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plain(item)
		}
		return out
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return fmt.Sprint(v)
	default:
		return v
	}
}
