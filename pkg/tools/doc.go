// Package tools defines how a clitools subcommand is written.
//
// A Tool declares its flags and runs with the parsed command and an optional
// configuration document. A Registry collects tools and turns them into cobra
// commands; the configuration is supplied lazily by a ConfigSource so that a
// missing config.toml never prevents a tool from running.
//
//	type hello struct{}
//
//	func (hello) Name() string { return "hello" }
//	func (hello) Help() string { return "Say hello" }
//	func (hello) SetupFlags(flags *pflag.FlagSet, cfg *config.Config) {
//		flags.String("who", "world", "who to greet")
//	}
//	func (hello) Run(cmd *cobra.Command, args []string, cfg *config.Config) error {
//		who, _ := cmd.Flags().GetString("who")
//		fmt.Fprintf(cmd.OutOrStdout(), "hello %s\n", who)
//		return nil
//	}
package tools
