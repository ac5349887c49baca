package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/clitools/internal/cli"
	"github.com/arthur-debert/clitools/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError(err))
		os.Exit(1)
	}
}
