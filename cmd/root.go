// Package cmd implements the CLI commands for blogger2hugo using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blogger2hugo",
	Short: "blogger2hugo — migrate a Blogger export into Hugo content",
	Long: `blogger2hugo converts a Blogger Atom export into Hugo page bundles:
one posts/<slug>/index.md per post, with embedded images downloaded next to
the post and markup normalized into Markdown.

Usage:
  blogger2hugo convert <export.xml> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
