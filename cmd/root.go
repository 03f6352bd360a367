// Package cmd wires the command engine (spec §4.7) to a cobra CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gitlite",
	Short: "Gitlite is a minimal content-addressed version-control engine",
	Long: `Gitlite tracks file snapshots as content-addressed blobs, groups them into
immutable commits, and exposes branch/merge/remote operations over a flat
object store rooted at .gitlite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, printing any failure's fixed message to
// standard error (spec §7) and exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
