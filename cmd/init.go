package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create an empty Gitlite repository",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", dir, err)
		}
		if err := os.MkdirAll(abs, 0755); err != nil {
			return fmt.Errorf("creating %q: %w", abs, err)
		}
		if _, err := repo.Init(abs); err != nil {
			return err
		}
		fmt.Printf("Initialized empty Gitlite repository in %s\n", filepath.Join(abs, repo.DirName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
