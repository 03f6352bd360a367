package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/NahomAnteneh/gitlite/internal/worktree"
	"github.com/spf13/cobra"
)

// checkout has three forms (spec §4.6):
//   gitlite checkout -- <file>             restore file from HEAD
//   gitlite checkout <commit> -- <file>     restore file from commit
//   gitlite checkout <branch>               switch branch
func init() {
	cmd := NewRepoCommand("checkout [<commit>] [-- <file>] | <branch>", "Restore a file, or switch branches", 1, func(r *repo.Repository, args []string) error {
		switch {
		case len(args) == 2 && args[0] == "--":
			_, headID, err := r.HeadCommit()
			if err != nil {
				return err
			}
			return worktree.CheckoutFile(r, headID, args[1])
		case len(args) == 3 && args[1] == "--":
			return worktree.CheckoutFile(r, args[0], args[2])
		case len(args) == 1:
			return worktree.CheckoutBranch(r, args[0])
		default:
			return fmt.Errorf("usage: gitlite checkout -- <file> | <commit> -- <file> | <branch>")
		}
	})
	cmd.Args = cobra.RangeArgs(1, 3)
	// Keep a literal "--" in args; flag parsing would otherwise consume it.
	cmd.DisableFlagParsing = true
	rootCmd.AddCommand(cmd)
}
