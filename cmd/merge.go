package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/gitlite/internal/merge"
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func init() {
	cmd := NewRepoCommand("merge <branch>", "Merge another branch into the current branch", 1, func(r *repo.Repository, args []string) error {
		outcome, err := merge.Merge(r, args[0])
		if err != nil {
			return err
		}
		switch {
		case outcome.AlreadyAncestor:
			fmt.Println("Given branch is an ancestor of the current branch.")
		case outcome.FastForwarded:
			fmt.Println("Current branch fast-forwarded.")
		case outcome.Conflict:
			fmt.Println("Encountered a merge conflict.")
		default:
			fmt.Printf("[%s] Merged %s into current branch.\n", outcome.CommitID[:7], args[0])
		}
		return nil
	})
	rootCmd.AddCommand(cmd)
}
