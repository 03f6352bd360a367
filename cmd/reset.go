package cmd

import (
	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/NahomAnteneh/gitlite/internal/worktree"
)

func init() {
	cmd := NewRepoCommand("reset <commit>", "Materialize a commit and move the current branch to it", 1, func(r *repo.Repository, args []string) error {
		return worktree.Reset(r, args[0])
	})
	rootCmd.AddCommand(cmd)
}
