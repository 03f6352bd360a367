package cmd

import (
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func init() {
	cmd := NewRepoCommand("rm <file>", "Unstage or remove a tracked file", 1, func(r *repo.Repository, args []string) error {
		return r.Rm(args[0])
	})
	rootCmd.AddCommand(cmd)
}
