package cmd

import (
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func init() {
	cmd := NewRepoCommand("add <file>", "Stage a file's current content", 1, func(r *repo.Repository, args []string) error {
		return r.Add(args[0])
	})
	rootCmd.AddCommand(cmd)
}
