package cmd

import "github.com/NahomAnteneh/gitlite/internal/repo"

func init() {
	branchCmd := NewRepoCommand("branch <name>", "Create a new branch at HEAD", 1, func(r *repo.Repository, args []string) error {
		return r.CreateBranch(args[0])
	})
	rootCmd.AddCommand(branchCmd)

	rmBranchCmd := NewRepoCommand("rm-branch <name>", "Delete a branch pointer", 1, func(r *repo.Repository, args []string) error {
		return r.DeleteBranch(args[0])
	})
	rootCmd.AddCommand(rmBranchCmd)
}
