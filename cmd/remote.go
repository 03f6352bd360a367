package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/gitlite/internal/remote"
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func init() {
	addRemoteCmd := NewRepoCommand("add-remote <name> <path>", "Register a remote repository path", 2, func(r *repo.Repository, args []string) error {
		return remote.AddRemote(r, args[0], args[1])
	})
	rootCmd.AddCommand(addRemoteCmd)

	rmRemoteCmd := NewRepoCommand("rm-remote <name>", "Forget a registered remote", 1, func(r *repo.Repository, args []string) error {
		return remote.RemoveRemote(r, args[0])
	})
	rootCmd.AddCommand(rmRemoteCmd)

	pushCmd := NewRepoCommand("push <remote> <branch>", "Push a branch to a remote", 2, func(r *repo.Repository, args []string) error {
		if err := remote.Push(r, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Pushed %s to %s.\n", args[1], args[0])
		return nil
	})
	rootCmd.AddCommand(pushCmd)

	fetchCmd := NewRepoCommand("fetch <remote> <branch>", "Fetch a branch from a remote", 2, func(r *repo.Repository, args []string) error {
		if err := remote.Fetch(r, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Fetched %s/%s.\n", args[0], args[1])
		return nil
	})
	rootCmd.AddCommand(fetchCmd)

	pullCmd := NewRepoCommand("pull <remote> <branch>", "Fetch then merge a remote branch", 2, func(r *repo.Repository, args []string) error {
		outcome, err := remote.Pull(r, args[0], args[1])
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
			fmt.Printf("[%s] Merged %s/%s into current branch.\n", outcome.CommitID[:7], args[0], args[1])
		}
		return nil
	})
	rootCmd.AddCommand(pullCmd)
}
