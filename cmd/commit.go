package cmd

import (
	"fmt"
	"strings"

	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/spf13/cobra"
)

func init() {
	cmd := NewRepoCommand("commit <message>", "Record staged changes", 1, func(r *repo.Repository, args []string) error {
		message := strings.Join(args, " ")
		id, err := r.Commit(message)
		if err != nil {
			return err
		}
		fmt.Printf("[%s] %s\n", id[:7], message)
		return nil
	})
	cmd.Args = cobra.MinimumNArgs(1)
	rootCmd.AddCommand(cmd)
}
