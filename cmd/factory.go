package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/spf13/cobra"
)

// RepoHandler runs against an already-discovered Repository.
type RepoHandler func(r *repo.Repository, args []string) error

// NewRepoCommand builds a cobra.Command that finds the enclosing repository
// before calling handler. Most commands in the engine need this; init does
// not, since no repository exists yet.
func NewRepoCommand(use, short string, minArgs int, handler RepoHandler) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < minArgs {
				return fmt.Errorf("requires at least %d argument(s)", minArgs)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Find()
			if err != nil {
				return err
			}
			return handler(r, args)
		},
	}
}
