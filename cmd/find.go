package cmd

import (
	"fmt"
	"strings"

	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func init() {
	cmd := NewRepoCommand("find <message>", "Print the ids of commits with an exact message", 1, func(r *repo.Repository, args []string) error {
		message := strings.Join(args, " ")
		ids, err := r.Find(message)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return gitliteerr.NoCommitFound
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	})
	rootCmd.AddCommand(cmd)
}
