package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/NahomAnteneh/gitlite/internal/diffview"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/spf13/cobra"
)

// diff is additive: the engine's core defines no diff operation, but a
// unified-diff view is a natural complement to status for inspecting
// exactly what changed in the working tree since HEAD.
func init() {
	cmd := NewRepoCommand("diff [<commit>]", "Show a unified diff between a commit and the working tree", 0, func(r *repo.Repository, args []string) error {
		var commit *objects.Commit
		var err error
		if len(args) == 1 {
			id, rerr := r.ResolveCommit(args[0])
			if rerr != nil {
				return rerr
			}
			commit, err = r.GetCommit(id)
		} else {
			commit, _, err = r.HeadCommit()
		}
		if err != nil {
			return err
		}

		names := make([]string, 0, len(commit.Files))
		for name := range commit.Files {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			before, err := objects.GetBlob(r.Store, commit.Files[name])
			if err != nil {
				return err
			}
			after, err := os.ReadFile(filepath.Join(r.Root, name))
			if err != nil {
				continue // deleted in the working tree; status reports this separately.
			}
			if out := diffview.Unified(name, string(before), string(after)); out != "" {
				fmt.Print(out)
			}
		}
		return nil
	})
	cmd.Args = cobra.MaximumNArgs(1)
	rootCmd.AddCommand(cmd)
}
