package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/fatih/color"
)

// branchMarker renders the current branch with a "*" prefix, colorized when
// attached to a terminal. fatih/color no-ops automatically off a TTY, so
// piped/tested output stays plain text.
func branchMarker(name string, isCurrent bool) string {
	if !isCurrent {
		return "  " + name
	}
	return color.GreenString("* " + name)
}

func init() {
	cmd := NewRepoCommand("status", "Show branches, staged changes, and working-tree state", 0, func(r *repo.Repository, args []string) error {
		st, err := r.ComputeStatus()
		if err != nil {
			return err
		}

		fmt.Println("=== Branches ===")
		for _, b := range st.Branches {
			fmt.Println(branchMarker(b, b == st.CurrentBranch))
		}
		fmt.Println()

		fmt.Println("=== Staged Files ===")
		for _, f := range st.Staged {
			fmt.Println(f)
		}
		fmt.Println()

		fmt.Println("=== Removed Files ===")
		for _, f := range st.Removed {
			fmt.Println(f)
		}
		fmt.Println()

		fmt.Println("=== Modifications Not Staged For Commit ===")
		for _, f := range st.Modified {
			fmt.Println(f)
		}
		fmt.Println()

		fmt.Println("=== Untracked Files ===")
		for _, f := range st.Untracked {
			fmt.Println(f)
		}
		fmt.Println()

		return nil
	})
	rootCmd.AddCommand(cmd)
}
