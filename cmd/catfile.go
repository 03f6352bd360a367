package cmd

import (
	"fmt"
	"os"

	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

// cat-file is additive: it prints an object's raw bytes or decoded commit
// fields, useful for inspecting the object store directly.
func init() {
	cmd := NewRepoCommand("cat-file <id>", "Print an object's contents", 1, func(r *repo.Repository, args []string) error {
		raw, err := r.Store.Get(args[0])
		if err != nil {
			return err
		}
		if !objects.IsCommitRecord(raw) {
			os.Stdout.Write(raw)
			return nil
		}
		c, err := objects.DecodeCommit(raw)
		if err != nil {
			return err
		}
		fmt.Printf("parents: %v\n", c.Parents)
		fmt.Printf("timestamp: %d\n", c.Timestamp)
		fmt.Printf("message: %s\n", c.Message)
		fmt.Printf("files: %v\n", c.Files)
		return nil
	})
	rootCmd.AddCommand(cmd)
}
