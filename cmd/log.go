package cmd

import (
	"fmt"
	"time"

	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func printLogEntry(e repo.LogEntry) {
	fmt.Println("===")
	fmt.Printf("commit %s\n", e.ID)
	if len(e.Commit.Parents) > 1 {
		fmt.Printf("Merge: %s %s\n", e.Commit.Parents[0][:7], e.Commit.Parents[1][:7])
	}
	fmt.Printf("Date: %s\n", time.Unix(e.Commit.Timestamp, 0).Local().Format(time.RFC1123Z))
	fmt.Println(e.Commit.Message)
	fmt.Println()
}

func init() {
	logCmd := NewRepoCommand("log", "Show first-parent commit history from HEAD", 0, func(r *repo.Repository, args []string) error {
		entries, err := r.Log()
		if err != nil {
			return err
		}
		for _, e := range entries {
			printLogEntry(e)
		}
		return nil
	})
	rootCmd.AddCommand(logCmd)

	globalLogCmd := NewRepoCommand("global-log", "Show every commit ever made", 0, func(r *repo.Repository, args []string) error {
		entries, err := r.GlobalLog()
		if err != nil {
			return err
		}
		for _, e := range entries {
			printLogEntry(e)
		}
		return nil
	})
	rootCmd.AddCommand(globalLogCmd)
}
