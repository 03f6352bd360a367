package repo

import (
	"time"

	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/staging"
)

// Commit implements spec §4.7 "commit": consume the staging area against
// HEAD's files and record a new commit on the current branch.
func (r *Repository) Commit(message string) (string, error) {
	return r.commitAt(message, time.Now().Unix())
}

// commitAt is Commit with an explicit timestamp, split out for testability.
func (r *Repository) commitAt(message string, timestamp int64) (string, error) {
	if message == "" {
		return "", gitliteerr.EmptyMessage
	}

	empty, err := r.Staging.IsEmpty()
	if err != nil {
		return "", err
	}
	if empty {
		return "", gitliteerr.NothingToCommit
	}

	head, headID, err := r.HeadCommit()
	if err != nil {
		return "", err
	}

	entries, err := r.Staging.Entries()
	if err != nil {
		return "", err
	}

	files := make(map[string]string, len(head.Files))
	for name, id := range head.Files {
		files[name] = id
	}
	for name, value := range entries {
		if value == staging.Delete {
			delete(files, name)
		} else {
			files[name] = value
		}
	}

	newCommit := &objects.Commit{
		Parents:   []string{headID},
		Timestamp: timestamp,
		Message:   message,
		Files:     files,
	}
	newID, err := objects.PutCommit(r.Store, newCommit)
	if err != nil {
		return "", err
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}
	if err := r.Refs.WriteBranch(branch, newID); err != nil {
		return "", err
	}
	return newID, r.Staging.Clear()
}
