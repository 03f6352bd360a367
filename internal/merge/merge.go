// Package merge implements the three-way merge engine (spec §4.8): split
// point computation, the ten-case file table, conflict-marker synthesis,
// and merge-commit creation.
package merge

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/NahomAnteneh/gitlite/internal/fsutil"
	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/history"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/NahomAnteneh/gitlite/internal/staging"
	"github.com/NahomAnteneh/gitlite/internal/worktree"
)

// Outcome describes how a merge resolved, for the command layer to report.
type Outcome struct {
	AlreadyAncestor bool
	FastForwarded   bool
	Conflict        bool
	CommitID        string
}

// Merge performs spec §4.8's merge of targetBranch into the current branch.
func Merge(r *repo.Repository, targetBranch string) (*Outcome, error) {
	currentBranch, err := r.CurrentBranch()
	if err != nil {
		return nil, err
	}
	if targetBranch == currentBranch {
		return nil, gitliteerr.SelfMerge
	}
	if !r.Refs.HasBranch(targetBranch) {
		return nil, gitliteerr.NoSuchBranch
	}
	empty, err := r.Staging.IsEmpty()
	if err != nil {
		return nil, err
	}
	if !empty {
		return nil, gitliteerr.UncommittedChanges
	}

	head, headID, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	targetID, err := r.Refs.ReadBranch(targetBranch)
	if err != nil {
		return nil, err
	}
	target, err := r.GetCommit(targetID)
	if err != nil {
		return nil, err
	}

	if err := worktree.CheckUntrackedOverwrite(r, target, head); err != nil {
		return nil, err
	}

	splitID := history.SplitPoint(r, headID, targetID)

	if splitID == targetID {
		return &Outcome{AlreadyAncestor: true}, nil
	}
	if splitID == headID {
		if err := worktree.Reset(r, targetID); err != nil {
			return nil, err
		}
		return &Outcome{FastForwarded: true}, nil
	}

	split, err := r.GetCommit(splitID)
	if err != nil {
		return nil, err
	}

	entries, conflict, err := resolveFiles(r, split, head, target)
	if err != nil {
		return nil, err
	}

	if conflict {
		for name, value := range entries {
			if err := r.Staging.Set(name, value); err != nil {
				return nil, err
			}
		}
		return &Outcome{Conflict: true}, nil
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

	commit := &objects.Commit{
		Parents:   []string{headID, targetID},
		Timestamp: time.Now().Unix(),
		Message:   fmt.Sprintf("Merged %s into %s.", targetBranch, currentBranch),
		Files:     files,
	}
	newID, err := objects.PutCommit(r.Store, commit)
	if err != nil {
		return nil, err
	}
	if err := r.Refs.WriteBranch(currentBranch, newID); err != nil {
		return nil, err
	}
	if err := r.Staging.Clear(); err != nil {
		return nil, err
	}
	return &Outcome{CommitID: newID}, nil
}

// resolveFiles applies the case table of spec §4.8 to every filename that
// appears in split, head ("current"), or target ("given"). It returns the
// staging directives produced (blob id, or staging.Delete) and whether any
// file conflicted. Working-tree writes for checked-out or conflicted files
// happen here, matching the merge engine's composition of the working-tree
// sync with the staging area described in spec §2.
func resolveFiles(r *repo.Repository, split, current, given *objects.Commit) (map[string]string, bool, error) {
	names := make(map[string]bool)
	for n := range split.Files {
		names[n] = true
	}
	for n := range current.Files {
		names[n] = true
	}
	for n := range given.Files {
		names[n] = true
	}

	entries := make(map[string]string)
	conflict := false

	for name := range names {
		s, inS := split.Files[name]
		c, inC := current.Files[name]
		g, inG := given.Files[name]

		switch {
		case inS && inC && inG:
			modC := c != s
			modG := g != s
			switch {
			case !modC && !modG:
				// neither side touched it since the split; keep c, no action.
			case !modC && modG:
				if err := checkoutAndStage(r, entries, name, g); err != nil {
					return nil, false, err
				}
			case modC && !modG:
				// keep c; no action.
			case modC && modG && c == g:
				// keep c; no action.
			default:
				if err := writeConflict(r, entries, name, c, g); err != nil {
					return nil, false, err
				}
				conflict = true
			}

		case inS && inC && !inG:
			if c == s {
				if err := deleteAndStage(r, entries, name); err != nil {
					return nil, false, err
				}
			} else {
				if err := writeConflict(r, entries, name, c, ""); err != nil {
					return nil, false, err
				}
				conflict = true
			}

		case inS && !inC && inG:
			if g == s {
				// keep absent; no action.
			} else {
				if err := writeConflict(r, entries, name, "", g); err != nil {
					return nil, false, err
				}
				conflict = true
			}

		case inS && !inC && !inG:
			// no action.

		case !inS && !inC && inG:
			if err := checkoutAndStage(r, entries, name, g); err != nil {
				return nil, false, err
			}

		case !inS && inC && !inG:
			// keep c; no action.

		case !inS && inC && inG:
			if c == g {
				// keep; no action.
			} else {
				if err := writeConflict(r, entries, name, c, g); err != nil {
					return nil, false, err
				}
				conflict = true
			}
		}
	}

	return entries, conflict, nil
}

func checkoutAndStage(r *repo.Repository, entries map[string]string, name, blobID string) error {
	content, err := objects.GetBlob(r.Store, blobID)
	if err != nil {
		return err
	}
	if err := fsutil.WriteText(filepath.Join(r.Root, name), string(content)); err != nil {
		return err
	}
	entries[name] = blobID
	return nil
}

func deleteAndStage(r *repo.Repository, entries map[string]string, name string) error {
	if err := fsutil.DeleteFile(filepath.Join(r.Root, name)); err != nil {
		return err
	}
	entries[name] = staging.Delete
	return nil
}

// writeConflict synthesizes the byte-frozen conflict blob of spec §4.8/§9,
// writes it to the working tree, and stages it under name.
func writeConflict(r *repo.Repository, entries map[string]string, name, curBlobID, givenBlobID string) error {
	var curContent, givenContent []byte
	var err error
	if curBlobID != "" {
		curContent, err = objects.GetBlob(r.Store, curBlobID)
		if err != nil {
			return err
		}
	}
	if givenBlobID != "" {
		givenContent, err = objects.GetBlob(r.Store, givenBlobID)
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	buf.WriteString("<<<<<<< HEAD\r\n")
	buf.Write(curContent)
	buf.WriteString("=======\r\n")
	buf.Write(givenContent)
	buf.WriteString(">>>>>>>\r\n")

	if err := fsutil.WriteText(filepath.Join(r.Root, name), buf.String()); err != nil {
		return err
	}
	blobID, err := objects.PutBlob(r.Store, buf.Bytes())
	if err != nil {
		return err
	}
	entries[name] = blobID
	return nil
}
