// Package worktree implements safe materialization of a commit's file set
// into the working directory (spec §4.6), including the untracked-overwrite
// safety check shared by checkout, reset, and merge.
package worktree

import (
	"path/filepath"

	"github.com/NahomAnteneh/gitlite/internal/fsutil"
	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/NahomAnteneh/gitlite/internal/staging"
)

// CheckUntrackedOverwrite implements spec §4.6 step 2: fails with
// UntrackedInTheWay if any top-level working-tree file f is present in
// target's files, absent from base's files, and not staged for addition.
// It has no side effects — callers must run this before writing anything.
func CheckUntrackedOverwrite(r *repo.Repository, target, base *objects.Commit) error {
	workingFiles, err := fsutil.ListPlainFiles(r.Root)
	if err != nil {
		return err
	}
	staged, err := r.Staging.Entries()
	if err != nil {
		return err
	}

	for _, f := range workingFiles {
		if _, inTarget := target.Files[f]; !inTarget {
			continue
		}
		if _, inBase := base.Files[f]; inBase {
			continue
		}
		if value, isStaged := staged[f]; isStaged && value != staging.Delete {
			continue
		}
		return gitliteerr.UntrackedInTheWay
	}
	return nil
}

// Materialize performs spec §4.6's materialize(target, base) steps (1)-(3):
// the untracked check, then write of new working-tree files, then delete of
// removed ones. It does not touch refs or staging — callers are responsible
// for running steps (4) update the branch ref and (5) clear staging, in that
// order, per spec §5's crash-recoverable ordering.
func Materialize(r *repo.Repository, target, base *objects.Commit) error {
	if err := CheckUntrackedOverwrite(r, target, base); err != nil {
		return err
	}

	for name, blobID := range target.Files {
		content, err := objects.GetBlob(r.Store, blobID)
		if err != nil {
			return err
		}
		if err := fsutil.WriteText(filepath.Join(r.Root, name), string(content)); err != nil {
			return err
		}
	}

	for name := range base.Files {
		if _, inTarget := target.Files[name]; !inTarget {
			if err := fsutil.DeleteFile(filepath.Join(r.Root, name)); err != nil {
				return err
			}
		}
	}

	return nil
}

// CheckoutBranch switches HEAD to branch (spec §4.6 "checkout_branch").
func CheckoutBranch(r *repo.Repository, name string) error {
	if !r.Refs.HasBranch(name) {
		return gitliteerr.NoSuchBranch
	}
	current, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if current == name {
		return gitliteerr.SelfCheckout
	}

	headCommit, _, err := r.HeadCommit()
	if err != nil {
		return err
	}
	targetID, err := r.Refs.ReadBranch(name)
	if err != nil {
		return err
	}
	targetCommit, err := r.GetCommit(targetID)
	if err != nil {
		return err
	}

	if err := Materialize(r, targetCommit, headCommit); err != nil {
		return err
	}
	if err := r.Refs.SetHead(name); err != nil {
		return err
	}
	return r.Staging.Clear()
}

// CheckoutFile restores a single file from the given commit (spec §4.6
// "checkout_file"). commitID may be an abbreviated prefix.
func CheckoutFile(r *repo.Repository, commitID, name string) error {
	resolved, err := r.ResolveCommit(commitID)
	if err != nil {
		return err
	}
	commit, err := r.GetCommit(resolved)
	if err != nil {
		return err
	}
	blobID, ok := commit.Files[name]
	if !ok {
		return gitliteerr.NotInCommit
	}
	content, err := objects.GetBlob(r.Store, blobID)
	if err != nil {
		return err
	}
	return fsutil.WriteText(filepath.Join(r.Root, name), string(content))
}

// Reset materializes an arbitrary commit and moves the current branch to
// point at it, without changing which branch HEAD names (spec §4.6
// "reset").
func Reset(r *repo.Repository, commitID string) error {
	resolved, err := r.ResolveCommit(commitID)
	if err != nil {
		return err
	}
	target, err := r.GetCommit(resolved)
	if err != nil {
		return err
	}
	headCommit, _, err := r.HeadCommit()
	if err != nil {
		return err
	}
	if err := Materialize(r, target, headCommit); err != nil {
		return err
	}
	branch, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if err := r.Refs.WriteBranch(branch, resolved); err != nil {
		return err
	}
	return r.Staging.Clear()
}
