package repo

import "github.com/NahomAnteneh/gitlite/internal/gitliteerr"

// CreateBranch implements spec §4.7 "branch": point a new branch at the
// current HEAD commit.
func (r *Repository) CreateBranch(name string) error {
	if r.Refs.HasBranch(name) {
		return gitliteerr.DuplicateBranch
	}
	_, headID, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.Refs.WriteBranch(name, headID)
}

// DeleteBranch implements spec §4.7 "rm-branch".
func (r *Repository) DeleteBranch(name string) error {
	if !r.Refs.HasBranch(name) {
		return gitliteerr.NoSuchBranch
	}
	current, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if current == name {
		return gitliteerr.CurrentBranchDelete
	}
	return r.Refs.DeleteBranch(name)
}
