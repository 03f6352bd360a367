package repo

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/NahomAnteneh/gitlite/internal/fsutil"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/staging"
)

// Status is the fixed-order information printed by "status" (spec §4.7).
type Status struct {
	Branches      []string
	CurrentBranch string
	Staged        []string // sorted, excludes DELETE entries
	Removed       []string // sorted, only DELETE entries
	Modified      []string // sorted, entry text includes " (modified)"/" (deleted)" suffix
	Untracked     []string // sorted
}

// ComputeStatus implements spec §4.7 "status" and the modification-detection
// rule of spec §8.4.
func (r *Repository) ComputeStatus() (*Status, error) {
	branches, err := r.Refs.ListBranches()
	if err != nil {
		return nil, err
	}
	sort.Strings(branches)
	current, err := r.CurrentBranch()
	if err != nil {
		return nil, err
	}

	head, _, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	staged, err := r.Staging.Entries()
	if err != nil {
		return nil, err
	}
	workingNames, err := fsutil.ListPlainFiles(r.Root)
	if err != nil {
		return nil, err
	}
	working := make(map[string]bool, len(workingNames))
	for _, n := range workingNames {
		working[n] = true
	}

	all := make(map[string]bool)
	for n := range head.Files {
		all[n] = true
	}
	for n := range staged {
		all[n] = true
	}
	for n := range working {
		all[n] = true
	}

	st := &Status{Branches: branches, CurrentBranch: current}

	for name := range all {
		stagedVal, isStaged := staged[name]
		isStagedAddition := isStaged && stagedVal != staging.Delete
		isStagedDeletion := isStaged && stagedVal == staging.Delete
		_, trackedFlag := head.Files[name]
		workingExists := working[name]

		switch {
		case isStagedAddition:
			st.Staged = append(st.Staged, name)
		case isStagedDeletion:
			st.Removed = append(st.Removed, name)
		}

		modified := false
		deleted := false

		if trackedFlag && !isStaged && workingExists {
			hash, err := workingHash(r.Root, name)
			if err != nil {
				return nil, err
			}
			if hash != head.Files[name] {
				modified = true
			}
		}
		if isStagedAddition && workingExists {
			hash, err := workingHash(r.Root, name)
			if err != nil {
				return nil, err
			}
			if hash != stagedVal {
				modified = true
			}
		}
		if isStagedAddition && !workingExists {
			deleted = true
		}
		if trackedFlag && !isStagedDeletion && !workingExists {
			deleted = true
		}

		switch {
		case modified:
			st.Modified = append(st.Modified, name+" (modified)")
		case deleted:
			st.Modified = append(st.Modified, name+" (deleted)")
		}

		if workingExists && !isStaged && !trackedFlag {
			st.Untracked = append(st.Untracked, name)
		}
	}

	sort.Strings(st.Staged)
	sort.Strings(st.Removed)
	sort.Strings(st.Modified)
	sort.Strings(st.Untracked)
	return st, nil
}

func workingHash(root, name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "", err
	}
	return objects.ID(content), nil
}
