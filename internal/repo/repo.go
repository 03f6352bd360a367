// Package repo ties the object store, ref store, and staging area together
// into the single Repository facade used by the command engine, and
// implements repository discovery and initialization (spec §4.7 "init").
package repo

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NahomAnteneh/gitlite/internal/fsutil"
	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/refs"
	"github.com/NahomAnteneh/gitlite/internal/staging"
)

// DirName is the name of the repository metadata directory.
const DirName = ".gitlite"

// DefaultBranch is the branch created by init and used as the root commit's
// home.
const DefaultBranch = "master"

// Repository bundles the object store, ref store and staging area rooted at
// a single working directory.
type Repository struct {
	Root       string // working directory root
	GitliteDir string // Root/.gitlite
	Store      *objects.Store
	Refs       *refs.Store
	Staging    *staging.Area
}

func open(root string) *Repository {
	dir := filepath.Join(root, DirName)
	return &Repository{
		Root:       root,
		GitliteDir: dir,
		Store:      objects.NewStore(dir),
		Refs:       refs.NewStore(dir),
		Staging:    staging.NewArea(dir),
	}
}

// Find walks upward from the current working directory looking for a
// .gitlite directory, returning the opened Repository at the first one
// found. Fails with NotInitialized if none is found before the filesystem
// root.
func Find() (*Repository, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		if fsutil.IsDir(filepath.Join(dir, DirName)) {
			return open(dir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, gitliteerr.NotInitialized
		}
		dir = parent
	}
}

// Open opens an existing repository rooted exactly at dir, without walking
// upward. Used to attach to a remote's filesystem path (spec §4.9), where
// the path names the repository root directly.
func Open(dir string) (*Repository, error) {
	if !fsutil.IsDir(filepath.Join(dir, DirName)) {
		return nil, gitliteerr.NotInitialized
	}
	return open(dir), nil
}

// Init creates a brand-new repository rooted at dir, including the root
// commit and the default branch (spec §4.7 "init"). Fails with
// AlreadyExists if dir/.gitlite is already present.
func Init(dir string) (*Repository, error) {
	gitliteDir := filepath.Join(dir, DirName)
	if fsutil.Exists(gitliteDir) {
		return nil, gitliteerr.AlreadyExists
	}

	for _, sub := range []string{
		filepath.Join(gitliteDir, "objects"),
		filepath.Join(gitliteDir, "refs", "heads"),
		filepath.Join(gitliteDir, "refs", "remotes"),
		filepath.Join(gitliteDir, "remotes"),
	} {
		if err := fsutil.Mkdirs(sub); err != nil {
			return nil, err
		}
	}

	r := open(dir)

	root := &objects.Commit{
		Parents:   nil,
		Timestamp: 0,
		Message:   "initial commit",
		Files:     map[string]string{},
	}
	rootID, err := objects.PutCommit(r.Store, root)
	if err != nil {
		return nil, err
	}
	if err := r.Refs.WriteBranch(DefaultBranch, rootID); err != nil {
		return nil, err
	}
	if err := r.Refs.SetHead(DefaultBranch); err != nil {
		return nil, err
	}
	return r, nil
}

// HeadCommit resolves HEAD to its commit object and id.
func (r *Repository) HeadCommit() (*objects.Commit, string, error) {
	id, err := r.Refs.HeadCommit()
	if err != nil {
		return nil, "", err
	}
	c, err := objects.GetCommit(r.Store, id)
	if err != nil {
		return nil, "", err
	}
	return c, id, nil
}

// CurrentBranch returns the branch name HEAD points at.
func (r *Repository) CurrentBranch() (string, error) {
	return r.Refs.HeadBranch()
}

// GetCommit loads a commit by id, implementing history.CommitLoader.
func (r *Repository) GetCommit(id string) (*objects.Commit, error) {
	return objects.GetCommit(r.Store, id)
}

// ResolveCommit resolves an (possibly abbreviated) commit id by matching it
// as a prefix against every object in the store that decodes as a commit.
// The first match wins; fails with AmbiguousOrMissing if there is no match.
// A full 40-character id that exists is resolved directly without a scan.
func (r *Repository) ResolveCommit(idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 40 && r.Store.Has(idOrPrefix) {
		if raw, err := r.Store.Get(idOrPrefix); err == nil && objects.IsCommitRecord(raw) {
			return idOrPrefix, nil
		}
	}

	ids, err := r.Store.ListIDs()
	if err != nil {
		return "", err
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !strings.HasPrefix(id, idOrPrefix) {
			continue
		}
		raw, err := r.Store.Get(id)
		if err != nil {
			continue
		}
		if objects.IsCommitRecord(raw) {
			return id, nil
		}
	}
	return "", gitliteerr.AmbiguousOrMissing
}
