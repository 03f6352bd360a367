package repo

import (
	"os"
	"path/filepath"

	"github.com/NahomAnteneh/gitlite/internal/fsutil"
	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/staging"
)

// Add implements spec §4.4 "add": stage name for the next commit, or clear
// a stale staging entry when the file's content already matches HEAD.
func (r *Repository) Add(name string) error {
	absPath := filepath.Join(r.Root, name)
	if !fsutil.Exists(absPath) {
		return gitliteerr.NotFound
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}
	blobID, err := objects.PutBlob(r.Store, content)
	if err != nil {
		return err
	}

	head, _, err := r.HeadCommit()
	if err != nil {
		return err
	}
	headBlob := head.Files[name]

	if blobID == headBlob {
		return r.Staging.Unset(name)
	}
	return r.Staging.Set(name, blobID)
}

// Rm implements spec §4.4 "rm".
func (r *Repository) Rm(name string) error {
	_, staged := r.Staging.Get(name)
	head, _, err := r.HeadCommit()
	if err != nil {
		return err
	}
	_, tracked := head.Files[name]

	if !staged && !tracked {
		return gitliteerr.NotRemovable
	}

	if staged && !tracked {
		return r.Staging.Unset(name)
	}

	// tracked: stage a deletion and remove the working-tree copy if present.
	if err := r.Staging.Set(name, staging.Delete); err != nil {
		return err
	}
	return fsutil.DeleteFile(filepath.Join(r.Root, name))
}
