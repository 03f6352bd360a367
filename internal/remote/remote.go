// Package remote implements the filesystem-path remote engine of spec §4.9:
// remote registration, push, fetch, and pull.
package remote

import (
	"path/filepath"

	"github.com/NahomAnteneh/gitlite/internal/fsutil"
	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
	"github.com/NahomAnteneh/gitlite/internal/history"
	"github.com/NahomAnteneh/gitlite/internal/merge"
	"github.com/NahomAnteneh/gitlite/internal/objects"
	"github.com/NahomAnteneh/gitlite/internal/repo"
)

func remotePath(r *repo.Repository, name string) string {
	return filepath.Join(r.GitliteDir, "remotes", name)
}

// AddRemote records path as the filesystem location of a remote repository.
func AddRemote(r *repo.Repository, name, path string) error {
	p := remotePath(r, name)
	if fsutil.Exists(p) {
		return gitliteerr.DuplicateRemote
	}
	return fsutil.WriteText(p, path)
}

// RemoveRemote forgets a previously registered remote.
func RemoveRemote(r *repo.Repository, name string) error {
	p := remotePath(r, name)
	if !fsutil.Exists(p) {
		return gitliteerr.NoSuchRemote
	}
	return fsutil.DeleteFile(p)
}

// resolve opens the remote repository a name points at.
func resolve(r *repo.Repository, name string) (*repo.Repository, error) {
	p := remotePath(r, name)
	if !fsutil.Exists(p) {
		return nil, gitliteerr.NoSuchRemote
	}
	path, err := fsutil.ReadText(p)
	if err != nil {
		return nil, err
	}
	return repo.Open(path)
}

// copyAncestry copies every object reachable from id, via parent links,
// from src into dst. Objects already present in dst are not written again,
// and blobs already present are not read from src. Every commit in the
// ancestry of id is still read and walked, including ones dst already has.
func copyAncestry(src, dst *repo.Repository, id string) error {
	seen := map[string]bool{}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == "" || seen[cur] {
			continue
		}
		seen[cur] = true

		raw, err := src.Store.Get(cur)
		if err != nil {
			continue
		}
		if !dst.Store.Has(cur) {
			if _, err := dst.Store.Put(raw); err != nil {
				return err
			}
		}

		if !objects.IsCommitRecord(raw) {
			continue
		}
		commit, err := objects.DecodeCommit(raw)
		if err != nil {
			continue
		}
		for _, blobID := range commit.Files {
			if !seen[blobID] && !dst.Store.Has(blobID) {
				blob, err := src.Store.Get(blobID)
				if err != nil {
					continue
				}
				if _, err := dst.Store.Put(blob); err != nil {
					return err
				}
			}
			seen[blobID] = true
		}
		for _, parent := range commit.Parents {
			queue = append(queue, parent)
		}
	}
	return nil
}

// Push implements spec §4.9 "push": copy local's branch history into the
// remote and fast-forward the remote's branch, rejecting divergent history.
func Push(local *repo.Repository, remoteName, branch string) error {
	remoteRepo, err := resolve(local, remoteName)
	if err != nil {
		return err
	}

	localID, err := local.Refs.ReadBranch(branch)
	if err != nil {
		return gitliteerr.NoSuchBranch
	}

	if remoteRepo.Refs.HasBranch(branch) {
		remoteID, err := remoteRepo.Refs.ReadBranch(branch)
		if err != nil {
			return err
		}
		if remoteID != localID {
			ancestors := history.Ancestors(local, localID)
			if !ancestors[remoteID] {
				return gitliteerr.PushRejected
			}
		}
	}

	if err := copyAncestry(local, remoteRepo, localID); err != nil {
		return err
	}
	if err := remoteRepo.Refs.WriteBranch(branch, localID); err != nil {
		return err
	}
	return local.Refs.WriteRemoteTracking(remoteName, branch, localID)
}

// Fetch implements spec §4.9 "fetch": copy the remote's branch history into
// the local object store and update the remote-tracking ref.
func Fetch(local *repo.Repository, remoteName, branch string) error {
	remoteRepo, err := resolve(local, remoteName)
	if err != nil {
		return err
	}
	if !remoteRepo.Refs.HasBranch(branch) {
		return gitliteerr.NoSuchRemoteBranch
	}
	remoteID, err := remoteRepo.Refs.ReadBranch(branch)
	if err != nil {
		return err
	}
	if err := copyAncestry(remoteRepo, local, remoteID); err != nil {
		return err
	}
	return local.Refs.WriteRemoteTracking(remoteName, branch, remoteID)
}

// Pull implements spec §4.9 "pull": fetch, then merge the resulting
// remote-tracking branch into the current branch.
func Pull(local *repo.Repository, remoteName, branch string) (*merge.Outcome, error) {
	if err := Fetch(local, remoteName, branch); err != nil {
		return nil, err
	}
	trackingBranch := remoteName + "/" + branch
	id, err := local.Refs.ReadRemoteTracking(remoteName, branch)
	if err != nil {
		return nil, err
	}
	if err := local.Refs.WriteBranch(trackingBranch, id); err != nil {
		return nil, err
	}
	return merge.Merge(local, trackingBranch)
}
