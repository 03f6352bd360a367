// Package refs implements the ref store (spec §4.3): HEAD, local branch
// pointers, and remote-tracking pointers.
package refs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
)

const headRefPrefix = "ref: refs/heads/"

// Store reads and writes refs under a .gitlite directory.
type Store struct {
	dir string // .gitlite
}

// NewStore returns a ref Store rooted at gitliteDir.
func NewStore(gitliteDir string) *Store {
	return &Store{dir: gitliteDir}
}

func (s *Store) headPath() string { return filepath.Join(s.dir, "HEAD") }

func (s *Store) branchPath(name string) string {
	return filepath.Join(s.dir, "refs", "heads", name)
}

// HeadBranch returns the name of the branch HEAD currently points to.
func (s *Store) HeadBranch() (string, error) {
	data, err := os.ReadFile(s.headPath())
	if err != nil {
		return "", err
	}
	content := strings.TrimRight(string(data), "\n")
	if !strings.HasPrefix(content, headRefPrefix) {
		return "", gitliteerr.Corruptf("HEAD does not point at a branch: %q", content)
	}
	return content[len(headRefPrefix):], nil
}

// SetHead writes HEAD to point at the given branch.
func (s *Store) SetHead(branch string) error {
	return atomicWriteFile(s.headPath(), []byte(headRefPrefix+branch+"\n"))
}

// HeadCommit resolves HEAD all the way to a commit id.
func (s *Store) HeadCommit() (string, error) {
	branch, err := s.HeadBranch()
	if err != nil {
		return "", err
	}
	return s.ReadRef(s.branchPath(branch))
}

// ReadRef reads a commit id from an arbitrary ref path.
func (s *Store) ReadRef(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadBranch reads the commit id a local branch points at.
func (s *Store) ReadBranch(name string) (string, error) {
	return s.ReadRef(s.branchPath(name))
}

// WriteBranch atomically updates a local branch to point at id.
func (s *Store) WriteBranch(name, id string) error {
	return atomicWriteFile(s.branchPath(name), []byte(id+"\n"))
}

// HasBranch reports whether a local branch exists.
func (s *Store) HasBranch(name string) bool {
	_, err := os.Stat(s.branchPath(name))
	return err == nil
}

// DeleteBranch removes a local branch ref.
func (s *Store) DeleteBranch(name string) error {
	return os.Remove(s.branchPath(name))
}

// ListBranches returns every local branch name.
func (s *Store) ListBranches() ([]string, error) {
	dir := filepath.Join(s.dir, "refs", "heads")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// remoteTrackingPath returns the path of refs/heads/<remote>/<branch>.
func (s *Store) remoteTrackingPath(remote, branch string) string {
	return filepath.Join(s.dir, "refs", "heads", remote, branch)
}

// WriteRemoteTracking updates a remote-tracking ref.
func (s *Store) WriteRemoteTracking(remote, branch, id string) error {
	return atomicWriteFile(s.remoteTrackingPath(remote, branch), []byte(id+"\n"))
}

// ReadRemoteTracking reads a remote-tracking ref.
func (s *Store) ReadRemoteTracking(remote, branch string) (string, error) {
	return s.ReadRef(s.remoteTrackingPath(remote, branch))
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-ref-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
