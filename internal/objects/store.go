// Package objects implements the content-addressed object store (spec §4.1)
// and the commit record codec (spec §4.2). Blobs and commits share one flat
// key space under <repo>/.gitlite/objects/<40-hex-sha1>.
package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
)

// Store is a content-addressed object store rooted at a .gitlite directory.
type Store struct {
	dir string // <repo>/.gitlite/objects
}

// NewStore returns a Store rooted at gitliteDir/objects.
func NewStore(gitliteDir string) *Store {
	return &Store{dir: filepath.Join(gitliteDir, "objects")}
}

// ID computes the 40-hex SHA-1 identity of data.
func ID(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id)
}

// Has reports whether an object with the given id is present.
func (s *Store) Has(id string) bool {
	_, err := os.Stat(s.path(id))
	return err == nil
}

// Put writes data under its content hash and returns the id. Idempotent:
// if the object already exists the existing file is left untouched.
func (s *Store) Put(data []byte) (string, error) {
	id := ID(data)
	if s.Has(id) {
		return id, nil
	}
	if err := atomicWriteFile(s.path(id), data); err != nil {
		return "", err
	}
	return id, nil
}

// Get reads the raw bytes of an object, failing with Corrupt if missing.
func (s *Store) Get(id string) ([]byte, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gitliteerr.Corruptf("object %s does not exist", id)
		}
		return nil, err
	}
	return data, nil
}

// ListIDs enumerates every object id present in the store.
func (s *Store) ListIDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ids = append(ids, e.Name())
	}
	return ids, nil
}

// atomicWriteFile writes data to path via write-temp-then-rename, so a crash
// mid-write never leaves a partially-written object visible under path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-obj-*")
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
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
