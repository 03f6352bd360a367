package refs

import (
	"path/filepath"
	"testing"
)

func TestHeadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".gitlite"))

	if err := s.SetHead("master"); err != nil {
		t.Fatalf("SetHead: %v", err)
	}
	branch, err := s.HeadBranch()
	if err != nil {
		t.Fatalf("HeadBranch: %v", err)
	}
	if branch != "master" {
		t.Errorf("HeadBranch = %q, want master", branch)
	}
}

func TestBranchRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".gitlite"))

	if s.HasBranch("master") {
		t.Fatal("HasBranch true before creation")
	}
	if err := s.WriteBranch("master", "deadbeef"); err != nil {
		t.Fatalf("WriteBranch: %v", err)
	}
	if !s.HasBranch("master") {
		t.Fatal("HasBranch false after creation")
	}
	id, err := s.ReadBranch("master")
	if err != nil || id != "deadbeef" {
		t.Fatalf("ReadBranch = (%q, %v)", id, err)
	}

	if err := s.DeleteBranch("master"); err != nil {
		t.Fatalf("DeleteBranch: %v", err)
	}
	if s.HasBranch("master") {
		t.Error("HasBranch true after deletion")
	}
}

func TestListBranches(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".gitlite"))
	s.WriteBranch("master", "a")
	s.WriteBranch("feat", "b")

	names, err := s.ListBranches()
	if err != nil {
		t.Fatalf("ListBranches: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("ListBranches = %v, want 2 entries", names)
	}
}

func TestRemoteTrackingRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".gitlite"))

	if err := s.WriteRemoteTracking("origin", "master", "cafebabe"); err != nil {
		t.Fatalf("WriteRemoteTracking: %v", err)
	}
	id, err := s.ReadRemoteTracking("origin", "master")
	if err != nil || id != "cafebabe" {
		t.Fatalf("ReadRemoteTracking = (%q, %v)", id, err)
	}
}
