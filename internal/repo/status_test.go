package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestComputeStatusCategorizesFiles(t *testing.T) {
	root := t.TempDir()
	r, _ := Init(root)

	writeFile(t, root, "tracked.txt", "v1")
	r.Add("tracked.txt")
	r.commitAt("add tracked.txt", 1)

	// Stage a new addition.
	writeFile(t, root, "staged.txt", "new")
	r.Add("staged.txt")

	// Stage a removal.
	r.Rm("tracked.txt")

	// Untracked file.
	writeFile(t, root, "loose.txt", "??")

	st, err := r.ComputeStatus()
	if err != nil {
		t.Fatalf("ComputeStatus: %v", err)
	}

	if len(st.Staged) != 1 || st.Staged[0] != "staged.txt" {
		t.Errorf("Staged = %v, want [staged.txt]", st.Staged)
	}
	if len(st.Removed) != 1 || st.Removed[0] != "tracked.txt" {
		t.Errorf("Removed = %v, want [tracked.txt]", st.Removed)
	}
	if len(st.Untracked) != 1 || st.Untracked[0] != "loose.txt" {
		t.Errorf("Untracked = %v, want [loose.txt]", st.Untracked)
	}
}

func TestComputeStatusDetectsModifiedAndDeleted(t *testing.T) {
	root := t.TempDir()
	r, _ := Init(root)

	writeFile(t, root, "a.txt", "v1")
	r.Add("a.txt")
	r.commitAt("add a.txt", 1)

	// Tracked, not staged, working content differs -> modified.
	writeFile(t, root, "a.txt", "v2")

	writeFile(t, root, "b.txt", "v1")
	r.Add("b.txt")
	r.commitAt("add b.txt", 2)

	// Tracked, not staged for deletion, working file absent -> deleted.
	os.Remove(filepath.Join(root, "b.txt"))

	st, err := r.ComputeStatus()
	if err != nil {
		t.Fatalf("ComputeStatus: %v", err)
	}

	found := map[string]bool{}
	for _, m := range st.Modified {
		found[m] = true
	}
	if !found["a.txt (modified)"] {
		t.Errorf("Modified = %v, want to include 'a.txt (modified)'", st.Modified)
	}
	if !found["b.txt (deleted)"] {
		t.Errorf("Modified = %v, want to include 'b.txt (deleted)'", st.Modified)
	}
}
