package staging

import (
	"path/filepath"
	"testing"
)

func TestAreaSetGetUnset(t *testing.T) {
	a := NewArea(filepath.Join(t.TempDir(), ".gitlite"))

	if _, ok := a.Get("a.txt"); ok {
		t.Fatal("Get on empty area should report not-ok")
	}

	if err := a.Set("a.txt", "blobid"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok := a.Get("a.txt")
	if !ok || value != "blobid" {
		t.Errorf("Get = (%q, %v), want (\"blobid\", true)", value, ok)
	}

	if err := a.Unset("a.txt"); err != nil {
		t.Fatalf("Unset: %v", err)
	}
	if _, ok := a.Get("a.txt"); ok {
		t.Error("entry survived Unset")
	}

	if err := a.Unset("never-staged"); err != nil {
		t.Errorf("Unset on a missing entry should not error: %v", err)
	}
}

func TestAreaEntriesAndIsEmpty(t *testing.T) {
	a := NewArea(filepath.Join(t.TempDir(), ".gitlite"))

	empty, err := a.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("IsEmpty = (%v, %v), want (true, nil)", empty, err)
	}

	a.Set("a.txt", "1")
	a.Set("b.txt", Delete)

	entries, err := a.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if entries["a.txt"] != "1" || entries["b.txt"] != Delete {
		t.Errorf("Entries = %v", entries)
	}

	empty, err = a.IsEmpty()
	if err != nil || empty {
		t.Fatalf("IsEmpty = (%v, %v), want (false, nil)", empty, err)
	}

	if err := a.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err = a.Entries()
	if err != nil || len(entries) != 0 {
		t.Errorf("Entries after Clear = %v, %v", entries, err)
	}
}
