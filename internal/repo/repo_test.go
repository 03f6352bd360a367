// External test package: worktree imports repo, so an in-package test that
// imports worktree would form an import cycle.
package repo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/NahomAnteneh/gitlite/internal/worktree"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestInitCreatesMasterWithRootCommit(t *testing.T) {
	root := t.TempDir()
	r, err := repo.Init(root)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	branch, err := r.CurrentBranch()
	if err != nil || branch != repo.DefaultBranch {
		t.Fatalf("CurrentBranch = (%q, %v), want (%q, nil)", branch, err, repo.DefaultBranch)
	}

	commit, _, err := r.HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit: %v", err)
	}
	if commit.Message != "initial commit" || len(commit.Parents) != 0 || len(commit.Files) != 0 {
		t.Errorf("root commit = %+v, want empty parents/files and message 'initial commit'", commit)
	}
}

func TestInitTwiceFails(t *testing.T) {
	root := t.TempDir()
	if _, err := repo.Init(root); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if _, err := repo.Init(root); err == nil {
		t.Fatal("second Init should fail with AlreadyExists")
	}
}

func TestAddCommitAndBranchCheckoutRoundTrip(t *testing.T) {
	root := t.TempDir()
	r, err := repo.Init(root)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	writeFile(t, root, "a.txt", "alpha")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := r.Commit("add a.txt"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := r.CreateBranch("feat"); err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}

	writeFile(t, root, "a.txt", "alpha-modified")
	writeFile(t, root, "b.txt", "beta")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add a.txt: %v", err)
	}
	if err := r.Add("b.txt"); err != nil {
		t.Fatalf("Add b.txt: %v", err)
	}
	if _, err := r.Commit("modify a, add b"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// Spec §8.3: checking out feat restores its exact file set, no extras.
	if err := worktree.CheckoutBranch(r, "feat"); err != nil {
		t.Fatalf("CheckoutBranch: %v", err)
	}

	names, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var plain []string
	for _, e := range names {
		if !e.IsDir() {
			plain = append(plain, e.Name())
		}
	}
	if len(plain) != 1 || plain[0] != "a.txt" {
		t.Fatalf("working tree after checkout feat = %v, want just [a.txt]", plain)
	}
	content, err := os.ReadFile(filepath.Join(root, "a.txt"))
	if err != nil || string(content) != "alpha" {
		t.Errorf("a.txt = (%q, %v), want (alpha, nil)", content, err)
	}
}

func TestCommitEmptyMessageFails(t *testing.T) {
	root := t.TempDir()
	r, _ := repo.Init(root)
	writeFile(t, root, "a.txt", "x")
	r.Add("a.txt")
	if _, err := r.Commit(""); err == nil {
		t.Fatal("Commit with empty message should fail")
	}
}

func TestCommitNothingStagedFails(t *testing.T) {
	root := t.TempDir()
	r, _ := repo.Init(root)
	if _, err := r.Commit("no changes"); err == nil {
		t.Fatal("Commit with nothing staged should fail")
	}
}

func TestRmUntrackedUnstagedFails(t *testing.T) {
	root := t.TempDir()
	r, _ := repo.Init(root)
	if err := r.Rm("never-seen.txt"); err == nil {
		t.Fatal("Rm on an untracked, unstaged file should fail")
	}
}

func TestResolveCommitByPrefix(t *testing.T) {
	root := t.TempDir()
	r, _ := repo.Init(root)
	_, headID, _ := r.HeadCommit()

	resolved, err := r.ResolveCommit(headID[:8])
	if err != nil {
		t.Fatalf("ResolveCommit: %v", err)
	}
	if resolved != headID {
		t.Errorf("ResolveCommit(prefix) = %s, want %s", resolved, headID)
	}
}
