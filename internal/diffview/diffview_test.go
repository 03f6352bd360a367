package diffview

import (
	"strings"
	"testing"
)

func TestUnifiedIdenticalTextsReturnsEmpty(t *testing.T) {
	if got := Unified("a.txt", "same", "same"); got != "" {
		t.Errorf("Unified(identical) = %q, want empty", got)
	}
}

func TestUnifiedIncludesHeaderAndChangedLines(t *testing.T) {
	got := Unified("a.txt", "line one\nline two\n", "line one\nline three\n")
	if got == "" {
		t.Fatal("Unified should be non-empty for differing texts")
	}
	wantSubstrings := []string{
		"diff --gitlite a/a.txt b/a.txt",
		"--- a/a.txt",
		"+++ b/a.txt",
		"-line two",
		"+line three",
	}
	for _, s := range wantSubstrings {
		if !strings.Contains(got, s) {
			t.Errorf("Unified output missing %q, got:\n%s", s, got)
		}
	}
}
