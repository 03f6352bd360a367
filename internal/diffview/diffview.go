// Package diffview renders a unified textual diff between two blobs, for
// the supplemental "diff" command. It is not used by the core merge
// engine, which compares whole blob ids rather than line content.
package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Unified returns a git-style unified diff between a and b, prefixed with
// the given file header lines. An empty string is returned when the two
// texts are identical.
func Unified(name, a, b string) string {
	if a == b {
		return ""
	}

	dmp := diffmatchpatch.New()
	ca, cb, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf strings.Builder
	fmt.Fprintf(&buf, "diff --gitlite a/%s b/%s\n", name, name)
	fmt.Fprintf(&buf, "--- a/%s\n", name)
	fmt.Fprintf(&buf, "+++ b/%s\n", name)

	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			prefix = " "
		}
		for _, line := range lines {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}
