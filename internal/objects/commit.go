package objects

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NahomAnteneh/gitlite/internal/gitliteerr"
)

// Commit is the immutable record described in spec §3/§4.2.
type Commit struct {
	Parents   []string          // 0, 1 (normal) or 2 (merge) ids
	Timestamp int64             // seconds since epoch; root commit uses 0
	Message   string            // single line, no embedded newline
	Files     map[string]string // filename -> blob id
}

// commitPrefix is the literal byte sequence that distinguishes a commit
// record from a blob in the flat object store (spec §4.2). A blob whose
// bytes happen to start with this sequence is indistinguishable from a
// commit by this heuristic; see spec §9.
const commitPrefix = "parent "

// IsCommitRecord reports whether raw bytes look like a commit record.
func IsCommitRecord(raw []byte) bool {
	return strings.HasPrefix(string(raw), commitPrefix)
}

// Encode serializes a commit to its canonical textual form (spec §4.2).
// The serialization is deterministic: files are emitted in sorted filename
// order, so two commits with identical fields hash to the same id.
func (c *Commit) Encode() []byte {
	var b strings.Builder

	b.WriteString("parent ")
	b.WriteString(strings.Join(c.Parents, " "))
	b.WriteByte('\n')

	b.WriteString("timestamp ")
	b.WriteString(strconv.FormatInt(c.Timestamp, 10))
	b.WriteByte('\n')

	b.WriteString("message ")
	b.WriteString(c.Message)
	b.WriteByte('\n')

	names := make([]string, 0, len(c.Files))
	for name := range c.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("files ")
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(c.Files[name])
		b.WriteByte(';')
	}
	b.WriteByte('\n')

	return []byte(b.String())
}

// DecodeCommit parses the canonical textual form. Any malformed record
// fails with Corrupt, matching spec §6's "fail with Corrupt if a commit
// record cannot be parsed."
func DecodeCommit(raw []byte) (*Commit, error) {
	lines := strings.Split(string(raw), "\n")
	// Encode always produces a trailing newline, so there is one trailing
	// empty element after the four content lines.
	if len(lines) < 4 {
		return nil, gitliteerr.Corruptf("commit record has too few lines")
	}

	parentLine, ok := strings.CutPrefix(lines[0], "parent ")
	if !ok {
		return nil, gitliteerr.Corruptf("commit record missing 'parent ' line")
	}
	var parents []string
	if parentLine != "" {
		parents = strings.Split(parentLine, " ")
	}
	if len(parents) > 2 {
		return nil, gitliteerr.Corruptf("commit record has more than two parents")
	}

	timestampLine, ok := strings.CutPrefix(lines[1], "timestamp ")
	if !ok {
		return nil, gitliteerr.Corruptf("commit record missing 'timestamp ' line")
	}
	timestamp, err := strconv.ParseInt(timestampLine, 10, 64)
	if err != nil {
		return nil, gitliteerr.Corruptf("commit record has invalid timestamp: %v", err)
	}

	messageLine, ok := strings.CutPrefix(lines[2], "message ")
	if !ok {
		return nil, gitliteerr.Corruptf("commit record missing 'message ' line")
	}

	filesLine, ok := strings.CutPrefix(lines[3], "files ")
	if !ok {
		return nil, gitliteerr.Corruptf("commit record missing 'files ' line")
	}
	files := make(map[string]string)
	for _, pair := range strings.Split(filesLine, ";") {
		if pair == "" {
			continue
		}
		name, id, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, gitliteerr.Corruptf("commit record has malformed files entry %q", pair)
		}
		files[name] = id
	}

	return &Commit{
		Parents:   parents,
		Timestamp: timestamp,
		Message:   messageLine,
		Files:     files,
	}, nil
}

// PutCommit encodes and stores c, returning its id.
func PutCommit(store *Store, c *Commit) (string, error) {
	return store.Put(c.Encode())
}

// GetCommit loads and decodes the commit with the given id.
func GetCommit(store *Store, id string) (*Commit, error) {
	raw, err := store.Get(id)
	if err != nil {
		return nil, err
	}
	if !IsCommitRecord(raw) {
		return nil, gitliteerr.Corruptf("object %s is not a commit", id)
	}
	c, err := DecodeCommit(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding commit %s: %w", id, err)
	}
	return c, nil
}

// PutBlob stores raw file content, returning its id.
func PutBlob(store *Store, content []byte) (string, error) {
	return store.Put(content)
}

// GetBlob reads the raw content of a blob.
func GetBlob(store *Store, id string) ([]byte, error) {
	return store.Get(id)
}
