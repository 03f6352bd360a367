package objects

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestCommitEncodeDecodeRoundTrip(t *testing.T) {
	cases := []*Commit{
		{Parents: nil, Timestamp: 0, Message: "initial commit", Files: map[string]string{}},
		{Parents: []string{"abc123"}, Timestamp: 1700000000, Message: "add a.txt", Files: map[string]string{"a.txt": "deadbeef"}},
		{
			Parents:   []string{"aaaa", "bbbb"},
			Timestamp: 42,
			Message:   "Merged feat into master.",
			Files:     map[string]string{"a.txt": "1", "b.txt": "2", "z.txt": "3"},
		},
	}

	for _, c := range cases {
		raw := c.Encode()
		if !IsCommitRecord(raw) {
			t.Fatalf("Encode(%+v) does not look like a commit record", c)
		}
		decoded, err := DecodeCommit(raw)
		if err != nil {
			t.Fatalf("DecodeCommit: %v", err)
		}
		if len(decoded.Parents) == 0 {
			decoded.Parents = nil // Encode("") round-trips to a nil slice, not [].
		}
		if !reflect.DeepEqual(decoded, c) {
			t.Errorf("round trip mismatch:\n got  %+v\n want %+v", decoded, c)
		}
	}
}

func TestCommitDeterministicEncoding(t *testing.T) {
	a := &Commit{Parents: []string{"p"}, Timestamp: 5, Message: "m", Files: map[string]string{"b": "2", "a": "1"}}
	b := &Commit{Parents: []string{"p"}, Timestamp: 5, Message: "m", Files: map[string]string{"a": "1", "b": "2"}}

	if string(a.Encode()) != string(b.Encode()) {
		t.Errorf("encodings of equal commits with different map insertion order differ")
	}
	if ID(a.Encode()) != ID(b.Encode()) {
		t.Errorf("ids of equal commits differ")
	}
}

func TestDecodeCommitRejectsMalformed(t *testing.T) {
	bad := [][]byte{
		[]byte("not a commit record at all"),
		[]byte("parent \ntimestamp notanumber\nmessage hi\nfiles \n"),
		[]byte("parent \ntimestamp 1\nmessage hi\n"),
		[]byte("parent \ntimestamp 1\nmessage hi\nfiles a-missing-colon\n"),
	}
	for _, raw := range bad {
		if _, err := DecodeCommit(raw); err == nil {
			t.Errorf("DecodeCommit(%q) succeeded, want error", raw)
		}
	}
}

func TestPutGetCommit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".gitlite")
	store := NewStore(dir)

	c := &Commit{Parents: nil, Timestamp: 0, Message: "initial commit", Files: map[string]string{}}
	id, err := PutCommit(store, c)
	if err != nil {
		t.Fatalf("PutCommit: %v", err)
	}

	got, err := GetCommit(store, id)
	if err != nil {
		t.Fatalf("GetCommit: %v", err)
	}
	if got.Message != c.Message {
		t.Errorf("Message = %q, want %q", got.Message, c.Message)
	}
}

func TestGetCommitRejectsBlob(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".gitlite")
	store := NewStore(dir)

	id, err := PutBlob(store, []byte("just a file"))
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}
	if _, err := GetCommit(store, id); err == nil {
		t.Fatal("GetCommit on a blob id should fail")
	}
}
