package repo

import "github.com/NahomAnteneh/gitlite/internal/objects"

// LogEntry pairs a commit with its id for display.
type LogEntry struct {
	ID     string
	Commit *objects.Commit
}

// Log walks from HEAD through first-parent links only (spec §4.7 "log").
func (r *Repository) Log() ([]LogEntry, error) {
	id, err := r.Refs.HeadCommit()
	if err != nil {
		return nil, err
	}

	var entries []LogEntry
	for id != "" {
		c, err := r.GetCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})
		if len(c.Parents) == 0 {
			break
		}
		id = c.Parents[0]
	}
	return entries, nil
}

// GlobalLog returns every commit object in the store, order unspecified
// (spec §4.7 "global-log").
func (r *Repository) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Store.ListIDs()
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	for _, id := range ids {
		raw, err := r.Store.Get(id)
		if err != nil {
			continue
		}
		if !objects.IsCommitRecord(raw) {
			continue
		}
		c, err := objects.DecodeCommit(raw)
		if err != nil {
			continue
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})
	}
	return entries, nil
}

// Find returns the ids of every commit whose message equals query exactly
// (spec §4.7 "find").
func (r *Repository) Find(query string) ([]string, error) {
	all, err := r.GlobalLog()
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range all {
		if e.Commit.Message == query {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}
