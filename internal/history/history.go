// Package history implements ancestor traversal and split-point (best
// common ancestor) computation over the commit DAG (spec §4.5).
package history

import (
	"github.com/NahomAnteneh/gitlite/internal/objects"
)

// CommitLoader loads a commit by id. Implemented by *repo.Repository (its
// GetCommit method); kept as an interface here so the walker has no
// dependency on the object-store's on-disk layout.
type CommitLoader interface {
	GetCommit(id string) (*objects.Commit, error)
}

// Ancestors returns the set of ids reachable from start by following
// parent edges, including start itself. A missing parent truncates that
// branch of the traversal rather than failing the whole walk.
func Ancestors(loader CommitLoader, start string) map[string]bool {
	dist := distances(loader, start)
	seen := make(map[string]bool, len(dist))
	for id := range dist {
		seen[id] = true
	}
	return seen
}

// distances runs a BFS from start recording the minimum edge count to reach
// each visited commit. A missing parent stops traversal along that edge.
func distances(loader CommitLoader, start string) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		commit, err := loader.GetCommit(id)
		if err != nil {
			// truncated history: stop at the missing edge, and do not count
			// the missing commit itself as reached (start is always kept).
			if id != start {
				delete(dist, id)
			}
			continue
		}
		for _, parent := range commit.Parents {
			if parent == "" {
				continue
			}
			if _, visited := dist[parent]; !visited {
				dist[parent] = dist[id] + 1
				queue = append(queue, parent)
			}
		}
	}
	return dist
}

// SplitPoint computes the best common ancestor of a and b (spec §4.5): the
// id minimizing dist_A+dist_B over the intersection of their ancestor sets,
// ties broken by smaller dist_B then lexicographic id. If no common
// ancestor exists, it returns a (the degenerate case documented in §4.5/§9).
func SplitPoint(loader CommitLoader, a, b string) string {
	distA := distances(loader, a)
	distB := distances(loader, b)

	best := ""
	bestSum := 0
	bestDistB := 0
	for id, da := range distA {
		db, ok := distB[id]
		if !ok {
			continue
		}
		sum := da + db
		if best == "" || sum < bestSum ||
			(sum == bestSum && db < bestDistB) ||
			(sum == bestSum && db == bestDistB && id < best) {
			best = id
			bestSum = sum
			bestDistB = db
		}
	}
	if best == "" {
		return a
	}
	return best
}
