package app

import "slices"

// RecentFiles is a most-recent-first list of opened paths.
type RecentFiles struct {
	limit int
	paths []string
}

// NewRecentFiles creates a list holding at most limit paths.
func NewRecentFiles(limit int) *RecentFiles {
	return &RecentFiles{limit: max(limit, 1)}
}

// Add moves path to the front, dropping the oldest entry past the cap.
func (r *RecentFiles) Add(path string) {
	r.Remove(path)
	r.paths = slices.Insert(r.paths, 0, path)
	r.truncate()
}

// Remove drops path from the list.
func (r *RecentFiles) Remove(path string) {
	r.paths = slices.DeleteFunc(r.paths, func(p string) bool { return p == path })
}

// List returns a copy of the paths, most recent first.
func (r *RecentFiles) List() []string {
	return slices.Clone(r.paths)
}

// Len returns the number of paths.
func (r *RecentFiles) Len() int {
	return len(r.paths)
}

// SetLimit changes the cap, trimming the oldest entries if needed.
func (r *RecentFiles) SetLimit(limit int) {
	r.limit = max(limit, 1)
	r.truncate()
}

func (r *RecentFiles) truncate() {
	if len(r.paths) > r.limit {
		r.paths = r.paths[:r.limit]
	}
}
