package domain

// PathSeparator joins a parent path and a directory name.
const PathSeparator = "@"

// Directory represents a node in the catalog's directory tree.
type Directory struct {
	// ID is the directory identifier.
	ID string

	// Name is the directory's display name.
	Name string

	// ParentID is the parent directory's id, empty for roots.
	ParentID string

	// TeamID is the owning team's id, inherited from the root.
	TeamID string

	// Path is the full catalog path, assigned on insertion.
	Path string
}

// PathTable maps directory ids to their full catalog paths.
// Entries are write-once: the first path recorded for an id is kept.
// Not safe for concurrent use; callers insert from a single goroutine.
type PathTable struct {
	paths map[string]string
}

// NewPathTable returns an empty path table.
func NewPathTable() *PathTable {
	return &PathTable{paths: make(map[string]string)}
}

// Insert computes dir's path from its parent entry and records it.
// Parents must be inserted before their children; a directory whose
// parent is not in the table falls back to its own name.
// Returns the directory with Path set to the recorded path.
func (t *PathTable) Insert(dir Directory) Directory {
	path := dir.Name
	if dir.ParentID != "" {
		if parent, ok := t.paths[dir.ParentID]; ok {
			path = parent + PathSeparator + dir.Name
		}
	}
	if _, exists := t.paths[dir.ID]; !exists {
		t.paths[dir.ID] = path
	}
	dir.Path = t.paths[dir.ID]
	return dir
}

// Lookup returns the path for a directory id, or "" when unknown.
func (t *PathTable) Lookup(id string) string {
	return t.paths[id]
}

// Len returns the number of recorded directories.
func (t *PathTable) Len() int {
	return len(t.paths)
}
