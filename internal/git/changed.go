package git

import (
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// Change is a path with uncommitted modifications.
type Change struct {
	Path     string
	Staging  gogit.StatusCode
	Worktree gogit.StatusCode
}

// String renders the change like `git status --short`.
func (c Change) String() string {
	return fmt.Sprintf("%c%c %s", c.Staging, c.Worktree, c.Path)
}

// PendingChanges returns the files with staged, unstaged or untracked
// changes, sorted by path.
func (r *Repo) PendingChanges() ([]Change, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("get worktree status: %w", err)
	}

	var changes []Change
	for path, s := range status {
		if s.Staging != gogit.Unmodified || s.Worktree != gogit.Unmodified {
			changes = append(changes, Change{Path: path, Staging: s.Staging, Worktree: s.Worktree})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}
