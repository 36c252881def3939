package commit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/commitment/internal/commit"
	"github.com/alexander-akhmetov/commitment/internal/git"
)

func initRepo(t *testing.T, branch string) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	r, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	require.NoError(t, err)

	cfg, err := r.Config()
	require.NoError(t, err)
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@test.com"
	require.NoError(t, r.SetConfig(cfg))
	return dir, r
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func commitCount(t *testing.T, r *gogit.Repository) int {
	t.Helper()
	head, err := r.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return 0
	}
	require.NoError(t, err)
	iter, err := r.Log(&gogit.LogOptions{From: head.Hash()})
	require.NoError(t, err)
	n := 0
	require.NoError(t, iter.ForEach(func(*object.Commit) error { n++; return nil }))
	return n
}

func TestCreate_EmptyRepository(t *testing.T) {
	dir, r := initRepo(t, "ABC-123-feature")
	write(t, dir, "widget.go", "package widget\n")
	write(t, dir, "docs/widget.md", "# Widget\n")

	repo, err := git.NewRepo(dir)
	require.NoError(t, err)

	res, err := commit.Create(repo, "add widget", commit.Options{})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123 Add widget", res.Message)
	assert.Empty(t, res.Parents)
	assert.Equal(t, 1, commitCount(t, r))

	c, err := r.CommitObject(res.Hash)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123 Add widget", c.Message)
	assert.Zero(t, c.NumParents())
	for _, name := range []string{"widget.go", "docs/widget.md"} {
		_, err := c.File(name)
		assert.NoError(t, err, name)
	}

	has, err := repo.HasUncommittedChanges()
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCreate_ExistingHistory(t *testing.T) {
	dir, r := initRepo(t, "ABC-123-feature")
	write(t, dir, "README.md", "# Test\n")
	wt, err := r.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	prior, err := wt.Commit("Initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)

	write(t, dir, "README.md", "# Changed\n")
	write(t, dir, "untracked/new.txt", "new\n")

	repo, err := git.NewRepo(dir)
	require.NoError(t, err)

	res, err := commit.Create(repo, "add widget", commit.Options{})
	require.NoError(t, err)
	assert.Equal(t, []plumbing.Hash{prior}, res.Parents)
	assert.Equal(t, 2, commitCount(t, r))

	c, err := r.CommitObject(res.Hash)
	require.NoError(t, err)
	assert.Equal(t, []plumbing.Hash{prior}, c.ParentHashes)
	f, err := c.File("README.md")
	require.NoError(t, err)
	content, err := f.Contents()
	require.NoError(t, err)
	assert.Equal(t, "# Changed\n", content)
	_, err = c.File("untracked/new.txt")
	assert.NoError(t, err)

	head, err := r.Head()
	require.NoError(t, err)
	assert.Equal(t, res.Hash, head.Hash())
	assert.Equal(t, plumbing.NewBranchReferenceName("ABC-123-feature"), head.Name())
}

func TestCreate_CleanTreeCreatesNoCommit(t *testing.T) {
	dir, r := initRepo(t, "ABC-123-feature")

	repo, err := git.NewRepo(dir)
	require.NoError(t, err)

	_, err = commit.Create(repo, "add widget", commit.Options{})
	assert.ErrorIs(t, err, commit.ErrNoChanges)
	assert.Equal(t, 0, commitCount(t, r))
}

func TestCreate_MismatchLeavesIndexUntouched(t *testing.T) {
	dir, r := initRepo(t, "ABC-123-feature")
	write(t, dir, "file.txt", "x\n")

	repo, err := git.NewRepo(dir)
	require.NoError(t, err)

	_, err = commit.Create(repo, "DEF-456 wrong ticket", commit.Options{})
	require.Error(t, err)
	assert.Equal(t, 0, commitCount(t, r))

	changes, err := repo.PendingChanges()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, gogit.Untracked, changes[0].Staging, "file must not have been staged")
}
