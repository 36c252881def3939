// Package git provides the go-git backed repository operations used to stage
// the working tree and record it as a commit.
package git

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexander-akhmetov/commitment/internal/debug"
)

// ErrNoIdentity is returned when neither git config nor the fallback
// identity provide an author name and email.
var ErrNoIdentity = errors.New("no author identity: set user.name and user.email in git config")

// Repo represents a git repository opened from a working directory.
type Repo struct {
	repo    *git.Repository
	workDir string

	// Used when git config has no user.name / user.email.
	fallbackName  string
	fallbackEmail string
}

// NewRepo opens the repository containing workDir, walking up parent
// directories to find .git.
func NewRepo(workDir string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(workDir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open git repo at %s: %w", workDir, err)
	}
	return &Repo{repo: r, workDir: workDir}, nil
}

// SetFallbackIdentity sets the author used when git config has none.
func (r *Repo) SetFallbackIdentity(name, email string) {
	r.fallbackName = name
	r.fallbackEmail = email
}

// WorkDir returns the working directory the repository was opened from.
func (r *Repo) WorkDir() string {
	return r.workDir
}

// Root returns the top-level directory of the working tree.
func (r *Repo) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// CurrentBranch returns the short name of the branch HEAD points to.
// Unborn branches are reported by name; a detached HEAD is reported as "HEAD".
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return plumbing.HEAD.String(), nil
}

// HasUncommittedChanges returns true if there are staged, unstaged or
// untracked changes.
func (r *Repo) HasUncommittedChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return !status.IsClean(), nil
}

// StageAll adds every change in the working tree to the index, including
// untracked files and deletions. Ignored files are skipped.
func (r *Repo) StageAll() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add --all: %w", err)
	}
	return nil
}

// Tip returns the commit HEAD resolves to. The boolean is false when the
// current branch is unborn.
func (r *Repo) Tip() (plumbing.Hash, bool, error) {
	ref, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return plumbing.ZeroHash, false, nil
	}
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("resolve HEAD: %w", err)
	}

	c, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("find tip commit %s: %w", ref.Hash(), err)
	}
	return c.Hash, true, nil
}

// CreateCommit writes a commit object for tree with the given parents and
// moves the current branch to it.
func (r *Repo) CreateCommit(message string, tree plumbing.Hash, parents []plumbing.Hash) (plumbing.Hash, error) {
	sig, err := r.commitSignature()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	c := &object.Commit{
		Author:       *sig,
		Committer:    *sig,
		Message:      message,
		TreeHash:     tree,
		ParentHashes: parents,
	}
	obj := r.repo.Storer.NewEncodedObject()
	if err := c.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode commit: %w", err)
	}
	hash, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store commit: %w", err)
	}

	if err := r.advanceHead(hash); err != nil {
		return plumbing.ZeroHash, err
	}
	debug.Logf("created commit %s (tree %s, %d parent(s))", hash, tree, len(parents))
	return hash, nil
}

// advanceHead points the branch HEAD refers to at hash, or HEAD itself when
// detached.
func (r *Repo) advanceHead(hash plumbing.Hash) error {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return fmt.Errorf("read HEAD: %w", err)
	}

	name := plumbing.HEAD
	if head.Type() == plumbing.SymbolicReference {
		name = head.Target()
	}
	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(name, hash)); err != nil {
		return fmt.Errorf("update %s: %w", name, err)
	}
	return nil
}

// commitSignature reads user.name and user.email from local and global git
// config, falling back to the configured identity.
func (r *Repo) commitSignature() (*object.Signature, error) {
	name := r.fallbackName
	email := r.fallbackEmail

	// GlobalScope merges ~/.gitconfig under .git/config. System config
	// is not read.
	cfg, err := r.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		debug.Logf("read git config: %v", err)
	} else {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}

	if name == "" || email == "" {
		return nil, ErrNoIdentity
	}
	return &object.Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}, nil
}
