// Package commit stages the whole working tree and records it as one commit
// whose message follows the ticket naming convention of the current branch.
package commit

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexander-akhmetov/commitment/internal/debug"
	"github.com/alexander-akhmetov/commitment/internal/ticket"
)

// Backend is the version-control engine a commit is recorded in.
type Backend interface {
	// StageAll adds every working tree change, untracked files included,
	// to the index and persists it.
	StageAll() error
	// WriteTree stores the index as a tree and returns its hash.
	WriteTree() (plumbing.Hash, error)
	// Tip returns the commit the current branch points to, if any.
	Tip() (plumbing.Hash, bool, error)
	// CreateCommit records a commit and advances the current branch to it.
	CreateCommit(message string, tree plumbing.Hash, parents []plumbing.Hash) (plumbing.Hash, error)
}

// Result describes a recorded (or, for a dry run, planned) commit.
type Result struct {
	Branch  string
	Message string
	Hash    plumbing.Hash
	Tree    plumbing.Hash
	Parents []plumbing.Hash
	DryRun  bool
}

// All stages the working tree and commits it with message. The new commit's
// parent is the current tip; on an unborn branch it becomes a root commit.
func All(b Backend, message string) (*Result, error) {
	if message == "" {
		return nil, ticket.ErrEmptyMessage
	}

	if err := b.StageAll(); err != nil {
		return nil, fmt.Errorf("%w: stage working tree: %w", ErrStaging, err)
	}
	tree, err := b.WriteTree()
	if err != nil {
		return nil, fmt.Errorf("%w: write index tree: %w", ErrStaging, err)
	}

	tip, ok, err := b.Tip()
	if err != nil {
		return nil, fmt.Errorf("%w: resolve tip commit: %w", ErrRepositoryAccess, err)
	}
	var parents []plumbing.Hash
	if ok {
		parents = []plumbing.Hash{tip}
	} else {
		debug.Logf("no tip commit, creating a root commit")
	}

	hash, err := b.CreateCommit(message, tree, parents)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommitCreation, err)
	}

	return &Result{
		Message: message,
		Hash:    hash,
		Tree:    tree,
		Parents: parents,
	}, nil
}
