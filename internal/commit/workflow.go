package commit

import (
	"fmt"

	"github.com/alexander-akhmetov/commitment/internal/debug"
	"github.com/alexander-akhmetov/commitment/internal/ticket"
)

// Repository is a Backend that can also report the state Create checks
// before committing.
type Repository interface {
	Backend
	CurrentBranch() (string, error)
	HasUncommittedChanges() (bool, error)
}

// Options control Create.
type Options struct {
	// DryRun composes the message without touching the index or history.
	DryRun bool
}

// Create commits every uncommitted change in r. The message is composed from
// the current branch name and rawMessage; nothing is written unless the
// working tree has changes and the message composes cleanly.
func Create(r Repository, rawMessage string, opts Options) (*Result, error) {
	has, err := r.HasUncommittedChanges()
	if err != nil {
		return nil, fmt.Errorf("%w: read status: %w", ErrRepositoryAccess, err)
	}
	if !has {
		return nil, ErrNoChanges
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("%w: resolve current branch: %w", ErrRepositoryAccess, err)
	}

	message, err := ticket.Compose(branch, rawMessage)
	if err != nil {
		return nil, err
	}
	debug.Logf("branch %q, message %q -> %q", branch, rawMessage, message)

	if opts.DryRun {
		return &Result{Branch: branch, Message: message, DryRun: true}, nil
	}

	res, err := All(r, message)
	if err != nil {
		return nil, err
	}
	res.Branch = branch
	return res, nil
}
