package commit

import "errors"

// Errors returned by All and Create. Backend failures are wrapped so that the
// step and the underlying cause are both reported.
var (
	// ErrNoChanges means the working tree is clean; nothing was done.
	ErrNoChanges = errors.New("no uncommitted changes found")

	// ErrRepositoryAccess means the repository state could not be read.
	ErrRepositoryAccess = errors.New("repository access failed")

	// ErrStaging means the working tree could not be indexed or written as a tree.
	ErrStaging = errors.New("staging failed")

	// ErrCommitCreation means the commit object or branch update failed.
	ErrCommitCreation = errors.New("commit creation failed")
)
