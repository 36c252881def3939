package commit

import (
	"sync"

	"github.com/go-git/go-git/v5/plumbing"
)

// MockBackend implements Repository for testing.
type MockBackend struct {
	mu sync.Mutex

	StageAllFunc              func() error
	WriteTreeFunc             func() (plumbing.Hash, error)
	TipFunc                   func() (plumbing.Hash, bool, error)
	CreateCommitFunc          func(message string, tree plumbing.Hash, parents []plumbing.Hash) (plumbing.Hash, error)
	CurrentBranchFunc         func() (string, error)
	HasUncommittedChangesFunc func() (bool, error)

	// Calls records method names in call order.
	Calls             []string
	CreateCommitCalls []struct {
		Message string
		Tree    plumbing.Hash
		Parents []plumbing.Hash
	}
}

var _ Repository = (*MockBackend)(nil)

// NewMockBackend creates a MockBackend for a dirty working tree on an unborn
// "main" branch.
func NewMockBackend() *MockBackend {
	return &MockBackend{Calls: make([]string, 0)}
}

func (m *MockBackend) record(name string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, name)
	m.mu.Unlock()
}

// StageAll records the call.
func (m *MockBackend) StageAll() error {
	m.record("StageAll")
	if m.StageAllFunc != nil {
		return m.StageAllFunc()
	}
	return nil
}

// WriteTree returns a fixed tree hash unless overridden.
func (m *MockBackend) WriteTree() (plumbing.Hash, error) {
	m.record("WriteTree")
	if m.WriteTreeFunc != nil {
		return m.WriteTreeFunc()
	}
	return plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904"), nil
}

// Tip reports no tip unless overridden.
func (m *MockBackend) Tip() (plumbing.Hash, bool, error) {
	m.record("Tip")
	if m.TipFunc != nil {
		return m.TipFunc()
	}
	return plumbing.ZeroHash, false, nil
}

// CreateCommit records its arguments.
func (m *MockBackend) CreateCommit(message string, tree plumbing.Hash, parents []plumbing.Hash) (plumbing.Hash, error) {
	m.record("CreateCommit")
	m.mu.Lock()
	m.CreateCommitCalls = append(m.CreateCommitCalls, struct {
		Message string
		Tree    plumbing.Hash
		Parents []plumbing.Hash
	}{message, tree, parents})
	m.mu.Unlock()

	if m.CreateCommitFunc != nil {
		return m.CreateCommitFunc(message, tree, parents)
	}
	return plumbing.NewHash("1111111111111111111111111111111111111111"), nil
}

// CurrentBranch returns "main" unless overridden.
func (m *MockBackend) CurrentBranch() (string, error) {
	m.record("CurrentBranch")
	if m.CurrentBranchFunc != nil {
		return m.CurrentBranchFunc()
	}
	return "main", nil
}

// HasUncommittedChanges returns true unless overridden.
func (m *MockBackend) HasUncommittedChanges() (bool, error) {
	m.record("HasUncommittedChanges")
	if m.HasUncommittedChangesFunc != nil {
		return m.HasUncommittedChangesFunc()
	}
	return true, nil
}
