package commit

import (
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/commitment/internal/ticket"
)

var tipHash = plumbing.NewHash("2222222222222222222222222222222222222222")

func TestAll_RootCommit(t *testing.T) {
	m := NewMockBackend()

	res, err := All(m, "ABC-123 Initial")
	require.NoError(t, err)

	assert.Equal(t, []string{"StageAll", "WriteTree", "Tip", "CreateCommit"}, m.Calls)
	require.Len(t, m.CreateCommitCalls, 1)
	assert.Equal(t, "ABC-123 Initial", m.CreateCommitCalls[0].Message)
	assert.Empty(t, m.CreateCommitCalls[0].Parents)

	assert.Equal(t, "ABC-123 Initial", res.Message)
	assert.Equal(t, plumbing.NewHash("1111111111111111111111111111111111111111"), res.Hash)
	assert.Equal(t, plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904"), res.Tree)
	assert.Empty(t, res.Parents)
	assert.False(t, res.DryRun)
}

func TestAll_WithTip(t *testing.T) {
	m := NewMockBackend()
	m.TipFunc = func() (plumbing.Hash, bool, error) { return tipHash, true, nil }

	res, err := All(m, "Second")
	require.NoError(t, err)

	require.Len(t, m.CreateCommitCalls, 1)
	assert.Equal(t, []plumbing.Hash{tipHash}, m.CreateCommitCalls[0].Parents)
	assert.Equal(t, []plumbing.Hash{tipHash}, res.Parents)
}

func TestAll_Failures(t *testing.T) {
	backendErr := errors.New("disk full")

	tests := []struct {
		name      string
		setup     func(m *MockBackend)
		wantErr   error
		wantStep  string
		wantCalls []string
	}{
		{
			name:      "stage all fails",
			setup:     func(m *MockBackend) { m.StageAllFunc = func() error { return backendErr } },
			wantErr:   ErrStaging,
			wantStep:  "stage working tree",
			wantCalls: []string{"StageAll"},
		},
		{
			name: "write tree fails",
			setup: func(m *MockBackend) {
				m.WriteTreeFunc = func() (plumbing.Hash, error) { return plumbing.ZeroHash, backendErr }
			},
			wantErr:   ErrStaging,
			wantStep:  "write index tree",
			wantCalls: []string{"StageAll", "WriteTree"},
		},
		{
			name: "tip resolution fails",
			setup: func(m *MockBackend) {
				m.TipFunc = func() (plumbing.Hash, bool, error) { return plumbing.ZeroHash, false, backendErr }
			},
			wantErr:   ErrRepositoryAccess,
			wantStep:  "resolve tip commit",
			wantCalls: []string{"StageAll", "WriteTree", "Tip"},
		},
		{
			name: "commit creation fails",
			setup: func(m *MockBackend) {
				m.CreateCommitFunc = func(string, plumbing.Hash, []plumbing.Hash) (plumbing.Hash, error) {
					return plumbing.ZeroHash, backendErr
				}
			},
			wantErr:   ErrCommitCreation,
			wantCalls: []string{"StageAll", "WriteTree", "Tip", "CreateCommit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockBackend()
			tt.setup(m)

			res, err := All(m, "Message")
			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, backendErr)
			assert.Contains(t, err.Error(), tt.wantStep)
			assert.Equal(t, tt.wantCalls, m.Calls)
		})
	}
}

func TestAll_EmptyMessageTouchesNothing(t *testing.T) {
	m := NewMockBackend()

	_, err := All(m, "")
	assert.ErrorIs(t, err, ticket.ErrEmptyMessage)
	assert.Empty(t, m.Calls)
}
