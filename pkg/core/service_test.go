package core_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/core"
)

// MockRepository implements core.Repository in memory.
type MockRepository struct {
	notes    map[string]core.Note
	replaced int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		notes: make(map[string]core.Note),
	}
}

func (m *MockRepository) Create(ctx context.Context, n core.Note) error {
	if _, ok := m.notes[n.Name]; ok {
		return core.ErrAlreadyExists
	}
	if err := n.Validate(); err != nil {
		return err
	}
	m.notes[n.Name] = n
	return nil
}

func (m *MockRepository) Get(ctx context.Context, name string) (core.Note, error) {
	n, ok := m.notes[name]
	if !ok {
		return core.Note{}, core.ErrNotFound
	}
	return n, nil
}

func (m *MockRepository) Replace(ctx context.Context, n core.Note) error {
	if _, ok := m.notes[n.Name]; !ok {
		return core.ErrNotFound
	}
	m.notes[n.Name] = n
	m.replaced++
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, name string) error {
	if _, ok := m.notes[name]; !ok {
		return core.ErrNotFound
	}
	delete(m.notes, name)
	return nil
}

func (m *MockRepository) List(ctx context.Context) ([]string, error) {
	var names []string
	for name := range m.notes {
		names = append(names, name)
	}
	// Sort for deterministic tests
	sort.Strings(names)
	return names, nil
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func TestService_CRUD(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, nil)
	ctx := context.TODO()

	// 1. Create
	err := service.CreateNote(ctx, "groceries", "Shopping", "milk, eggs")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	// 2. Get
	n, err := service.GetNote(ctx, "groceries")
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if n.Title != "Shopping" || n.Content != "milk, eggs" {
		t.Errorf("unexpected note: %+v", n)
	}

	// 3. List
	_ = service.CreateNote(ctx, "todo", "Todo", "write tests")
	names, err := service.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 notes, got %d", len(names))
	}

	// 4. Delete
	if err := service.DeleteNote(ctx, "groceries"); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	_, err = service.GetNote(ctx, "groceries")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestService_EditNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Title and Content", func(t *testing.T) {
		repo := NewMockRepository()
		service := core.NewService(repo, nil)
		require.NoError(t, service.CreateNote(ctx, "x", "T1", "C1"))

		require.NoError(t, service.EditNote(ctx, "x", "T2", "C2"))

		n, err := service.GetNote(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, "T2", n.Title)
		assert.Equal(t, "C2", n.Content)
	})

	t.Run("Rejected Edit Keeps Original", func(t *testing.T) {
		repo := NewMockRepository()
		service := core.NewService(repo, nil)
		require.NoError(t, service.CreateNote(ctx, "x", "T1", "C1"))

		err := service.EditNote(ctx, "x", "T2", "")
		assert.ErrorIs(t, err, core.ErrEmptyContent)
		assert.Zero(t, repo.replaced, "repository must not be touched")

		n, err := service.GetNote(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, "T1", n.Title)
		assert.Equal(t, "C1", n.Content)
	})

	t.Run("Missing Note", func(t *testing.T) {
		service := core.NewService(NewMockRepository(), nil)
		err := service.EditNote(ctx, "ghost", "T", "C")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestService_RejectsInvalidNames(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, nil)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../escape", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, service.CreateNote(ctx, name, "T", "C"), core.ErrInvalidName)
			_, err := service.GetNote(ctx, name)
			assert.ErrorIs(t, err, core.ErrInvalidName)
			assert.ErrorIs(t, service.EditNote(ctx, name, "T", "C"), core.ErrInvalidName)
			assert.ErrorIs(t, service.DeleteNote(ctx, name), core.ErrInvalidName)
		})
	}
	assert.Empty(t, repo.notes)
}

func TestService_State(t *testing.T) {
	service := core.NewService(NewMockRepository(), nil)

	state, ok := service.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "service", service.ComponentType())
}
