package categories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

type memoryStore struct {
	categories map[int64]model.Category
	subs       map[int64][]model.Subcategory
	nextID     int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		categories: make(map[int64]model.Category),
		subs:       make(map[int64][]model.Subcategory),
		nextID:     1,
	}
}

func (m *memoryStore) Create(_ context.Context, category model.Category) (model.Category, error) {
	category.ID = m.nextID
	m.nextID++
	m.categories[category.ID] = category
	return category, nil
}

func (m *memoryStore) GetByID(_ context.Context, id int64) (model.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return model.Category{}, postgres.ErrCategoryNotFound
	}
	return category, nil
}

func (m *memoryStore) List(context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, category := range m.categories {
		out = append(out, category)
	}
	return out, nil
}

func (m *memoryStore) ListSubcategories(_ context.Context, categoryID int64) ([]model.Subcategory, error) {
	return m.subs[categoryID], nil
}

func (m *memoryStore) InsertSubcategories(_ context.Context, categoryID int64, subs []model.Subcategory) error {
	m.subs[categoryID] = append(m.subs[categoryID], subs...)
	return nil
}

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) GenerateText(context.Context, string) (string, error) {
	return g.response, g.err
}

func TestSuggestStoresCleanPairs(t *testing.T) {
	store := newMemoryStore()
	category, _ := store.Create(context.Background(), model.Category{Name: "Painting"})
	gen := &stubGenerator{response: "Portraits: People\nLandscapes: Scenes"}
	svc := NewService(store, gen, zap.NewNop())

	result, err := svc.Suggest(context.Background(), category.ID)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !result.Clean {
		t.Fatalf("expected clean parse")
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(result.Suggestions))
	}
	if len(store.subs[category.ID]) != 2 {
		t.Fatalf("clean suggestions must be persisted, got %d", len(store.subs[category.ID]))
	}
	if store.subs[category.ID][0].CategoryID != category.ID {
		t.Fatalf("suggestion not bound to category: %+v", store.subs[category.ID][0])
	}
}

func TestSuggestDiagnosticNotPersisted(t *testing.T) {
	store := newMemoryStore()
	category, _ := store.Create(context.Background(), model.Category{Name: "Sculpture"})
	gen := &stubGenerator{response: "a rambling paragraph with no usable structure whatsoever"}
	svc := NewService(store, gen, zap.NewNop())

	result, err := svc.Suggest(context.Background(), category.ID)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if result.Clean {
		t.Fatalf("expected diagnostic fallback")
	}
	if len(result.Suggestions) != 1 || !strings.Contains(result.Suggestions[0].Name, "Sculpture") {
		t.Fatalf("expected single diagnostic entry, got %+v", result.Suggestions)
	}
	if len(store.subs[category.ID]) != 0 {
		t.Fatalf("diagnostic entry must never be persisted")
	}
}

func TestSuggestUnknownCategory(t *testing.T) {
	svc := NewService(newMemoryStore(), &stubGenerator{}, zap.NewNop())
	if _, err := svc.Suggest(context.Background(), 404); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestSuggestPropagatesGatewayError(t *testing.T) {
	store := newMemoryStore()
	category, _ := store.Create(context.Background(), model.Category{Name: "Painting"})
	svc := NewService(store, &stubGenerator{err: errors.New("timeout")}, zap.NewNop())

	if _, err := svc.Suggest(context.Background(), category.ID); err == nil {
		t.Fatalf("expected gateway error to surface")
	}
}
