package artworks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

type memoryStore struct {
	artworks []model.Artwork
}

func (m *memoryStore) Create(_ context.Context, artwork model.Artwork) (model.Artwork, error) {
	artwork.ID = int64(len(m.artworks) + 1)
	m.artworks = append(m.artworks, artwork)
	return artwork, nil
}

func (m *memoryStore) GetByID(_ context.Context, id int64) (model.Artwork, error) {
	for _, artwork := range m.artworks {
		if artwork.ID == id {
			return artwork, nil
		}
	}
	return model.Artwork{}, postgres.ErrArtworkNotFound
}

func (m *memoryStore) List(context.Context, int, int) ([]model.Artwork, error) {
	return m.artworks, nil
}

func (m *memoryStore) Delete(_ context.Context, id int64) error {
	for i, artwork := range m.artworks {
		if artwork.ID == id {
			m.artworks = append(m.artworks[:i], m.artworks[i+1:]...)
			return nil
		}
	}
	return postgres.ErrArtworkNotFound
}

type stubImageGen struct {
	data       []byte
	err        error
	lastPrompt string
}

func (g *stubImageGen) GenerateImage(_ context.Context, prompt string) ([]byte, error) {
	g.lastPrompt = prompt
	return g.data, g.err
}

type memoryStorage struct {
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) PutBytes(_ context.Context, key string, data []byte, _ string) error {
	s.objects[key] = data
	return nil
}

func (s *memoryStorage) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://media.test/" + key, nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

type stubLimiter struct {
	allowed    bool
	retryAfter int64
}

func (l *stubLimiter) AllowGeneration(context.Context, int64) (int64, bool, error) {
	if l.allowed {
		return 0, true, nil
	}
	return l.retryAfter, false, nil
}

func TestGenerateStoresImageUnderUserPrefix(t *testing.T) {
	gen := &stubImageGen{data: []byte{0x89, 'P', 'N', 'G'}}
	storage := newMemoryStorage()
	svc := NewService(&memoryStore{}, gen, storage, &stubLimiter{allowed: true}, zap.NewNop())

	result, err := svc.Generate(context.Background(), 7, "a cat in a museum", "impressionist")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(result.ObjectKey, "artworks/7/") || !strings.HasSuffix(result.ObjectKey, ".png") {
		t.Fatalf("unexpected object key: %s", result.ObjectKey)
	}
	if _, ok := storage.objects[result.ObjectKey]; !ok {
		t.Fatalf("image bytes not stored")
	}
	if result.URL == "" {
		t.Fatalf("preview URL missing")
	}
	if !strings.Contains(gen.lastPrompt, "impressionist style") {
		t.Fatalf("style not folded into prompt: %q", gen.lastPrompt)
	}
}

func TestGenerateRateLimited(t *testing.T) {
	svc := NewService(&memoryStore{}, &stubImageGen{data: []byte{1}}, newMemoryStorage(),
		&stubLimiter{allowed: false, retryAfter: 42}, zap.NewNop())

	_, err := svc.Generate(context.Background(), 7, "a cat", "")
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rateErr.RetryAfterSec != 42 {
		t.Fatalf("unexpected retry_after: %d", rateErr.RetryAfterSec)
	}
}

func TestGeneratePropagatesGatewayError(t *testing.T) {
	svc := NewService(&memoryStore{}, &stubImageGen{err: errors.New("model loading")},
		newMemoryStorage(), &stubLimiter{allowed: true}, zap.NewNop())

	if _, err := svc.Generate(context.Background(), 7, "a cat", ""); err == nil {
		t.Fatalf("expected gateway error to surface")
	}
}

func TestSaveDerivesTitle(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store, &stubImageGen{}, newMemoryStorage(), nil, zap.NewNop())

	longDescription := strings.Repeat("vivid abstract shapes ", 10)
	artwork, err := svc.Save(context.Background(), 7, SaveInput{
		Description: longDescription,
		ObjectKey:   "artworks/7/x.png",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(artwork.Title, "AI: ") {
		t.Fatalf("derived title missing prefix: %q", artwork.Title)
	}
	if len([]rune(artwork.Title)) > generatedTitleLen+4 {
		t.Fatalf("derived title too long: %q", artwork.Title)
	}
	if !artwork.AIGenerated {
		t.Fatalf("saved artwork must be marked ai generated")
	}
}

func TestSaveRequiresObjectKey(t *testing.T) {
	svc := NewService(&memoryStore{}, &stubImageGen{}, newMemoryStorage(), nil, zap.NewNop())
	if _, err := svc.Save(context.Background(), 7, SaveInput{Title: "T"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListAttachesURLs(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store, &stubImageGen{}, newMemoryStorage(), nil, zap.NewNop())

	if _, err := svc.Save(context.Background(), 7, SaveInput{Title: "T", ObjectKey: "artworks/7/x.png"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	views, err := svc.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 || views[0].URL != "https://media.test/artworks/7/x.png" {
		t.Fatalf("unexpected views: %+v", views)
	}
}

type stubCategoryResolver struct {
	calls int
}

func (r *stubCategoryResolver) GetOrCreate(_ context.Context, name, description string) (model.Category, error) {
	r.calls++
	return model.Category{ID: 99, Name: name, Description: description}, nil
}

func TestSaveFallsBackToDefaultCategory(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store, &stubImageGen{}, newMemoryStorage(), &stubLimiter{allowed: true}, zap.NewNop())
	resolver := &stubCategoryResolver{}
	svc.AttachCategories(resolver)

	artwork, err := svc.Save(context.Background(), 7, SaveInput{
		Description: "a cat in a museum",
		ObjectKey:   "artworks/7/x.png",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resolver.calls != 1 {
		t.Fatalf("expected one resolver call, got %d", resolver.calls)
	}
	if artwork.CategoryID != 99 {
		t.Fatalf("unexpected category id: %d", artwork.CategoryID)
	}
}

func TestSaveKeepsExplicitCategory(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store, &stubImageGen{}, newMemoryStorage(), &stubLimiter{allowed: true}, zap.NewNop())
	resolver := &stubCategoryResolver{}
	svc.AttachCategories(resolver)

	artwork, err := svc.Save(context.Background(), 7, SaveInput{
		CategoryID: 3,
		Title:      "Museum Cat",
		ObjectKey:  "artworks/7/y.png",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resolver.calls != 0 {
		t.Fatalf("resolver must not be called, got %d calls", resolver.calls)
	}
	if artwork.CategoryID != 3 {
		t.Fatalf("unexpected category id: %d", artwork.CategoryID)
	}
}

func TestDeleteRemovesRecordAndObject(t *testing.T) {
	store := &memoryStore{}
	storage := newMemoryStorage()
	svc := NewService(store, &stubImageGen{}, storage, nil, zap.NewNop())

	storage.objects["artworks/7/z.png"] = []byte{1}
	artwork, _ := store.Create(context.Background(), model.Artwork{
		UserID: 7, Title: "Museum Cat", ObjectKey: "artworks/7/z.png",
	})

	if err := svc.Delete(context.Background(), 7, artwork.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.artworks) != 0 {
		t.Fatalf("record not removed: %+v", store.artworks)
	}
	if _, ok := storage.objects["artworks/7/z.png"]; ok {
		t.Fatalf("stored object not removed")
	}
}

func TestDeleteOnlyByOwner(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store, &stubImageGen{}, newMemoryStorage(), nil, zap.NewNop())

	artwork, _ := store.Create(context.Background(), model.Artwork{UserID: 7, Title: "T"})

	if err := svc.Delete(context.Background(), 8, artwork.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(store.artworks) != 1 {
		t.Fatalf("record must survive a forbidden delete")
	}
}

func TestDeleteMissingArtwork(t *testing.T) {
	svc := NewService(&memoryStore{}, &stubImageGen{}, newMemoryStorage(), nil, zap.NewNop())
	if err := svc.Delete(context.Background(), 7, 99); !errors.Is(err, ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound, got %v", err)
	}
}
