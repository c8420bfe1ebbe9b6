package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/ai"
	"github.com/Ihebmsaed/Artygen/internal/ai/parse"
	"github.com/Ihebmsaed/Artygen/internal/ai/prompt"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrCategoryNotFound = errors.New("category not found")
)

type Store interface {
	Create(ctx context.Context, category model.Category) (model.Category, error)
	GetByID(ctx context.Context, id int64) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ListSubcategories(ctx context.Context, categoryID int64) ([]model.Subcategory, error)
	InsertSubcategories(ctx context.Context, categoryID int64, subs []model.Subcategory) error
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	store     Store
	generator TextGenerator
	log       *zap.Logger
}

func NewService(store Store, generator TextGenerator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		generator: generator,
		log:       log,
	}
}

func (s *Service) Create(ctx context.Context, name, description string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, ErrValidation
	}

	category, err := s.store.Create(ctx, model.Category{
		Name:        name,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *Service) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Service) ListSubcategories(ctx context.Context, categoryID int64) ([]model.Subcategory, error) {
	if categoryID <= 0 {
		return nil, ErrValidation
	}
	if _, err := s.get(ctx, categoryID); err != nil {
		return nil, err
	}

	subs, err := s.store.ListSubcategories(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subs, nil
}

// SuggestResult carries the parsed suggestions plus whether they came
// from a clean model answer or the diagnostic fallback.
type SuggestResult struct {
	Suggestions []model.Subcategory
	Clean       bool
}

// Suggest asks the model for subcategory ideas and stores the parsed
// pairs. The diagnostic pseudo-entry produced when nothing parses is
// returned to the caller but never persisted.
func (s *Service) Suggest(ctx context.Context, categoryID int64) (SuggestResult, error) {
	category, err := s.get(ctx, categoryID)
	if err != nil {
		return SuggestResult{}, err
	}

	raw, err := s.generator.GenerateText(ctx, prompt.Subcategories(category.Name))
	if err != nil {
		return SuggestResult{}, fmt.Errorf("generate subcategory suggestions: %w", err)
	}

	parsed, clean := parse.Subcategories(raw, category.Name)
	suggestions := toModel(categoryID, parsed)

	if clean {
		if err := s.store.InsertSubcategories(ctx, categoryID, suggestions); err != nil {
			return SuggestResult{}, fmt.Errorf("store subcategory suggestions: %w", err)
		}
	} else {
		s.log.Warn("subcategory suggestions unparseable",
			zap.Int64("category_id", categoryID), zap.Int("raw_len", len(raw)))
	}

	return SuggestResult{Suggestions: suggestions, Clean: clean}, nil
}

func (s *Service) get(ctx context.Context, categoryID int64) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, ErrValidation
	}
	category, err := s.store.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, postgres.ErrCategoryNotFound) {
			return model.Category{}, ErrCategoryNotFound
		}
		return model.Category{}, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func toModel(categoryID int64, parsed []ai.Subcategory) []model.Subcategory {
	out := make([]model.Subcategory, 0, len(parsed))
	for _, sub := range parsed {
		out = append(out, model.Subcategory{
			CategoryID:  categoryID,
			Name:        sub.Name,
			Description: sub.Description,
		})
	}
	return out
}
