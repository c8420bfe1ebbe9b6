package artworks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/ai/prompt"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrForbidden       = errors.New("not the artwork owner")
)

// RateLimitError reports how long the caller should wait before the
// next generation attempt.
type RateLimitError struct {
	RetryAfterSec int64
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("generation rate limit reached, retry in %ds", e.RetryAfterSec)
}

const (
	maxDescriptionLen = 1000
	generatedTitleLen = 50
)

type Store interface {
	Create(ctx context.Context, artwork model.Artwork) (model.Artwork, error)
	GetByID(ctx context.Context, id int64) (model.Artwork, error)
	List(ctx context.Context, limit, offset int) ([]model.Artwork, error)
	Delete(ctx context.Context, id int64) error
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type ObjectStorage interface {
	PutBytes(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type Limiter interface {
	AllowGeneration(ctx context.Context, userID int64) (int64, bool, error)
}

type CategoryResolver interface {
	GetOrCreate(ctx context.Context, name, description string) (model.Category, error)
}

const (
	defaultCategoryName        = "AI Generated"
	defaultCategoryDescription = "Artworks produced by the image generation pipeline"
)

type Service struct {
	store      Store
	generator  ImageGenerator
	storage    ObjectStorage
	limiter    Limiter
	categories CategoryResolver
	log        *zap.Logger
}

// AttachCategories enables the implicit default category for saves that
// do not name one.
func (s *Service) AttachCategories(categories CategoryResolver) {
	s.categories = categories
}

func NewService(store Store, generator ImageGenerator, storage ObjectStorage, limiter Limiter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		generator: generator,
		storage:   storage,
		limiter:   limiter,
		log:       log,
	}
}

// Generated is the outcome of one image generation: the stored object
// and a short-lived URL to preview it.
type Generated struct {
	ObjectKey string
	URL       string
	Prompt    string
}

// Generate runs the text-to-image gateway and stores the result. The
// image is kept even if the caller never saves an artwork record, so a
// crashed client does not waste the upstream call.
func (s *Service) Generate(ctx context.Context, userID int64, description, style string) (Generated, error) {
	description = strings.TrimSpace(description)
	if userID <= 0 || description == "" || len(description) > maxDescriptionLen {
		return Generated{}, ErrValidation
	}

	if s.limiter != nil {
		retryAfter, allowed, err := s.limiter.AllowGeneration(ctx, userID)
		if err != nil {
			return Generated{}, fmt.Errorf("check generation rate: %w", err)
		}
		if !allowed {
			return Generated{}, &RateLimitError{RetryAfterSec: retryAfter}
		}
	}

	imagePrompt := prompt.ImagePrompt(description, style)
	data, err := s.generator.GenerateImage(ctx, imagePrompt)
	if err != nil {
		return Generated{}, fmt.Errorf("generate image: %w", err)
	}

	key := fmt.Sprintf("artworks/%d/%s.png", userID, uuid.NewString())
	if err := s.storage.PutBytes(ctx, key, data, "image/png"); err != nil {
		return Generated{}, fmt.Errorf("store generated image: %w", err)
	}

	url, err := s.storage.PresignGet(ctx, key, 0)
	if err != nil {
		s.log.Warn("presign generated image failed", zap.String("key", key), zap.Error(err))
		url = ""
	}

	return Generated{ObjectKey: key, URL: url, Prompt: imagePrompt}, nil
}

type SaveInput struct {
	CategoryID  int64
	Title       string
	Description string
	ObjectKey   string
	Tags        string
}

// Save records a generated image as an artwork. A missing title is
// derived from the description that produced the image.
func (s *Service) Save(ctx context.Context, userID int64, input SaveInput) (model.Artwork, error) {
	input.ObjectKey = strings.TrimSpace(input.ObjectKey)
	input.Title = strings.TrimSpace(input.Title)
	if userID <= 0 || input.ObjectKey == "" {
		return model.Artwork{}, ErrValidation
	}

	if input.Title == "" {
		input.Title = derivedTitle(input.Description)
	}

	if input.CategoryID == 0 && s.categories != nil {
		category, err := s.categories.GetOrCreate(ctx, defaultCategoryName, defaultCategoryDescription)
		if err != nil {
			s.log.Warn("resolve default category failed", zap.Error(err))
		} else {
			input.CategoryID = category.ID
		}
	}

	artwork, err := s.store.Create(ctx, model.Artwork{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		ObjectKey:   input.ObjectKey,
		Tags:        strings.TrimSpace(input.Tags),
		AIGenerated: true,
	})
	if err != nil {
		return model.Artwork{}, fmt.Errorf("save artwork: %w", err)
	}

	return artwork, nil
}

// Delete removes an artwork and its stored image. Only the owner may
// delete; the object removal is best effort since the record is the
// source of truth.
func (s *Service) Delete(ctx context.Context, userID, artworkID int64) error {
	if userID <= 0 || artworkID <= 0 {
		return ErrValidation
	}

	artwork, err := s.store.GetByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, postgres.ErrArtworkNotFound) {
			return ErrArtworkNotFound
		}
		return fmt.Errorf("get artwork: %w", err)
	}
	if artwork.UserID != userID {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, artworkID); err != nil {
		if errors.Is(err, postgres.ErrArtworkNotFound) {
			return ErrArtworkNotFound
		}
		return fmt.Errorf("delete artwork: %w", err)
	}

	if artwork.ObjectKey != "" {
		if err := s.storage.Delete(ctx, artwork.ObjectKey); err != nil {
			s.log.Warn("delete artwork object failed",
				zap.Int64("artwork_id", artworkID), zap.String("key", artwork.ObjectKey), zap.Error(err))
		}
	}

	return nil
}

// ArtworkView is an artwork plus a short-lived URL for its image.
type ArtworkView struct {
	model.Artwork
	URL string `json:"url"`
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]ArtworkView, error) {
	artworks, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}

	views := make([]ArtworkView, 0, len(artworks))
	for _, artwork := range artworks {
		view := ArtworkView{Artwork: artwork}
		if artwork.ObjectKey != "" {
			url, err := s.storage.PresignGet(ctx, artwork.ObjectKey, 0)
			if err != nil {
				s.log.Warn("presign artwork failed",
					zap.Int64("artwork_id", artwork.ID), zap.Error(err))
			} else {
				view.URL = url
			}
		}
		views = append(views, view)
	}

	return views, nil
}

func derivedTitle(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return "AI artwork"
	}
	runes := []rune(description)
	if len(runes) > generatedTitleLen {
		description = string(runes[:generatedTitleLen])
	}
	return "AI: " + description
}
