package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/ai/parse"
	"github.com/Ihebmsaed/Artygen/internal/ai/prompt"
	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrProfileNotFound = errors.New("profile not found")
	ErrGeneration      = errors.New("bio generation failed")
)

const maxBioLen = 2000

type Store interface {
	Get(ctx context.Context, userID int64) (model.Profile, error)
	Upsert(ctx context.Context, profile model.Profile) (model.Profile, error)
	SetBio(ctx context.Context, userID int64, bio string, generated bool) error
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	store     Store
	users     UserStore
	generator TextGenerator
	log       *zap.Logger
}

func NewService(store Store, users UserStore, generator TextGenerator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		users:     users,
		generator: generator,
		log:       log,
	}
}

// Get returns the stored profile, or an empty one for users who have
// not filled theirs in yet.
func (s *Service) Get(ctx context.Context, userID int64) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, ErrValidation
	}

	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrProfileNotFound) {
			return model.Profile{UserID: userID}, nil
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

type UpdateInput struct {
	Bio          string
	ArtStyle     string
	ArtInterests string
	PhotoKey     string
	Birthdate    *time.Time
}

func (s *Service) Update(ctx context.Context, userID int64, input UpdateInput) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, ErrValidation
	}
	if len(input.Bio) > maxBioLen {
		return model.Profile{}, ErrValidation
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	// A hand-edited bio is no longer a generated one.
	generated := current.BioGenerated && input.Bio == current.Bio

	profile, err := s.store.Upsert(ctx, model.Profile{
		UserID:       userID,
		Bio:          strings.TrimSpace(input.Bio),
		ArtStyle:     strings.TrimSpace(input.ArtStyle),
		ArtInterests: strings.TrimSpace(input.ArtInterests),
		BioGenerated: generated,
		PhotoKey:     input.PhotoKey,
		Birthdate:    input.Birthdate,
	})
	if err != nil {
		return model.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	return profile, nil
}

// GenerateBio asks the model for a fresh bio and stores it. Unlike the
// analysis pipeline this endpoint is explicitly invoked, so gateway
// failures surface to the caller instead of degrading silently.
func (s *Service) GenerateBio(ctx context.Context, userID int64, tone enums.Tone, language enums.Language) (string, error) {
	if userID <= 0 {
		return "", ErrValidation
	}
	tone = enums.ParseTone(string(tone))
	if language == "" {
		language = enums.DefaultLanguage
	} else if _, ok := enums.ParseLanguage(string(language)); !ok {
		return "", ErrValidation
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	bio, err := s.generateOne(ctx, user, profile, tone, language)
	if err != nil {
		return "", err
	}

	if err := s.store.SetBio(ctx, userID, bio, true); err != nil {
		if errors.Is(err, postgres.ErrProfileNotFound) {
			// No profile row yet: create one carrying the bio.
			profile.Bio = bio
			profile.BioGenerated = true
			if _, err := s.store.Upsert(ctx, profile); err != nil {
				return "", fmt.Errorf("store generated bio: %w", err)
			}
			return bio, nil
		}
		return "", fmt.Errorf("store generated bio: %w", err)
	}

	return bio, nil
}

// BioDraft is one alternative bio written in a specific tone.
type BioDraft struct {
	Tone enums.Tone
	Bio  string
}

// RegenerateBio drafts the bio again in every tone except the one just
// used, so the user can compare voices. Nothing is persisted: the
// chosen draft comes back through Update or another GenerateBio call.
func (s *Service) RegenerateBio(ctx context.Context, userID int64, current enums.Tone, language enums.Language) ([]BioDraft, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	current = enums.ParseTone(string(current))
	if language == "" {
		language = enums.DefaultLanguage
	} else if _, ok := enums.ParseLanguage(string(language)); !ok {
		return nil, ErrValidation
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var drafts []BioDraft
	for _, tone := range enums.Tones() {
		if tone == current {
			continue
		}
		bio, err := s.generateOne(ctx, user, profile, tone, language)
		if err != nil {
			if errors.Is(err, ErrGeneration) {
				s.log.Warn("bio draft empty",
					zap.Int64("user_id", userID), zap.String("tone", string(tone)))
				continue
			}
			return nil, err
		}
		drafts = append(drafts, BioDraft{Tone: tone, Bio: bio})
	}
	if len(drafts) == 0 {
		return nil, ErrGeneration
	}

	return drafts, nil
}

func (s *Service) generateOne(ctx context.Context, user model.User, profile model.Profile, tone enums.Tone, language enums.Language) (string, error) {
	raw, err := s.generator.GenerateText(ctx, prompt.Bio(prompt.BioInput{
		Username:     user.Username,
		FullName:     user.FullName(),
		ArtStyle:     profile.ArtStyle,
		ArtInterests: profile.ArtInterests,
		Tone:         tone,
		Language:     language,
	}))
	if err != nil {
		return "", fmt.Errorf("generate bio: %w", err)
	}

	bio := strings.TrimSpace(parse.StripFences(raw))
	if bio == "" {
		return "", ErrGeneration
	}
	if len(bio) > maxBioLen {
		bio = bio[:maxBioLen]
	}

	return bio, nil
}
