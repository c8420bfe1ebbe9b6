package posts

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
	"github.com/Ihebmsaed/Artygen/internal/services/analysis"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrPostNotFound = errors.New("post not found")
)

const maxPostContentLen = 10000

type Store interface {
	Create(ctx context.Context, post model.Post) (model.Post, error)
	GetByID(ctx context.Context, id int64) (model.Post, error)
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
	SaveProcessing(ctx context.Context, postID int64, rec postgres.PostAnalysisRecord, translations map[enums.Language]model.LocalizedText) error
	UpsertTranslation(ctx context.Context, postID int64, lang enums.Language, pair model.LocalizedText) error
	Like(ctx context.Context, postID int64) (int, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (analysis.Result, error)
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Notifier interface {
	Create(ctx context.Context, notification model.Notification) error
}

// Service owns the post lifecycle: persist first, then run the AI
// pipeline over the stored record. The pipeline is best effort; a post
// is never lost because a model call failed.
type Service struct {
	store     Store
	analyzer  Analyzer
	generator TextGenerator
	notifier  Notifier
	log       *zap.Logger
	now       func() time.Time
}

func NewService(store Store, analyzer Analyzer, generator TextGenerator, notifier Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		analyzer:  analyzer,
		generator: generator,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

type CreateInput struct {
	AuthorID int64
	Title    string
	Content  string
	ImageKey string
	Language enums.Language
}

// Create persists the post, then processes it synchronously. Processing
// failures are logged, not returned: the primary insert already
// succeeded and the caller gets their post back either way.
func (s *Service) Create(ctx context.Context, input CreateInput) (model.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)

	if input.AuthorID <= 0 || input.Title == "" || input.Content == "" {
		return model.Post{}, ErrValidation
	}
	if len(input.Content) > maxPostContentLen {
		return model.Post{}, ErrValidation
	}
	if input.Language == "" {
		input.Language = enums.DefaultLanguage
	} else if _, ok := enums.ParseLanguage(string(input.Language)); !ok {
		return model.Post{}, ErrValidation
	}

	post, err := s.store.Create(ctx, model.Post{
		AuthorID:         input.AuthorID,
		Title:            input.Title,
		Content:          input.Content,
		ImageKey:         input.ImageKey,
		OriginalLanguage: input.Language,
	})
	if err != nil {
		return model.Post{}, fmt.Errorf("create post: %w", err)
	}

	processed, err := s.Process(ctx, post)
	if err != nil {
		s.log.Warn("post pipeline failed after insert",
			zap.Int64("post_id", post.ID), zap.Error(err))
		return post, nil
	}

	return processed, nil
}

// Process runs analysis and translation over a stored post and writes
// the whole outcome in one batch.
func (s *Service) Process(ctx context.Context, post model.Post) (model.Post, error) {
	if post.ID <= 0 {
		return model.Post{}, ErrValidation
	}

	result, err := s.analyzer.Analyze(ctx, post.Title+"\n\n"+post.Content)
	if err != nil {
		return model.Post{}, fmt.Errorf("analyze post: %w", err)
	}

	now := s.now().UTC()
	post.SentimentScore = &result.Sentiment.Score
	label := result.Sentiment.Label
	post.SentimentLabel = &label
	post.IsAppropriate = result.Moderation.IsAppropriate
	post.ModerationReason = result.Moderation.Reason
	post.ModerationDate = &now

	translations := s.translateMissing(ctx, post)
	for lang, pair := range translations {
		post.SetTranslation(lang, pair)
	}

	rec := postgres.PostAnalysisRecord{
		SentimentScore:   post.SentimentScore,
		SentimentLabel:   post.SentimentLabel,
		IsAppropriate:    post.IsAppropriate,
		ModerationReason: post.ModerationReason,
		ModerationDate:   now,
	}
	if err := s.store.SaveProcessing(ctx, post.ID, rec, translations); err != nil {
		return model.Post{}, fmt.Errorf("save post processing: %w", err)
	}

	s.notifyOutcome(ctx, post)

	return post, nil
}

// Reanalyze reruns the pipeline over an existing post, refreshing the
// verdicts and filling in any translation still missing.
func (s *Service) Reanalyze(ctx context.Context, postID int64) (model.Post, error) {
	post, err := s.get(ctx, postID)
	if err != nil {
		return model.Post{}, err
	}
	return s.Process(ctx, post)
}

// TranslateTo returns the post in the requested language. The original
// language and cached translations are served as-is; otherwise one
// gateway call is made. A fallback pair (the original text) is returned
// but not cached, so a later retry can still produce a real translation.
func (s *Service) TranslateTo(ctx context.Context, postID int64, lang enums.Language) (model.LocalizedText, error) {
	if _, ok := enums.ParseLanguage(string(lang)); !ok {
		return model.LocalizedText{}, ErrValidation
	}

	post, err := s.get(ctx, postID)
	if err != nil {
		return model.LocalizedText{}, err
	}

	original := model.LocalizedText{Title: post.Title, Content: post.Content}
	if lang == post.OriginalLanguage {
		return original, nil
	}
	if pair, ok := post.Translation(lang); ok {
		return pair, nil
	}

	pair, ok := s.translateOne(ctx, post, lang)
	if !ok {
		return original, nil
	}

	if err := s.store.UpsertTranslation(ctx, postID, lang, pair); err != nil {
		s.log.Warn("cache translation failed",
			zap.Int64("post_id", postID), zap.String("lang", string(lang)), zap.Error(err))
	}

	return pair, nil
}

func (s *Service) Get(ctx context.Context, postID int64) (model.Post, error) {
	return s.get(ctx, postID)
}

// Like bumps the like counter and returns the new total.
func (s *Service) Like(ctx context.Context, postID int64) (int, error) {
	if postID <= 0 {
		return 0, ErrValidation
	}
	count, err := s.store.Like(ctx, postID)
	if err != nil {
		if errors.Is(err, postgres.ErrPostNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, fmt.Errorf("like post: %w", err)
	}
	return count, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	posts, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *Service) get(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		return model.Post{}, ErrValidation
	}
	post, err := s.store.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, postgres.ErrPostNotFound) {
			return model.Post{}, ErrPostNotFound
		}
		return model.Post{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// translateMissing produces pairs for every supported language the post
// does not have yet. Only genuine translations are returned; fallbacks
// are skipped so they are not cached as real ones.
func (s *Service) translateMissing(ctx context.Context, post model.Post) map[enums.Language]model.LocalizedText {
	translations := make(map[enums.Language]model.LocalizedText, 3)
	for _, lang := range enums.Languages() {
		if lang == post.OriginalLanguage {
			continue
		}
		if _, ok := post.Translation(lang); ok {
			continue
		}
		if pair, ok := s.translateOne(ctx, post, lang); ok {
			translations[lang] = pair
		}
	}
	return translations
}

func (s *Service) translateOne(ctx context.Context, post model.Post, lang enums.Language) (model.LocalizedText, bool) {
	raw, err := s.generator.GenerateText(ctx, prompt.Translation(prompt.TranslationInput{
		Title:   post.Title,
		Content: post.Content,
		Source:  post.OriginalLanguage,
		Target:  lang,
	}))
	if err != nil {
		s.log.Warn("translation call failed",
			zap.Int64("post_id", post.ID), zap.String("lang", string(lang)), zap.Error(err))
		return model.LocalizedText{}, false
	}

	translated, ok := parse.Translation(raw, post.Title, post.Content)
	if !ok {
		s.log.Warn("translation answer unparseable",
			zap.Int64("post_id", post.ID), zap.String("lang", string(lang)))
		return model.LocalizedText{}, false
	}

	return model.LocalizedText{Title: translated.Title, Content: translated.Content}, true
}

func (s *Service) notifyOutcome(ctx context.Context, post model.Post) {
	if s.notifier == nil {
		return
	}

	message := fmt.Sprintf("Your post %q was published.", post.Title)
	if post.SentimentLabel != nil {
		message = fmt.Sprintf("Your post %q was published. Detected sentiment: %s.",
			post.Title, *post.SentimentLabel)
	}
	notification := model.Notification{
		UserID:  post.AuthorID,
		Kind:    model.NotificationKindSuccess,
		Message: message,
	}
	if !post.IsAppropriate {
		notification.Kind = model.NotificationKindWarning
		notification.Message = fmt.Sprintf("Your post %q was held for review: %s", post.Title, post.ModerationReason)
	}

	if err := s.notifier.Create(ctx, notification); err != nil {
		s.log.Warn("post outcome notification failed",
			zap.Int64("post_id", post.ID), zap.Error(err))
	}
}
