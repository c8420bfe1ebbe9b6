package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
	"github.com/Ihebmsaed/Artygen/internal/services/analysis"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrPostNotFound = errors.New("post not found")
)

const maxCommentLen = 2000

type Store interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
	SaveAnalysis(ctx context.Context, commentID int64, score *float64, label *enums.SentimentLabel, appropriate bool, reason string) error
}

type PostChecker interface {
	GetByID(ctx context.Context, id int64) (model.Post, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (analysis.Result, error)
}

// Service persists comments first, then analyzes them best effort,
// mirroring the post pipeline on a smaller scale.
type Service struct {
	store    Store
	posts    PostChecker
	analyzer Analyzer
	log      *zap.Logger
}

func NewService(store Store, posts PostChecker, analyzer Analyzer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		posts:    posts,
		analyzer: analyzer,
		log:      log,
	}
}

func (s *Service) Create(ctx context.Context, postID, authorID int64, content string) (model.Comment, error) {
	content = strings.TrimSpace(content)
	if postID <= 0 || authorID <= 0 || content == "" || len(content) > maxCommentLen {
		return model.Comment{}, ErrValidation
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, postgres.ErrPostNotFound) {
			return model.Comment{}, ErrPostNotFound
		}
		return model.Comment{}, fmt.Errorf("check post: %w", err)
	}

	comment, err := s.store.Create(ctx, model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	analyzed, err := s.analyze(ctx, comment)
	if err != nil {
		s.log.Warn("comment analysis failed after insert",
			zap.Int64("comment_id", comment.ID), zap.Error(err))
		return comment, nil
	}

	return analyzed, nil
}

func (s *Service) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if postID <= 0 {
		return nil, ErrValidation
	}
	comments, err := s.store.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *Service) analyze(ctx context.Context, comment model.Comment) (model.Comment, error) {
	result, err := s.analyzer.Analyze(ctx, comment.Content)
	if err != nil {
		return model.Comment{}, fmt.Errorf("analyze comment: %w", err)
	}

	score := result.Sentiment.Score
	label := result.Sentiment.Label
	comment.SentimentScore = &score
	comment.SentimentLabel = &label
	comment.IsAppropriate = result.Moderation.IsAppropriate
	comment.ModerationReason = result.Moderation.Reason

	if err := s.store.SaveAnalysis(ctx, comment.ID, comment.SentimentScore, comment.SentimentLabel,
		comment.IsAppropriate, comment.ModerationReason); err != nil {
		return model.Comment{}, fmt.Errorf("save comment analysis: %w", err)
	}

	return comment, nil
}
