package moderation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("flagged item not found")
	ErrUnknownKind = errors.New("unknown content kind")
)

const (
	KindPost    = "post"
	KindComment = "comment"
)

type PostQueue interface {
	ListFlagged(ctx context.Context) ([]model.Post, error)
	Approve(ctx context.Context, postID int64) error
}

type CommentQueue interface {
	ListFlagged(ctx context.Context) ([]model.Comment, error)
	Approve(ctx context.Context, commentID int64) error
}

// Service is the manual review queue over content the pipeline held
// back. Approving restores visibility.
type Service struct {
	posts    PostQueue
	comments CommentQueue
	log      *zap.Logger
}

func NewService(posts PostQueue, comments CommentQueue, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		posts:    posts,
		comments: comments,
		log:      log,
	}
}

// Queue is everything currently waiting for review.
type Queue struct {
	Posts    []model.Post    `json:"posts"`
	Comments []model.Comment `json:"comments"`
}

func (s *Service) Flagged(ctx context.Context) (Queue, error) {
	posts, err := s.posts.ListFlagged(ctx)
	if err != nil {
		return Queue{}, fmt.Errorf("list flagged posts: %w", err)
	}
	comments, err := s.comments.ListFlagged(ctx)
	if err != nil {
		return Queue{}, fmt.Errorf("list flagged comments: %w", err)
	}

	return Queue{Posts: posts, Comments: comments}, nil
}

func (s *Service) Approve(ctx context.Context, kind string, id int64) error {
	if id <= 0 {
		return ErrValidation
	}

	switch kind {
	case KindPost:
		if err := s.posts.Approve(ctx, id); err != nil {
			if errors.Is(err, postgres.ErrPostNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("approve post: %w", err)
		}
	case KindComment:
		if err := s.comments.Approve(ctx, id); err != nil {
			if errors.Is(err, postgres.ErrCommentNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("approve comment: %w", err)
		}
	default:
		return ErrUnknownKind
	}

	s.log.Info("content approved after review",
		zap.String("kind", kind), zap.Int64("id", id))
	return nil
}
