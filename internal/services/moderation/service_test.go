package moderation

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	"github.com/Ihebmsaed/Artygen/internal/repo/postgres"
)

type fakePostQueue struct {
	flagged  []model.Post
	approved []int64
}

func (q *fakePostQueue) ListFlagged(context.Context) ([]model.Post, error) {
	return q.flagged, nil
}

func (q *fakePostQueue) Approve(_ context.Context, postID int64) error {
	for _, post := range q.flagged {
		if post.ID == postID {
			q.approved = append(q.approved, postID)
			return nil
		}
	}
	return postgres.ErrPostNotFound
}

type fakeCommentQueue struct {
	flagged  []model.Comment
	approved []int64
}

func (q *fakeCommentQueue) ListFlagged(context.Context) ([]model.Comment, error) {
	return q.flagged, nil
}

func (q *fakeCommentQueue) Approve(_ context.Context, commentID int64) error {
	for _, comment := range q.flagged {
		if comment.ID == commentID {
			q.approved = append(q.approved, commentID)
			return nil
		}
	}
	return postgres.ErrCommentNotFound
}

func TestFlaggedMergesBothQueues(t *testing.T) {
	svc := NewService(
		&fakePostQueue{flagged: []model.Post{{ID: 1}, {ID: 2}}},
		&fakeCommentQueue{flagged: []model.Comment{{ID: 3}}},
		zap.NewNop(),
	)

	queue, err := svc.Flagged(context.Background())
	if err != nil {
		t.Fatalf("flagged: %v", err)
	}
	if len(queue.Posts) != 2 || len(queue.Comments) != 1 {
		t.Fatalf("unexpected queue: %+v", queue)
	}
}

func TestApproveByKind(t *testing.T) {
	posts := &fakePostQueue{flagged: []model.Post{{ID: 1}}}
	comments := &fakeCommentQueue{flagged: []model.Comment{{ID: 9}}}
	svc := NewService(posts, comments, zap.NewNop())

	if err := svc.Approve(context.Background(), KindPost, 1); err != nil {
		t.Fatalf("approve post: %v", err)
	}
	if err := svc.Approve(context.Background(), KindComment, 9); err != nil {
		t.Fatalf("approve comment: %v", err)
	}
	if len(posts.approved) != 1 || len(comments.approved) != 1 {
		t.Fatalf("approvals not recorded")
	}
}

func TestApproveUnknownKind(t *testing.T) {
	svc := NewService(&fakePostQueue{}, &fakeCommentQueue{}, zap.NewNop())
	if err := svc.Approve(context.Background(), "artwork", 1); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestApproveMissingItem(t *testing.T) {
	svc := NewService(&fakePostQueue{}, &fakeCommentQueue{}, zap.NewNop())
	if err := svc.Approve(context.Background(), KindPost, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
