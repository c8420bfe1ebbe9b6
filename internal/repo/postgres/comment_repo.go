package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

func (r *CommentRepo) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	if r.pool == nil {
		return model.Comment{}, fmt.Errorf("postgres pool is nil")
	}
	if comment.PostID <= 0 || comment.AuthorID <= 0 {
		return model.Comment{}, fmt.Errorf("invalid comment reference")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO comments (post_id, author_id, content, is_appropriate, date_posted)
VALUES ($1, $2, $3, TRUE, NOW())
RETURNING id, date_posted
`, comment.PostID, comment.AuthorID, comment.Content).
		Scan(&comment.ID, &comment.DatePosted)
	if err != nil {
		return model.Comment{}, fmt.Errorf("insert comment: %w", err)
	}

	comment.IsAppropriate = true
	return comment, nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, post_id, author_id, content, date_posted,
	sentiment_score, sentiment_label, is_appropriate, moderation_reason
FROM comments
WHERE post_id = $1 AND is_appropriate = TRUE
ORDER BY date_posted ASC
`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *CommentRepo) SaveAnalysis(ctx context.Context, commentID int64, score *float64, label *enums.SentimentLabel, appropriate bool, reason string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE comments
SET sentiment_score = $2, sentiment_label = $3, is_appropriate = $4, moderation_reason = $5
WHERE id = $1
`, commentID, score, label, appropriate, reason)
	if err != nil {
		return fmt.Errorf("save comment analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func (r *CommentRepo) ListFlagged(ctx context.Context) ([]model.Comment, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, post_id, author_id, content, date_posted,
	sentiment_score, sentiment_label, is_appropriate, moderation_reason
FROM comments
WHERE is_appropriate = FALSE
ORDER BY date_posted ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list flagged comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *CommentRepo) Approve(ctx context.Context, commentID int64) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE comments
SET is_appropriate = TRUE, moderation_reason = ''
WHERE id = $1
`, commentID)
	if err != nil {
		return fmt.Errorf("approve comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func scanComments(rows pgx.Rows) ([]model.Comment, error) {
	var comments []model.Comment
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content,
			&comment.DatePosted,
			&comment.SentimentScore, &comment.SentimentLabel,
			&comment.IsAppropriate, &comment.ModerationReason,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}
