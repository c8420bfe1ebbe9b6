package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepo struct {
	pool *pgxpool.Pool
}

// PostAnalysisRecord is the write shape of one analysis pass over a post.
type PostAnalysisRecord struct {
	SentimentScore   *float64
	SentimentLabel   *enums.SentimentLabel
	IsAppropriate    bool
	ModerationReason string
	ModerationDate   time.Time
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post model.Post) (model.Post, error) {
	if r.pool == nil {
		return model.Post{}, fmt.Errorf("postgres pool is nil")
	}
	if post.AuthorID <= 0 {
		return model.Post{}, fmt.Errorf("invalid author id")
	}
	if post.OriginalLanguage == "" {
		post.OriginalLanguage = enums.DefaultLanguage
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO posts (author_id, title, content, image_key, is_appropriate, original_language, date_posted)
VALUES ($1, $2, $3, $4, TRUE, $5, NOW())
RETURNING id, date_posted
`, post.AuthorID, post.Title, post.Content, post.ImageKey, post.OriginalLanguage).
		Scan(&post.ID, &post.DatePosted)
	if err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}

	post.IsAppropriate = true
	return post, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (model.Post, error) {
	if r.pool == nil {
		return model.Post{}, fmt.Errorf("postgres pool is nil")
	}
	if id <= 0 {
		return model.Post{}, fmt.Errorf("invalid post id")
	}

	var post model.Post
	err := r.pool.QueryRow(ctx, `
SELECT id, author_id, title, content, image_key, likes_count, date_posted,
	sentiment_score, sentiment_label, is_appropriate, moderation_reason, moderation_date,
	original_language
FROM posts
WHERE id = $1
`, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.ImageKey,
		&post.LikesCount, &post.DatePosted,
		&post.SentimentScore, &post.SentimentLabel, &post.IsAppropriate,
		&post.ModerationReason, &post.ModerationDate,
		&post.OriginalLanguage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, ErrPostNotFound
		}
		return model.Post{}, fmt.Errorf("get post by id: %w", err)
	}

	translations, err := r.loadTranslations(ctx, post.ID)
	if err != nil {
		return model.Post{}, err
	}
	post.Translations = translations

	return post, nil
}

func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, author_id, title, content, image_key, likes_count, date_posted,
	sentiment_score, sentiment_label, is_appropriate, moderation_reason, moderation_date,
	original_language
FROM posts
WHERE is_appropriate = TRUE
ORDER BY date_posted DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Like increments the counter atomically and returns the new total.
func (r *PostRepo) Like(ctx context.Context, postID int64) (int, error) {
	if r.pool == nil {
		return 0, fmt.Errorf("postgres pool is nil")
	}

	var count int
	err := r.pool.QueryRow(ctx, `
UPDATE posts
SET likes_count = likes_count + 1
WHERE id = $1
RETURNING likes_count
`, postID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrPostNotFound
		}
		return 0, fmt.Errorf("like post: %w", err)
	}

	return count, nil
}

func (r *PostRepo) UpsertTranslation(ctx context.Context, postID int64, lang enums.Language, pair model.LocalizedText) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO post_translations (post_id, language, title, content, translated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (post_id, language) DO UPDATE SET
	title = EXCLUDED.title,
	content = EXCLUDED.content,
	translated_at = NOW()
`, postID, lang, pair.Title, pair.Content)
	if err != nil {
		return fmt.Errorf("upsert post translation: %w", err)
	}

	return nil
}

// SaveProcessing writes the whole pipeline outcome in one round trip:
// the analysis verdict plus every translation produced during the pass.
func (r *PostRepo) SaveProcessing(ctx context.Context, postID int64, rec PostAnalysisRecord, translations map[enums.Language]model.LocalizedText) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	batch := &pgx.Batch{}
	batch.Queue(`
UPDATE posts
SET sentiment_score = $2,
	sentiment_label = $3,
	is_appropriate = $4,
	moderation_reason = $5,
	moderation_date = $6
WHERE id = $1
`, postID, rec.SentimentScore, rec.SentimentLabel, rec.IsAppropriate,
		rec.ModerationReason, rec.ModerationDate)

	for _, lang := range enums.Languages() {
		pair, ok := translations[lang]
		if !ok || pair.Empty() {
			continue
		}
		batch.Queue(`
INSERT INTO post_translations (post_id, language, title, content, translated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (post_id, language) DO UPDATE SET
	title = EXCLUDED.title,
	content = EXCLUDED.content,
	translated_at = NOW()
`, postID, lang, pair.Title, pair.Content)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("save post processing: %w", err)
		}
	}

	return nil
}

// ListFlagged returns posts held back by moderation, oldest first so the
// review queue drains in order.
func (r *PostRepo) ListFlagged(ctx context.Context) ([]model.Post, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, author_id, title, content, image_key, likes_count, date_posted,
	sentiment_score, sentiment_label, is_appropriate, moderation_reason, moderation_date,
	original_language
FROM posts
WHERE is_appropriate = FALSE
ORDER BY moderation_date ASC NULLS LAST
`)
	if err != nil {
		return nil, fmt.Errorf("list flagged posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Approve clears the moderation flag after manual review.
func (r *PostRepo) Approve(ctx context.Context, postID int64) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE posts
SET is_appropriate = TRUE, moderation_reason = '', moderation_date = NOW()
WHERE id = $1
`, postID)
	if err != nil {
		return fmt.Errorf("approve post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *PostRepo) loadTranslations(ctx context.Context, postID int64) (map[enums.Language]model.LocalizedText, error) {
	rows, err := r.pool.Query(ctx, `
SELECT language, title, content
FROM post_translations
WHERE post_id = $1
`, postID)
	if err != nil {
		return nil, fmt.Errorf("load post translations: %w", err)
	}
	defer rows.Close()

	translations := make(map[enums.Language]model.LocalizedText, 4)
	for rows.Next() {
		var lang enums.Language
		var pair model.LocalizedText
		if err := rows.Scan(&lang, &pair.Title, &pair.Content); err != nil {
			return nil, fmt.Errorf("scan post translation: %w", err)
		}
		translations[lang] = pair
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post translations: %w", err)
	}

	return translations, nil
}

func scanPosts(rows pgx.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.ImageKey,
			&post.LikesCount, &post.DatePosted,
			&post.SentimentScore, &post.SentimentLabel, &post.IsAppropriate,
			&post.ModerationReason, &post.ModerationDate,
			&post.OriginalLanguage,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}
