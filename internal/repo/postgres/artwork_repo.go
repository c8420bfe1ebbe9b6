package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var ErrArtworkNotFound = errors.New("artwork not found")

type ArtworkRepo struct {
	pool *pgxpool.Pool
}

func NewArtworkRepo(pool *pgxpool.Pool) *ArtworkRepo {
	return &ArtworkRepo{pool: pool}
}

func (r *ArtworkRepo) Create(ctx context.Context, artwork model.Artwork) (model.Artwork, error) {
	if r.pool == nil {
		return model.Artwork{}, fmt.Errorf("postgres pool is nil")
	}
	if artwork.UserID <= 0 {
		return model.Artwork{}, fmt.Errorf("invalid user id")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO artworks (user_id, category_id, title, description, object_key, tags, ai_generated, created_at)
VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7, NOW())
RETURNING id, created_at
`, artwork.UserID, artwork.CategoryID, artwork.Title, artwork.Description,
		artwork.ObjectKey, artwork.Tags, artwork.AIGenerated).
		Scan(&artwork.ID, &artwork.CreatedAt)
	if err != nil {
		return model.Artwork{}, fmt.Errorf("insert artwork: %w", err)
	}

	return artwork, nil
}

func (r *ArtworkRepo) GetByID(ctx context.Context, id int64) (model.Artwork, error) {
	if r.pool == nil {
		return model.Artwork{}, fmt.Errorf("postgres pool is nil")
	}

	var artwork model.Artwork
	err := r.pool.QueryRow(ctx, `
SELECT id, user_id, COALESCE(category_id, 0), title, description, object_key, tags, ai_generated, created_at
FROM artworks
WHERE id = $1
`, id).Scan(
		&artwork.ID, &artwork.UserID, &artwork.CategoryID, &artwork.Title,
		&artwork.Description, &artwork.ObjectKey, &artwork.Tags,
		&artwork.AIGenerated, &artwork.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Artwork{}, ErrArtworkNotFound
		}
		return model.Artwork{}, fmt.Errorf("get artwork by id: %w", err)
	}

	return artwork, nil
}

func (r *ArtworkRepo) Delete(ctx context.Context, id int64) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrArtworkNotFound
	}

	return nil
}

func (r *ArtworkRepo) List(ctx context.Context, limit, offset int) ([]model.Artwork, error) {
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
SELECT id, user_id, COALESCE(category_id, 0), title, description, object_key, tags, ai_generated, created_at
FROM artworks
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer rows.Close()

	var artworks []model.Artwork
	for rows.Next() {
		var artwork model.Artwork
		if err := rows.Scan(
			&artwork.ID, &artwork.UserID, &artwork.CategoryID, &artwork.Title,
			&artwork.Description, &artwork.ObjectKey, &artwork.Tags,
			&artwork.AIGenerated, &artwork.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan artwork: %w", err)
		}
		artworks = append(artworks, artwork)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artworks: %w", err)
	}

	return artworks, nil
}
