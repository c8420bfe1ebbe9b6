package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Get(ctx context.Context, userID int64) (model.Profile, error) {
	if r.pool == nil {
		return model.Profile{}, fmt.Errorf("postgres pool is nil")
	}
	if userID <= 0 {
		return model.Profile{}, fmt.Errorf("invalid user id")
	}

	var profile model.Profile
	err := r.pool.QueryRow(ctx, `
SELECT user_id, bio, art_style, art_interests, bio_generated, photo_key, birthdate, updated_at
FROM profiles
WHERE user_id = $1
`, userID).Scan(
		&profile.UserID, &profile.Bio, &profile.ArtStyle, &profile.ArtInterests,
		&profile.BioGenerated, &profile.PhotoKey, &profile.Birthdate, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, profile model.Profile) (model.Profile, error) {
	if r.pool == nil {
		return model.Profile{}, fmt.Errorf("postgres pool is nil")
	}
	if profile.UserID <= 0 {
		return model.Profile{}, fmt.Errorf("invalid user id")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO profiles (user_id, bio, art_style, art_interests, bio_generated, photo_key, birthdate, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
ON CONFLICT (user_id) DO UPDATE SET
	bio = EXCLUDED.bio,
	art_style = EXCLUDED.art_style,
	art_interests = EXCLUDED.art_interests,
	bio_generated = EXCLUDED.bio_generated,
	photo_key = EXCLUDED.photo_key,
	birthdate = EXCLUDED.birthdate,
	updated_at = NOW()
RETURNING updated_at
`, profile.UserID, profile.Bio, profile.ArtStyle, profile.ArtInterests,
		profile.BioGenerated, profile.PhotoKey, profile.Birthdate).
		Scan(&profile.UpdatedAt)
	if err != nil {
		return model.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}

	return profile, nil
}

// SetBio overwrites only the bio fields, used after AI generation.
func (r *ProfileRepo) SetBio(ctx context.Context, userID int64, bio string, generated bool) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE profiles
SET bio = $2, bio_generated = $3, updated_at = NOW()
WHERE user_id = $1
`, userID, bio, generated)
	if err != nil {
		return fmt.Errorf("set profile bio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
