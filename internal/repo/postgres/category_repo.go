package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) Create(ctx context.Context, category model.Category) (model.Category, error) {
	if r.pool == nil {
		return model.Category{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO categories (name, description)
VALUES ($1, $2)
RETURNING id
`, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		return model.Category{}, fmt.Errorf("insert category: %w", err)
	}

	return category, nil
}

// GetOrCreate returns the category with the given name, inserting it on
// first use. Backs the implicit "AI Generated" category for artworks.
func (r *CategoryRepo) GetOrCreate(ctx context.Context, name, description string) (model.Category, error) {
	if r.pool == nil {
		return model.Category{}, fmt.Errorf("postgres pool is nil")
	}

	category := model.Category{Name: name, Description: description}
	err := r.pool.QueryRow(ctx, `
INSERT INTO categories (name, description)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, description
`, name, description).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		return model.Category{}, fmt.Errorf("get or create category: %w", err)
	}

	return category, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (model.Category, error) {
	if r.pool == nil {
		return model.Category{}, fmt.Errorf("postgres pool is nil")
	}

	var category model.Category
	err := r.pool.QueryRow(ctx, `
SELECT id, name, description
FROM categories
WHERE id = $1
`, id).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, ErrCategoryNotFound
		}
		return model.Category{}, fmt.Errorf("get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name, description
FROM categories
ORDER BY name ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepo) ListSubcategories(ctx context.Context, categoryID int64) ([]model.Subcategory, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, category_id, name, description
FROM subcategories
WHERE category_id = $1
ORDER BY name ASC
`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var subcategories []model.Subcategory
	for rows.Next() {
		var sub model.Subcategory
		if err := rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.Description); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		subcategories = append(subcategories, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subcategories: %w", err)
	}

	return subcategories, nil
}

// InsertSubcategories writes the accepted suggestions in one batch.
// Duplicate names within a category are skipped, not overwritten.
func (r *CategoryRepo) InsertSubcategories(ctx context.Context, categoryID int64, subs []model.Subcategory) error {
	if len(subs) == 0 {
		return nil
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	batch := &pgx.Batch{}
	for _, sub := range subs {
		batch.Queue(`
INSERT INTO subcategories (category_id, name, description)
VALUES ($1, $2, $3)
ON CONFLICT (category_id, name) DO NOTHING
`, categoryID, sub.Name, sub.Description)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert subcategories: %w", err)
		}
	}

	return nil
}
