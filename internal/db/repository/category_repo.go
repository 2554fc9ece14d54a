package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviabank/trivia-api/internal/db/postgres"
	"github.com/triviabank/trivia-api/internal/question"
)

// CategoryRepo reads the fixed category table. There is no write path; the
// table is seeded by migration.
type CategoryRepo struct {
	db postgres.DBTX
}

var _ question.CategoryDirectory = (*CategoryRepo)(nil)

// NewCategoryRepo creates a category repository over the given pool or
// transaction.
func NewCategoryRepo(db postgres.DBTX) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// All returns every category in display (id) order.
func (r *CategoryRepo) All(ctx context.Context) ([]question.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []question.Category
	for rows.Next() {
		var c question.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Get returns one category by id, or (nil, nil) when the id is unknown.
func (r *CategoryRepo) Get(ctx context.Context, id int) (*question.Category, error) {
	var c question.Category
	err := r.db.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
