package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	m := models.Category{
		CategoryID:   d.CategoryID,
		UserID:       d.UserID,
		Name:         d.Name,
		CategoryType: string(d.CategoryType),
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.SpendingType != "" {
		m.SpendingType = sql.NullString{String: string(d.SpendingType), Valid: true}
	}
	return m
}

func toDomainCategory(m models.Category) domain.Category {
	d := domain.Category{
		CategoryID:   m.CategoryID,
		UserID:       m.UserID,
		Name:         m.Name,
		CategoryType: domain.CategoryType(m.CategoryType),
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.SpendingType.Valid {
		d.SpendingType = domain.SpendingType(m.SpendingType.String)
	}
	return d
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)

	query := `
		INSERT INTO categories (category_id, user_id, name, category_type, spending_type, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.CategoryType,
		m.SpendingType,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, m.CategoryID)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a single category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, user_id, name, category_type, spending_type, is_active, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var m models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.CategoryType,
		&m.SpendingType,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	category := toDomainCategory(m)
	return &category, nil
}

// ListCategories retrieves all active categories for a user, oldest first.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, user_id, name, category_type, spending_type, is_active, created_at, last_updated_at
		FROM categories
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(
			&m.CategoryID,
			&m.UserID,
			&m.Name,
			&m.CategoryType,
			&m.SpendingType,
			&m.IsActive,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// UpdateCategory updates the mutable fields of a category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, category_type = $3, spending_type = $4, last_updated_at = $5
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.CategoryType,
		m.SpendingType,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateCategory soft-deletes a category.
func (r *PgxCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, now time.Time) error {
	query := `
		UPDATE categories
		SET is_active = FALSE, last_updated_at = $2
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, categoryID, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
