package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBudgetRepository stores plan rows as a JSONB document, preserving the
// authored order and raw group labels.
type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget plan data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func toDomainBudget(m models.BudgetPlan) (domain.BudgetPlan, error) {
	var rows []domain.BudgetPlanRow
	if len(m.Rows) > 0 {
		if err := json.Unmarshal(m.Rows, &rows); err != nil {
			return domain.BudgetPlan{}, fmt.Errorf("failed to decode budget rows: %w", err)
		}
	}
	return domain.BudgetPlan{
		BudgetID: m.BudgetID,
		UserID:   m.UserID,
		Year:     m.Year,
		Month:    m.Month,
		Rows:     rows,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}, nil
}

// FindBudgetForMonth retrieves the plan for a month, or ErrNotFound.
func (r *PgxBudgetRepository) FindBudgetForMonth(ctx context.Context, userID string, year, month int) (*domain.BudgetPlan, error) {
	query := `
		SELECT budget_id, user_id, year, month, rows, created_at, last_updated_at
		FROM budget_plans
		WHERE user_id = $1 AND year = $2 AND month = $3;
	`
	var m models.BudgetPlan
	err := r.Pool.QueryRow(ctx, query, userID, year, month).Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Year,
		&m.Month,
		&m.Rows,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for %d-%02d: %w", year, month, err)
	}

	plan, err := toDomainBudget(m)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpsertBudget creates or replaces the plan for a month. The unique
// constraint on (user_id, year, month) drives the conflict clause.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, plan domain.BudgetPlan) error {
	rowsJSON, err := json.Marshal(plan.Rows)
	if err != nil {
		return fmt.Errorf("failed to encode budget rows: %w", err)
	}

	query := `
		INSERT INTO budget_plans (budget_id, user_id, year, month, rows, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, year, month)
		DO UPDATE SET rows = EXCLUDED.rows, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = r.Pool.Exec(ctx, query,
		plan.BudgetID,
		plan.UserID,
		plan.Year,
		plan.Month,
		rowsJSON,
		plan.CreatedAt,
		plan.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert budget for %d-%02d: %w", plan.Year, plan.Month, err)
	}
	return nil
}

// DeleteBudget removes the plan for a month.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID string, year, month int) error {
	query := `DELETE FROM budget_plans WHERE user_id = $1 AND year = $2 AND month = $3;`
	tag, err := r.Pool.Exec(ctx, query, userID, year, month)
	if err != nil {
		return fmt.Errorf("failed to delete budget for %d-%02d: %w", year, month, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
