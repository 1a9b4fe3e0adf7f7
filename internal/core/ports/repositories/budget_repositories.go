package repositories

import (
	"context"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// BudgetReader defines read operations for budget plan data
type BudgetReader interface {
	// FindBudgetForMonth retrieves the plan for a month. Returns
	// apperrors.ErrNotFound when no plan exists; callers treat that as an
	// empty plan, not a failure.
	FindBudgetForMonth(ctx context.Context, userID string, year, month int) (*domain.BudgetPlan, error)
}

// BudgetWriter defines write operations for budget plan data
type BudgetWriter interface {
	// UpsertBudget creates or replaces the plan for a month.
	UpsertBudget(ctx context.Context, plan domain.BudgetPlan) error

	// DeleteBudget removes the plan for a month.
	DeleteBudget(ctx context.Context, userID string, year, month int) error
}

// BudgetRepositoryFacade combines all budget repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
