package services

import (
	"context"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
)

// BudgetSvcFacade defines operations for budget plan management
type BudgetSvcFacade interface {
	// GetBudget retrieves the plan for a month. Returns apperrors.ErrNotFound
	// when no plan exists.
	GetBudget(ctx context.Context, userID string, year, month int) (*domain.BudgetPlan, error)

	// UpsertBudget creates or replaces the plan for a month.
	UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest, userID string) (*domain.BudgetPlan, error)

	// DeleteBudget removes the plan for a month.
	DeleteBudget(ctx context.Context, userID string, year, month int) error
}
