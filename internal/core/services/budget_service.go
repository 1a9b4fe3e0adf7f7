package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/google/uuid"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget plan service
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// GetBudget retrieves the plan for a month. A missing plan surfaces as
// apperrors.ErrNotFound; the analytics layer treats that as an empty plan.
func (s *budgetService) GetBudget(ctx context.Context, userID string, year, month int) (*domain.BudgetPlan, error) {
	plan, err := s.budgetRepo.FindBudgetForMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// UpsertBudget creates or replaces the plan for a month. Rows are stored
// exactly as authored: raw group labels included, order preserved.
func (s *budgetService) UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest, userID string) (*domain.BudgetPlan, error) {
	now := time.Now()
	rows := make([]domain.BudgetPlanRow, len(req.Rows))
	for i, row := range req.Rows {
		rows[i] = domain.BudgetPlanRow{
			Name:           row.Name,
			Group:          row.Group,
			CategoryID:     row.CategoryID,
			Amount:         row.Amount,
			IncludeInTotal: row.IncludeInTotal,
		}
	}

	plan := domain.BudgetPlan{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Year:     req.Year,
		Month:    req.Month,
		Rows:     rows,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.UpsertBudget(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to upsert budget plan", slog.Int("year", req.Year), slog.Int("month", req.Month))
		return nil, fmt.Errorf("failed to upsert budget plan: %w", err)
	}

	s.LogInfo(ctx, "Budget plan saved", slog.Int("year", req.Year), slog.Int("month", req.Month), slog.Int("row_count", len(rows)))
	return &plan, nil
}

// DeleteBudget removes the plan for a month.
func (s *budgetService) DeleteBudget(ctx context.Context, userID string, year, month int) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, year, month); err != nil {
		s.LogError(ctx, err, "Failed to delete budget plan", slog.Int("year", year), slog.Int("month", month))
		return err
	}
	s.LogInfo(ctx, "Budget plan deleted", slog.Int("year", year), slog.Int("month", month))
	return nil
}
