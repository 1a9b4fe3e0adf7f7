package dto

import (
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetPlanRowRequest is one authored plan row. The group label is stored
// raw; normalization happens at aggregation time.
type BudgetPlanRowRequest struct {
	Name           string          `json:"name" binding:"required"`
	Group          string          `json:"group" binding:"required"`
	CategoryID     *string         `json:"categoryID"`
	Amount         decimal.Decimal `json:"amount"`
	IncludeInTotal bool            `json:"includeInTotal"`
}

// UpsertBudgetRequest creates or replaces the plan for a month.
type UpsertBudgetRequest struct {
	Year  int                    `json:"year" binding:"required,min=1970,max=9999"`
	Month int                    `json:"month" binding:"required,min=1,max=12"`
	Rows  []BudgetPlanRowRequest `json:"rows" binding:"required,dive"`
}

// BudgetPlanRowResponse mirrors one authored plan row.
type BudgetPlanRowResponse struct {
	Name           string          `json:"name"`
	Group          string          `json:"group"`
	CategoryID     *string         `json:"categoryID"`
	Amount         decimal.Decimal `json:"amount"`
	IncludeInTotal bool            `json:"includeInTotal"`
}

// BudgetPlanResponse defines the data returned for a budget plan.
type BudgetPlanResponse struct {
	BudgetID      string                  `json:"budgetID"`
	Year          int                     `json:"year"`
	Month         int                     `json:"month"`
	Rows          []BudgetPlanRowResponse `json:"rows"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
}

// ToBudgetPlanResponse converts a domain.BudgetPlan to its response DTO
func ToBudgetPlanResponse(plan *domain.BudgetPlan) BudgetPlanResponse {
	rows := make([]BudgetPlanRowResponse, len(plan.Rows))
	for i, row := range plan.Rows {
		rows[i] = BudgetPlanRowResponse{
			Name:           row.Name,
			Group:          row.Group,
			CategoryID:     row.CategoryID,
			Amount:         row.Amount,
			IncludeInTotal: row.IncludeInTotal,
		}
	}
	return BudgetPlanResponse{
		BudgetID:      plan.BudgetID,
		Year:          plan.Year,
		Month:         plan.Month,
		Rows:          rows,
		CreatedAt:     plan.CreatedAt,
		LastUpdatedAt: plan.LastUpdatedAt,
	}
}
