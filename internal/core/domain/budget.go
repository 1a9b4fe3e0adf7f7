package domain

import "github.com/shopspring/decimal"

// BudgetPlanRow is one user-authored line item of a monthly budget plan.
// Group is kept as the raw string the user typed: matching against the
// canonical buckets is case-insensitive and tolerates singular and plural
// spellings, and that normalization happens at aggregation time.
type BudgetPlanRow struct {
	Name           string          `json:"name"`
	Group          string          `json:"group"`
	CategoryID     *string         `json:"categoryID"` // Nullable; rows without a category are informational only
	Amount         decimal.Decimal `json:"amount"`     // Planned amount
	IncludeInTotal bool            `json:"includeInTotal"`
}

// BudgetPlan is the user-authored plan for one month.
type BudgetPlan struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`   // FK -> users.user_id (NON-NULL)
	Year     int             `json:"year"`
	Month    int             `json:"month"` // 1-12
	Rows     []BudgetPlanRow `json:"rows"`  // Ordered as authored
	AuditFields
}
