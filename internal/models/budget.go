package models

// BudgetPlan is the database representation of a monthly budget plan.
// Rows are stored as a JSONB document exactly as authored, preserving order
// and the raw group labels.
type BudgetPlan struct {
	BudgetID string `db:"budget_id"`
	UserID   string `db:"user_id"`
	Year     int    `db:"year"`
	Month    int    `db:"month"`
	Rows     []byte `db:"rows"` // JSONB payload
	AuditFields
}
