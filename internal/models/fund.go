package models

import "github.com/shopspring/decimal"

// SavingsFund is the database representation of a savings goal.
type SavingsFund struct {
	FundID       string           `db:"fund_id"`
	UserID       string           `db:"user_id"`
	Name         string           `db:"name"`
	TargetAmount *decimal.Decimal `db:"target_amount"` // Nullable
	IsEmergency  bool             `db:"is_emergency"`
	IsActive     bool             `db:"is_active"`
	AuditFields
}
