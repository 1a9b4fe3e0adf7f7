package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a ledger entry.
// Amount is signed: income positive, outflows negative.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	CategoryID    *string         `db:"category_id"` // Nullable
	FundID        *string         `db:"fund_id"`     // Nullable
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"txn_date"`
	Notes         string          `db:"notes"`
	AuditFields
}
