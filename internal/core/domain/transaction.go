package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger entry against an account.
// Sign convention: income is positive; expense, saving and investment
// amounts are stored negative. The amount is immutable once fetched by
// the analytics code; all writes pass through unmodified to the store.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (NON-NULL)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id (NON-NULL)
	CategoryID    *string         `json:"categoryID"`    // Nullable FK -> categories.category_id
	FundID        *string         `json:"fundID"`        // Nullable FK -> savings_funds.fund_id
	Amount        decimal.Decimal `json:"amount"`        // Signed; precise decimal type
	Date          time.Time       `json:"date"`          // Calendar day of the transaction
	Notes         string          `json:"notes"`         // Nullable
	AuditFields
}

// TransactionFact is a transaction row flattened for aggregation: the
// category classification is joined in so the aggregators never touch the
// store themselves. Read-only; constructed fresh per request.
type TransactionFact struct {
	Amount       decimal.Decimal
	Date         time.Time
	AccountID    string
	CategoryID   *string
	CategoryName string
	CategoryType CategoryType
	SpendingType SpendingType
	FundID       *string
}
