package repositories

import (
	"context"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// TransactionListFilters narrows a transaction listing. Zero values mean
// "no filter"; NextToken is an opaque pagination cursor.
type TransactionListFilters struct {
	From       time.Time
	To         time.Time
	AccountID  string
	CategoryID string
	Limit      int
	NextToken  string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated transaction listing for
	// a user, newest first. The returned token is empty on the last page.
	ListTransactions(ctx context.Context, userID string, filters TransactionListFilters) ([]domain.Transaction, string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
