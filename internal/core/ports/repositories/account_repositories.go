package repositories

import (
	"context"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts belonging to a user.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
