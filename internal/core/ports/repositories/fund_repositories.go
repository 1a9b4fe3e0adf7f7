package repositories

import (
	"context"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// FundReader defines read operations for savings fund data
type FundReader interface {
	// FindFundByID retrieves a specific savings fund by its unique identifier.
	FindFundByID(ctx context.Context, fundID string) (*domain.SavingsFund, error)

	// ListFunds retrieves all savings funds belonging to a user.
	ListFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error)
}

// FundWriter defines write operations for savings fund data
type FundWriter interface {
	// SaveFund persists a new savings fund.
	SaveFund(ctx context.Context, fund domain.SavingsFund) error

	// UpdateFund updates an existing savings fund's details.
	UpdateFund(ctx context.Context, fund domain.SavingsFund) error

	// DeactivateFund marks a savings fund as inactive.
	DeactivateFund(ctx context.Context, fundID string, now time.Time) error
}

// FundRepositoryFacade combines all savings fund repository interfaces
type FundRepositoryFacade interface {
	FundReader
	FundWriter
}
