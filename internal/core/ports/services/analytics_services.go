package services

import (
	"context"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// AnalyticsService defines the read-only aggregation operations backing the
// dashboard. All results are computed fresh per call from an immutable
// snapshot of rows; nothing is persisted.
type AnalyticsService interface {
	// AccountsOverview reports balance and 30-day net flow per account.
	AccountsOverview(ctx context.Context, userID string) ([]domain.AccountOverviewRow, error)

	// FundsOverview reports amount saved and 30-day net flow per savings fund.
	FundsOverview(ctx context.Context, userID string) ([]domain.FundOverviewRow, error)

	// MonthlySummary aggregates one calendar month.
	MonthlySummary(ctx context.Context, userID string, year, month int) (*domain.PeriodSummary, error)

	// YearlySummary aggregates one calendar year.
	YearlySummary(ctx context.Context, userID string, year int) (*domain.PeriodSummary, error)

	// EmergencyFund sizes emergency-fund targets from trailing core expenses
	// and reports coverage from emergency-flagged funds.
	EmergencyFund(ctx context.Context, userID string) (*domain.EmergencyFundReport, error)

	// BudgetSummary reconciles the month's plan against actual transactions.
	BudgetSummary(ctx context.Context, userID string, year, month int) (*domain.BudgetReport, error)
}
