package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/utils"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// analyticsService implements the AnalyticsService interface. Each operation
// fetches an immutable snapshot of rows once, runs the pure aggregation from
// the finance package, and returns the result; nothing is cached or shared
// between invocations.
type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepository
	budgetRepo    portsrepo.BudgetReader
	accountRepo   portsrepo.AccountReader
	fundRepo      portsrepo.FundReader
	telemetry     *utils.TelemetryClient
	now           func() time.Time
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithTelemetry attaches a telemetry client for data-quality events.
func WithTelemetry(client *utils.TelemetryClient) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.telemetry = client
	}
}

// WithClock overrides the time source, used by tests to pin "today".
func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(
	analyticsRepo portsrepo.AnalyticsRepository,
	budgetRepo portsrepo.BudgetReader,
	accountRepo portsrepo.AccountReader,
	fundRepo portsrepo.FundReader,
	options ...AnalyticsServiceOption,
) portssvc.AnalyticsService {
	svc := &analyticsService{
		analyticsRepo: analyticsRepo,
		budgetRepo:    budgetRepo,
		accountRepo:   accountRepo,
		fundRepo:      fundRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalyticsService = (*analyticsService)(nil)

// AccountsOverview reports balance and 30-day net flow for every account
// that appears in the user's transactions.
func (s *analyticsService) AccountsOverview(ctx context.Context, userID string) ([]domain.AccountOverviewRow, error) {
	facts, err := s.analyticsRepo.FindAllTransactionFacts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for accounts overview")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for overview")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	flows := finance.AccountFlows(facts, s.now())
	rows := make([]domain.AccountOverviewRow, 0, len(flows))
	for _, account := range accounts {
		flow, ok := flows[account.AccountID]
		if !ok {
			continue
		}
		rows = append(rows, domain.AccountOverviewRow{
			AccountID:      account.AccountID,
			Name:           account.Name,
			CurrentBalance: flow.Total,
			NetFlow30:      flow.NetFlow30,
		})
	}

	s.LogInfo(ctx, "Accounts overview generated", slog.Int("account_count", len(rows)))
	return rows, nil
}

// FundsOverview reports amount saved and 30-day net flow for every savings
// fund that appears in the user's transactions.
func (s *analyticsService) FundsOverview(ctx context.Context, userID string) ([]domain.FundOverviewRow, error) {
	facts, err := s.analyticsRepo.FindAllTransactionFacts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for funds overview")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	funds, err := s.fundRepo.ListFunds(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds for overview")
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}

	flows := finance.FundFlows(facts, s.now())
	rows := make([]domain.FundOverviewRow, 0, len(flows))
	for _, fund := range funds {
		flow, ok := flows[fund.FundID]
		if !ok {
			continue
		}
		rows = append(rows, domain.FundOverviewRow{
			FundID:        fund.FundID,
			Name:          fund.Name,
			CurrentAmount: flow.Total,
			NetFlow30:     flow.NetFlow30,
		})
	}

	s.LogInfo(ctx, "Funds overview generated", slog.Int("fund_count", len(rows)))
	return rows, nil
}

// MonthlySummary aggregates one calendar month.
func (s *analyticsService) MonthlySummary(ctx context.Context, userID string, year, month int) (*domain.PeriodSummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	from, to := finance.MonthRange(year, time.Month(month))
	return s.summarizeWindow(ctx, userID, from, to)
}

// YearlySummary aggregates one calendar year.
func (s *analyticsService) YearlySummary(ctx context.Context, userID string, year int) (*domain.PeriodSummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.summarizeWindow(ctx, userID, from, to)
}

func (s *analyticsService) summarizeWindow(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodSummary, error) {
	facts, err := s.analyticsRepo.FindTransactionFacts(ctx, userID, from, to, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for period summary",
			slog.String("from", from.Format(dateLayout)),
			slog.String("to", to.Format(dateLayout)))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := finance.SummarizePeriod(facts)
	s.LogInfo(ctx, "Period summary generated",
		slog.String("from", from.Format(dateLayout)),
		slog.String("to", to.Format(dateLayout)),
		slog.Int("row_count", len(facts)))
	return &summary, nil
}

// EmergencyFund sizes emergency-fund targets from the trailing twelve months
// of core expenses and reports coverage from emergency-flagged funds.
func (s *analyticsService) EmergencyFund(ctx context.Context, userID string) (*domain.EmergencyFundReport, error) {
	today := s.now()
	from := today.AddDate(0, -12, 0)

	facts, err := s.analyticsRepo.FindTransactionFacts(ctx, userID, from, today, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for emergency fund report")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	coreTotal, monthsAnalyzed, avg, threeMonth, sixMonth := finance.EmergencyFundTargets(facts)

	// Coverage counts money saved into emergency-flagged funds, over all time.
	funds, err := s.fundRepo.ListFunds(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds for emergency fund report")
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	emergency := make(map[string]bool, len(funds))
	for _, fund := range funds {
		if fund.IsEmergency {
			emergency[fund.FundID] = true
		}
	}

	current := decimal.Zero
	if len(emergency) > 0 {
		allFacts, err := s.analyticsRepo.FindAllTransactionFacts(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch transactions for emergency fund balance")
			return nil, fmt.Errorf("failed to fetch transactions: %w", err)
		}
		for fundID, flow := range finance.FundFlows(allFacts, today) {
			if emergency[fundID] {
				current = current.Add(flow.Total)
			}
		}
	}

	report := &domain.EmergencyFundReport{
		CoreExpenseTotal:   coreTotal,
		MonthsAnalyzed:     monthsAnalyzed,
		AvgMonthlyCore:     avg,
		ThreeMonthTarget:   threeMonth,
		SixMonthTarget:     sixMonth,
		CurrentAmount:      current.Round(2),
		ThreeMonthCoverage: finance.CoveragePct(current, threeMonth),
		SixMonthCoverage:   finance.CoveragePct(current, sixMonth),
	}

	s.LogInfo(ctx, "Emergency fund report generated", slog.Int("months_analyzed", monthsAnalyzed))
	return report, nil
}

// BudgetSummary reconciles the month's plan against actual transactions.
// A missing plan yields a well-formed all-zero report; any fetch failure
// propagates unchanged.
func (s *analyticsService) BudgetSummary(ctx context.Context, userID string, year, month int) (*domain.BudgetReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	var rows []domain.BudgetPlanRow
	plan, err := s.budgetRepo.FindBudgetForMonth(ctx, userID, year, month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch budget plan", slog.Int("year", year), slog.Int("month", month))
			return nil, fmt.Errorf("failed to fetch budget plan: %w", err)
		}
		// No plan: reconcile an empty row list into an all-zero report.
	} else {
		rows = plan.Rows
	}

	// Collect the referenced categories; skip the actuals fetch entirely
	// when no row points at one.
	categoryIDs := make([]string, 0, len(rows))
	seen := map[string]bool{}
	for _, row := range rows {
		if row.CategoryID != nil && !seen[*row.CategoryID] {
			seen[*row.CategoryID] = true
			categoryIDs = append(categoryIDs, *row.CategoryID)
		}
	}

	actuals := map[string]decimal.Decimal{}
	if len(categoryIDs) > 0 {
		from, to := finance.MonthRange(year, time.Month(month))
		facts, err := s.analyticsRepo.FindTransactionFacts(ctx, userID, from, to, categoryIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch actuals for budget summary", slog.Int("year", year), slog.Int("month", month))
			return nil, fmt.Errorf("failed to fetch actuals: %w", err)
		}
		for _, fact := range facts {
			if fact.CategoryID != nil {
				actuals[*fact.CategoryID] = actuals[*fact.CategoryID].Add(fact.Amount)
			}
		}
	}

	report := finance.ReconcileBudget(rows, actuals)

	if report.DroppedRows > 0 {
		s.LogWarn(ctx, "Budget rows with unrecognized group labels dropped from report",
			slog.Int("dropped_rows", report.DroppedRows),
			slog.Int("year", year),
			slog.Int("month", month))
		if s.telemetry != nil {
			s.telemetry.Enqueue(userID, "budget_rows_dropped", map[string]any{
				"count": report.DroppedRows,
				"year":  year,
				"month": month,
			})
		}
	}

	s.LogInfo(ctx, "Budget summary generated",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("plan_rows", len(rows)))
	return &report, nil
}
