package domain

import "github.com/shopspring/decimal"

// Flow is the aggregate of one account or fund: the all-time total and the
// trailing 30-day net flow, both rounded to two decimal places.
type Flow struct {
	Total     decimal.Decimal `json:"total"`
	NetFlow30 decimal.Decimal `json:"netFlow30"`
}

// AccountOverviewRow reports the current balance and 30-day net flow of one account.
type AccountOverviewRow struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	NetFlow30      decimal.Decimal `json:"netFlow30"`
}

// FundOverviewRow reports the amount saved into one savings fund. The stored
// outflow sign is inverted so the amount saved reads positive.
type FundOverviewRow struct {
	FundID        string          `json:"fundID"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	NetFlow30     decimal.Decimal `json:"netFlow30"`
}

// PeriodSummary aggregates one date window of transactions.
//
// The group totals are unsigned magnitudes ("how much was spent"), while
// ByCategory preserves the original signs. That asymmetry is intentional:
// callers read totals as sizes and breakdowns as ledger values.
type PeriodSummary struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Savings     decimal.Decimal `json:"savings"`
	Investments decimal.Decimal `json:"investments"`

	// Profit is income minus expenses minus investments. Savings are
	// excluded: a savings contribution is a reallocation, not a loss.
	Profit decimal.Decimal `json:"profit"`

	// NetCashFlow is the raw signed sum of every amount in the window,
	// including savings and investment outflows.
	NetCashFlow decimal.Decimal `json:"netCashFlow"`

	SavingsRate    decimal.Decimal `json:"savingsRate"`    // savings/income*100, 0 when income is 0
	InvestmentRate decimal.Decimal `json:"investmentRate"` // investments/income*100, 0 when income is 0

	ByCategory map[string]decimal.Decimal `json:"byCategory"` // category name -> signed sum
}

// EmergencyFundReport sizes an emergency fund from core expenses.
type EmergencyFundReport struct {
	CoreExpenseTotal   decimal.Decimal `json:"coreExpenseTotal"`
	MonthsAnalyzed     int             `json:"monthsAnalyzed"` // Months in the window with at least one transaction
	AvgMonthlyCore     decimal.Decimal `json:"avgMonthlyCoreExpense"`
	ThreeMonthTarget   decimal.Decimal `json:"threeMonthTarget"`
	SixMonthTarget     decimal.Decimal `json:"sixMonthTarget"`
	CurrentAmount      decimal.Decimal `json:"currentAmount"` // Saved into emergency-flagged funds
	ThreeMonthCoverage decimal.Decimal `json:"threeMonthCoveragePct"`
	SixMonthCoverage   decimal.Decimal `json:"sixMonthCoveragePct"`
}

// BudgetRow is one plan row enriched with actual spending for the month.
// Actual and DifferencePct are nil for rows without a category: those rows
// are informational only and are never reconciled against actuals.
type BudgetRow struct {
	Name           string           `json:"name"`
	CategoryID     *string          `json:"categoryID"`
	Planned        decimal.Decimal  `json:"planned"`
	Actual         *decimal.Decimal `json:"actual"`
	DifferencePct  *decimal.Decimal `json:"differencePct"`
	IncludeInTotal bool             `json:"includeInTotal"`
}

// BudgetReport is the budget-vs-actual reconciliation for one month.
type BudgetReport struct {
	TotalIncomePlanned      decimal.Decimal `json:"totalIncomePlanned"`
	TotalExpensePlanned     decimal.Decimal `json:"totalExpensePlanned"`
	TotalSavingsPlanned     decimal.Decimal `json:"totalSavingsPlanned"`
	TotalInvestmentsPlanned decimal.Decimal `json:"totalInvestmentsPlanned"`
	RemainingBudget         decimal.Decimal `json:"remainingBudget"`

	IncomeRows      []BudgetRow `json:"incomeRows"`
	ExpenseRows     []BudgetRow `json:"expenseRows"`
	SavingsRows     []BudgetRow `json:"savingsRows"`
	InvestmentsRows []BudgetRow `json:"investmentsRows"`

	// DroppedRows counts plan rows whose group label matched no bucket.
	// Those rows are excluded from every total and list; the count is
	// surfaced to logs and telemetry only, never to the API response.
	DroppedRows int `json:"-"`
}
