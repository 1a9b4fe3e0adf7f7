package dto

import (
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountOverviewResponse reports balance and 30-day net flow per account.
type AccountOverviewResponse struct {
	Accounts []AccountOverviewRowResponse `json:"accounts"`
}

// AccountOverviewRowResponse is one account's aggregate.
type AccountOverviewRowResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	NetFlow30      decimal.Decimal `json:"netFlow30d"`
}

// FundOverviewResponse reports amount saved and 30-day net flow per fund.
type FundOverviewResponse struct {
	Funds []FundOverviewRowResponse `json:"funds"`
}

// FundOverviewRowResponse is one savings fund's aggregate.
type FundOverviewRowResponse struct {
	FundID        string          `json:"fundID"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	NetFlow30     decimal.Decimal `json:"netFlow30d"`
}

// PeriodSummaryResponse is the monthly/yearly aggregation response.
type PeriodSummaryResponse struct {
	Income         decimal.Decimal            `json:"income"`
	Expenses       decimal.Decimal            `json:"expenses"`
	Savings        decimal.Decimal            `json:"savings"`
	Investments    decimal.Decimal            `json:"investments"`
	Profit         decimal.Decimal            `json:"profit"`
	NetCashFlow    decimal.Decimal            `json:"netCashFlow"`
	SavingsRate    decimal.Decimal            `json:"savingsRate"`
	InvestmentRate decimal.Decimal            `json:"investmentRate"`
	ByCategory     map[string]decimal.Decimal `json:"byCategory"`
}

// EmergencyFundResponse sizes the emergency fund and reports coverage.
type EmergencyFundResponse struct {
	CoreExpenseTotal   decimal.Decimal `json:"coreExpenseTotal"`
	MonthsAnalyzed     int             `json:"monthsAnalyzed"`
	AvgMonthlyCore     decimal.Decimal `json:"avgMonthlyCoreExpense"`
	ThreeMonthTarget   decimal.Decimal `json:"threeMonthTarget"`
	SixMonthTarget     decimal.Decimal `json:"sixMonthTarget"`
	CurrentAmount      decimal.Decimal `json:"currentAmount"`
	ThreeMonthCoverage decimal.Decimal `json:"threeMonthCoveragePct"`
	SixMonthCoverage   decimal.Decimal `json:"sixMonthCoveragePct"`
}

// BudgetRowResponse is one reconciled plan row. Actual and DifferencePct are
// null for rows without a category: informational only, never reconciled.
type BudgetRowResponse struct {
	Name           string           `json:"name"`
	CategoryID     *string          `json:"categoryID"`
	Planned        decimal.Decimal  `json:"planned"`
	Actual         *decimal.Decimal `json:"actual"`
	DifferencePct  *decimal.Decimal `json:"differencePct"`
	IncludeInTotal bool             `json:"includeInTotal"`
}

// BudgetSummaryResponse is the budget-vs-actual reconciliation response.
type BudgetSummaryResponse struct {
	TotalIncomePlanned      decimal.Decimal `json:"totalIncomePlanned"`
	TotalExpensePlanned     decimal.Decimal `json:"totalExpensePlanned"`
	TotalSavingsPlanned     decimal.Decimal `json:"totalSavingsPlanned"`
	TotalInvestmentsPlanned decimal.Decimal `json:"totalInvestmentsPlanned"`
	RemainingBudget         decimal.Decimal `json:"remainingBudget"`

	IncomeRows      []BudgetRowResponse `json:"incomeRows"`
	ExpenseRows     []BudgetRowResponse `json:"expenseRows"`
	SavingsRows     []BudgetRowResponse `json:"savingsRows"`
	InvestmentsRows []BudgetRowResponse `json:"investmentsRows"`
}

// ToAccountOverviewResponse converts domain overview rows to the response DTO
func ToAccountOverviewResponse(rows []domain.AccountOverviewRow) AccountOverviewResponse {
	res := AccountOverviewResponse{Accounts: make([]AccountOverviewRowResponse, len(rows))}
	for i, row := range rows {
		res.Accounts[i] = AccountOverviewRowResponse{
			AccountID:      row.AccountID,
			Name:           row.Name,
			CurrentBalance: row.CurrentBalance,
			NetFlow30:      row.NetFlow30,
		}
	}
	return res
}

// ToFundOverviewResponse converts domain overview rows to the response DTO
func ToFundOverviewResponse(rows []domain.FundOverviewRow) FundOverviewResponse {
	res := FundOverviewResponse{Funds: make([]FundOverviewRowResponse, len(rows))}
	for i, row := range rows {
		res.Funds[i] = FundOverviewRowResponse{
			FundID:        row.FundID,
			Name:          row.Name,
			CurrentAmount: row.CurrentAmount,
			NetFlow30:     row.NetFlow30,
		}
	}
	return res
}

// ToPeriodSummaryResponse converts a domain.PeriodSummary to the response DTO
func ToPeriodSummaryResponse(summary *domain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Income:         summary.Income,
		Expenses:       summary.Expenses,
		Savings:        summary.Savings,
		Investments:    summary.Investments,
		Profit:         summary.Profit,
		NetCashFlow:    summary.NetCashFlow,
		SavingsRate:    summary.SavingsRate,
		InvestmentRate: summary.InvestmentRate,
		ByCategory:     summary.ByCategory,
	}
}

// ToEmergencyFundResponse converts a domain.EmergencyFundReport to the response DTO
func ToEmergencyFundResponse(report *domain.EmergencyFundReport) EmergencyFundResponse {
	return EmergencyFundResponse{
		CoreExpenseTotal:   report.CoreExpenseTotal,
		MonthsAnalyzed:     report.MonthsAnalyzed,
		AvgMonthlyCore:     report.AvgMonthlyCore,
		ThreeMonthTarget:   report.ThreeMonthTarget,
		SixMonthTarget:     report.SixMonthTarget,
		CurrentAmount:      report.CurrentAmount,
		ThreeMonthCoverage: report.ThreeMonthCoverage,
		SixMonthCoverage:   report.SixMonthCoverage,
	}
}

// ToBudgetSummaryResponse converts a domain.BudgetReport to the response DTO.
// The dropped-row count stays out of the response deliberately.
func ToBudgetSummaryResponse(report *domain.BudgetReport) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		TotalIncomePlanned:      report.TotalIncomePlanned,
		TotalExpensePlanned:     report.TotalExpensePlanned,
		TotalSavingsPlanned:     report.TotalSavingsPlanned,
		TotalInvestmentsPlanned: report.TotalInvestmentsPlanned,
		RemainingBudget:         report.RemainingBudget,
		IncomeRows:              toBudgetRows(report.IncomeRows),
		ExpenseRows:             toBudgetRows(report.ExpenseRows),
		SavingsRows:             toBudgetRows(report.SavingsRows),
		InvestmentsRows:         toBudgetRows(report.InvestmentsRows),
	}
}

func toBudgetRows(rows []domain.BudgetRow) []BudgetRowResponse {
	res := make([]BudgetRowResponse, len(rows))
	for i, row := range rows {
		res[i] = BudgetRowResponse{
			Name:           row.Name,
			CategoryID:     row.CategoryID,
			Planned:        row.Planned,
			Actual:         row.Actual,
			DifferencePct:  row.DifferencePct,
			IncludeInTotal: row.IncludeInTotal,
		}
	}
	return res
}
