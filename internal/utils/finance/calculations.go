// Package finance holds the pure aggregation and reconciliation arithmetic of
// the dashboard. Every function operates on an immutable snapshot of rows
// fetched at request time and is safe for concurrent use.
package finance

import (
	"strings"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Group is a canonical budget bucket. Raw plan-row labels are normalized to
// this closed set exactly once, in NormalizeGroup.
type Group string

const (
	GroupIncome      Group = "income"
	GroupExpense     Group = "expense"
	GroupSavings     Group = "savings"
	GroupInvestments Group = "investments"
)

var hundred = decimal.NewFromInt(100)

// groupSign is the sign multiplier applied when comparing an actual
// transaction sum against a planned amount. Outflow groups store negative
// amounts, so their actuals are flipped to positive magnitudes before the
// comparison. Kept as a table so the convention is visible in one place.
var groupSign = map[Group]int64{
	GroupIncome:      1,
	GroupExpense:     -1,
	GroupSavings:     -1,
	GroupInvestments: -1,
}

// NormalizeGroup maps a raw budget-row group label to its canonical bucket.
// Matching is case-insensitive, ignores surrounding whitespace, and accepts
// both singular and plural spellings. The second return value is false for
// labels outside the closed set; such rows are excluded from every total and
// display list.
func NormalizeGroup(raw string) (Group, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income":
		return GroupIncome, true
	case "expense", "expenses":
		return GroupExpense, true
	case "saving", "savings":
		return GroupSavings, true
	case "investment", "investments":
		return GroupInvestments, true
	}
	return "", false
}

// SignForGroup returns the sign multiplier of a canonical group as a decimal.
func SignForGroup(g Group) decimal.Decimal {
	return decimal.NewFromInt(groupSign[g])
}

// AccountFlows sums each account's all-time balance and trailing 30-day net
// flow. Rows are keyed by account identifier; empty input yields an empty
// map. Outputs are rounded to two decimal places (Round, half away from zero).
func AccountFlows(rows []domain.TransactionFact, today time.Time) map[string]domain.Flow {
	return flows(rows, today, func(f domain.TransactionFact) string { return f.AccountID }, false)
}

// FundFlows sums each savings fund's all-time amount and trailing 30-day net
// flow. The stored outflow sign is inverted so money saved reads positive.
// Rows without a fund reference are excluded.
func FundFlows(rows []domain.TransactionFact, today time.Time) map[string]domain.Flow {
	key := func(f domain.TransactionFact) string {
		if f.FundID == nil {
			return ""
		}
		return *f.FundID
	}
	return flows(rows, today, key, true)
}

func flows(rows []domain.TransactionFact, today time.Time, key func(domain.TransactionFact) string, invert bool) map[string]domain.Flow {
	cutoff := today.AddDate(0, 0, -30)
	totals := map[string]decimal.Decimal{}
	recent := map[string]decimal.Decimal{}

	for _, row := range rows {
		k := key(row)
		if k == "" {
			continue
		}
		amount := row.Amount
		if invert {
			amount = amount.Neg()
		}
		totals[k] = totals[k].Add(amount)
		if !row.Date.Before(cutoff) {
			recent[k] = recent[k].Add(amount)
		}
	}

	result := make(map[string]domain.Flow, len(totals))
	for k, total := range totals {
		result[k] = domain.Flow{
			Total:     total.Round(2),
			NetFlow30: recent[k].Round(2),
		}
	}
	return result
}

// SummarizePeriod aggregates one window of transactions into the period
// summary. Group totals are unsigned magnitudes; the per-category breakdown
// keeps the original signs. A window with no transactions yields all-zero
// totals and an empty breakdown.
func SummarizePeriod(rows []domain.TransactionFact) domain.PeriodSummary {
	sums := map[domain.CategoryType]decimal.Decimal{}
	byCategory := map[string]decimal.Decimal{}
	net := decimal.Zero

	for _, row := range rows {
		net = net.Add(row.Amount)
		sums[row.CategoryType] = sums[row.CategoryType].Add(row.Amount)
		if row.CategoryName != "" {
			byCategory[row.CategoryName] = byCategory[row.CategoryName].Add(row.Amount)
		}
	}

	income := sums[domain.CategoryTypeIncome].Abs()
	expenses := sums[domain.CategoryTypeExpense].Abs()
	savings := sums[domain.CategoryTypeSaving].Abs()
	investments := sums[domain.CategoryTypeInvestment].Abs()

	summary := domain.PeriodSummary{
		Income:         income.Round(2),
		Expenses:       expenses.Round(2),
		Savings:        savings.Round(2),
		Investments:    investments.Round(2),
		Profit:         income.Sub(expenses).Sub(investments).Round(2),
		NetCashFlow:    net.Round(2),
		SavingsRate:    decimal.Zero,
		InvestmentRate: decimal.Zero,
		ByCategory:     make(map[string]decimal.Decimal, len(byCategory)),
	}

	if !income.IsZero() {
		summary.SavingsRate = savings.Div(income).Mul(hundred).Round(2)
		summary.InvestmentRate = investments.Div(income).Mul(hundred).Round(2)
	}

	for name, sum := range byCategory {
		summary.ByCategory[name] = sum.Round(2)
	}
	return summary
}

// EmergencyFundTargets sizes the emergency fund from a window of transaction
// facts. The average monthly core expense divides the core-expense total by
// the number of months that actually contain at least one transaction; months
// with zero activity never enter the denominator.
func EmergencyFundTargets(rows []domain.TransactionFact) (coreTotal decimal.Decimal, monthsAnalyzed int, avg, threeMonth, sixMonth decimal.Decimal) {
	months := map[string]struct{}{}
	coreTotal = decimal.Zero

	for _, row := range rows {
		months[row.Date.Format("2006-01")] = struct{}{}
		if row.CategoryType == domain.CategoryTypeExpense && row.SpendingType == domain.SpendingCore {
			coreTotal = coreTotal.Add(row.Amount.Abs())
		}
	}

	monthsAnalyzed = len(months)
	avg = decimal.Zero
	if monthsAnalyzed > 0 {
		avg = coreTotal.DivRound(decimal.NewFromInt(int64(monthsAnalyzed)), 2)
	}
	coreTotal = coreTotal.Round(2)
	threeMonth = avg.Mul(decimal.NewFromInt(3)).Round(2)
	sixMonth = avg.Mul(decimal.NewFromInt(6)).Round(2)
	return coreTotal, monthsAnalyzed, avg, threeMonth, sixMonth
}

// CoveragePct expresses current liquid savings as a percentage of a target.
// A zero target yields zero coverage rather than a division error.
func CoveragePct(current, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}
	return current.Div(target).Mul(hundred).Round(2)
}

// ReconcileBudget merges a plan's rows with per-category actual sums into the
// budget report. Policies pinned here, deliberately:
//   - a planned amount of zero yields a difference of exactly zero no matter
//     the actual spend (display stability over an undefined percentage);
//   - actual sums of non-income groups are negated so spend compares as a
//     positive magnitude against the positive planned amount;
//   - rows without a category keep nil actual/difference and are never
//     reconciled;
//   - rows with an unrecognized group label are counted in DroppedRows and
//     excluded from every total and list.
func ReconcileBudget(rows []domain.BudgetPlanRow, actuals map[string]decimal.Decimal) domain.BudgetReport {
	report := domain.BudgetReport{
		TotalIncomePlanned:      decimal.Zero,
		TotalExpensePlanned:     decimal.Zero,
		TotalSavingsPlanned:     decimal.Zero,
		TotalInvestmentsPlanned: decimal.Zero,
		IncomeRows:              []domain.BudgetRow{},
		ExpenseRows:             []domain.BudgetRow{},
		SavingsRows:             []domain.BudgetRow{},
		InvestmentsRows:         []domain.BudgetRow{},
	}

	for _, row := range rows {
		group, recognized := NormalizeGroup(row.Group)

		enriched := domain.BudgetRow{
			Name:           row.Name,
			CategoryID:     row.CategoryID,
			Planned:        row.Amount,
			IncludeInTotal: row.IncludeInTotal,
		}

		if row.CategoryID != nil {
			actual := actuals[*row.CategoryID]
			// Only income escapes the sign flip; unrecognized labels follow
			// the outflow convention.
			sign := decimal.NewFromInt(-1)
			if recognized {
				sign = SignForGroup(group)
			}
			actual = actual.Mul(sign)
			diff := decimal.Zero
			if !row.Amount.IsZero() {
				diff = actual.Sub(row.Amount).Div(row.Amount).Mul(hundred).Round(2)
			}
			actual = actual.Round(2)
			enriched.Actual = &actual
			enriched.DifferencePct = &diff
		}

		if !recognized {
			report.DroppedRows++
			continue
		}

		if row.IncludeInTotal {
			switch group {
			case GroupIncome:
				report.TotalIncomePlanned = report.TotalIncomePlanned.Add(row.Amount)
			case GroupExpense:
				report.TotalExpensePlanned = report.TotalExpensePlanned.Add(row.Amount)
			case GroupSavings:
				report.TotalSavingsPlanned = report.TotalSavingsPlanned.Add(row.Amount)
			case GroupInvestments:
				report.TotalInvestmentsPlanned = report.TotalInvestmentsPlanned.Add(row.Amount)
			}
		}

		switch group {
		case GroupIncome:
			report.IncomeRows = append(report.IncomeRows, enriched)
		case GroupExpense:
			report.ExpenseRows = append(report.ExpenseRows, enriched)
		case GroupSavings:
			report.SavingsRows = append(report.SavingsRows, enriched)
		case GroupInvestments:
			report.InvestmentsRows = append(report.InvestmentsRows, enriched)
		}
	}

	report.RemainingBudget = report.TotalIncomePlanned.
		Sub(report.TotalExpensePlanned).
		Sub(report.TotalSavingsPlanned).
		Sub(report.TotalInvestmentsPlanned)
	return report
}

// MonthRange returns the first and last calendar day of a month, inclusive.
// time.Date normalizes month overflow, so December rolls over to January of
// the following year.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}
