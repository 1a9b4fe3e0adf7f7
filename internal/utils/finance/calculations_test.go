package finance

import (
	"testing"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fact(amount string, date time.Time, catName string, catType domain.CategoryType) domain.TransactionFact {
	return domain.TransactionFact{
		Amount:       dec(amount),
		Date:         date,
		AccountID:    "acc-1",
		CategoryName: catName,
		CategoryType: catType,
	}
}

func TestNormalizeGroup(t *testing.T) {
	cases := []struct {
		raw        string
		want       Group
		recognized bool
	}{
		{"income", GroupIncome, true},
		{"Income", GroupIncome, true},
		{"expense", GroupExpense, true},
		{"expenses", GroupExpense, true},
		{"EXPENSES", GroupExpense, true},
		{"Saving", GroupSavings, true},
		{"saving", GroupSavings, true},
		{"SAVINGS", GroupSavings, true},
		{"savings ", GroupSavings, true},
		{" investment", GroupInvestments, true},
		{"Investments", GroupInvestments, true},
		{"", "", false},
		{"misc", "", false},
		{"incomes", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeGroup(tc.raw)
		assert.Equal(t, tc.recognized, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestSummarizePeriod(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []domain.TransactionFact{
		fact("3500", day, "Salary", domain.CategoryTypeIncome),
		fact("-1000", day, "Rent", domain.CategoryTypeExpense),
		fact("-500", day, "Emergency Fund", domain.CategoryTypeSaving),
		fact("-200", day, "ETF", domain.CategoryTypeInvestment),
	}

	s := SummarizePeriod(rows)

	assert.True(t, s.Income.Equal(dec("3500")), "income=%s", s.Income)
	assert.True(t, s.Expenses.Equal(dec("1000")), "expenses=%s", s.Expenses)
	assert.True(t, s.Savings.Equal(dec("500")), "savings=%s", s.Savings)
	assert.True(t, s.Investments.Equal(dec("200")), "investments=%s", s.Investments)

	// Profit excludes savings: a contribution is a reallocation, not a loss.
	assert.True(t, s.Profit.Equal(dec("2300")), "profit=%s", s.Profit)
	assert.True(t, s.NetCashFlow.Equal(dec("1800")), "netCashFlow=%s", s.NetCashFlow)

	assert.True(t, s.SavingsRate.Equal(dec("14.29")), "savingsRate=%s", s.SavingsRate)
	assert.True(t, s.InvestmentRate.Equal(dec("5.71")), "investmentRate=%s", s.InvestmentRate)

	assert.True(t, s.ByCategory["Salary"].Equal(dec("3500")))
	assert.True(t, s.ByCategory["Rent"].Equal(dec("-1000")))
	assert.True(t, s.ByCategory["Emergency Fund"].Equal(dec("-500")))
	assert.True(t, s.ByCategory["ETF"].Equal(dec("-200")))
}

func TestSummarizePeriodZeroIncome(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []domain.TransactionFact{
		fact("-1000", day, "Rent", domain.CategoryTypeExpense),
		fact("-500", day, "Emergency Fund", domain.CategoryTypeSaving),
	}

	s := SummarizePeriod(rows)

	assert.True(t, s.SavingsRate.IsZero(), "savings rate must be zero with no income")
	assert.True(t, s.InvestmentRate.IsZero(), "investment rate must be zero with no income")
	assert.True(t, s.Profit.Equal(dec("-1000")))
}

func TestSummarizePeriodEmpty(t *testing.T) {
	s := SummarizePeriod(nil)

	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expenses.IsZero())
	assert.True(t, s.Profit.IsZero())
	assert.True(t, s.NetCashFlow.IsZero())
	assert.Empty(t, s.ByCategory)
}

func TestSummarizePeriodOrderIndependent(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []domain.TransactionFact{
		fact("3500", day, "Salary", domain.CategoryTypeIncome),
		fact("-1000", day, "Rent", domain.CategoryTypeExpense),
		fact("-500", day, "Emergency Fund", domain.CategoryTypeSaving),
		fact("-200", day, "ETF", domain.CategoryTypeInvestment),
	}
	reversed := []domain.TransactionFact{rows[3], rows[2], rows[1], rows[0]}

	a := SummarizePeriod(rows)
	b := SummarizePeriod(reversed)

	assert.True(t, a.Profit.Equal(b.Profit))
	assert.True(t, a.NetCashFlow.Equal(b.NetCashFlow))
	assert.True(t, a.SavingsRate.Equal(b.SavingsRate))
	assert.Equal(t, len(a.ByCategory), len(b.ByCategory))
}

func TestAccountFlowsWindow(t *testing.T) {
	today := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	inside := today.AddDate(0, 0, -10)
	boundary := today.AddDate(0, 0, -30) // inclusive
	outside := today.AddDate(0, 0, -31)

	rows := []domain.TransactionFact{
		fact("100", inside, "Salary", domain.CategoryTypeIncome),
		fact("50", boundary, "Salary", domain.CategoryTypeIncome),
		fact("-40", outside, "Rent", domain.CategoryTypeExpense),
	}

	flows := AccountFlows(rows, today)
	require.Contains(t, flows, "acc-1")

	flow := flows["acc-1"]
	assert.True(t, flow.Total.Equal(dec("110")), "total=%s", flow.Total)
	assert.True(t, flow.NetFlow30.Equal(dec("150")), "netFlow30=%s", flow.NetFlow30)
}

func TestAccountFlowsEmpty(t *testing.T) {
	flows := AccountFlows(nil, time.Now())
	assert.Empty(t, flows)
}

func TestFundFlowsInvertsSign(t *testing.T) {
	today := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	fundID := "fund-1"

	contribution := fact("-500", today.AddDate(0, 0, -5), "Emergency Fund", domain.CategoryTypeSaving)
	contribution.FundID = &fundID
	withdrawal := fact("200", today.AddDate(0, -3, 0), "Emergency Fund", domain.CategoryTypeSaving)
	withdrawal.FundID = &fundID
	unrelated := fact("-100", today, "Rent", domain.CategoryTypeExpense) // no fund

	flows := FundFlows([]domain.TransactionFact{contribution, withdrawal, unrelated}, today)

	require.Len(t, flows, 1)
	flow := flows[fundID]
	assert.True(t, flow.Total.Equal(dec("300")), "total=%s", flow.Total)
	assert.True(t, flow.NetFlow30.Equal(dec("500")), "netFlow30=%s", flow.NetFlow30)
}

func TestEmergencyFundTargets(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	core := func(amount string, day time.Time) domain.TransactionFact {
		f := fact(amount, day, "Rent", domain.CategoryTypeExpense)
		f.SpendingType = domain.SpendingCore
		return f
	}
	fun := fact("-300", feb, "Dining", domain.CategoryTypeExpense)
	fun.SpendingType = domain.SpendingFun

	rows := []domain.TransactionFact{
		core("-1000", jan),
		core("-1200", feb),
		fun,
		fact("3500", mar, "Salary", domain.CategoryTypeIncome),
	}

	coreTotal, months, avg, three, six := EmergencyFundTargets(rows)

	assert.True(t, coreTotal.Equal(dec("2200")), "coreTotal=%s", coreTotal)
	// March has activity but no core spend; it still counts as an analyzed month.
	assert.Equal(t, 3, months)
	assert.True(t, avg.Equal(dec("733.33")), "avg=%s", avg)
	assert.True(t, three.Equal(dec("2199.99")), "three=%s", three)
	assert.True(t, six.Equal(dec("4399.98")), "six=%s", six)
}

func TestEmergencyFundTargetsEmpty(t *testing.T) {
	coreTotal, months, avg, three, six := EmergencyFundTargets(nil)

	assert.True(t, coreTotal.IsZero())
	assert.Equal(t, 0, months)
	assert.True(t, avg.IsZero())
	assert.True(t, three.IsZero())
	assert.True(t, six.IsZero())
}

func TestCoveragePct(t *testing.T) {
	assert.True(t, CoveragePct(dec("1500"), dec("3000")).Equal(dec("50")))
	assert.True(t, CoveragePct(dec("1000"), decimal.Zero).IsZero(), "zero target yields zero coverage")
	assert.True(t, CoveragePct(decimal.Zero, dec("3000")).IsZero())
}

func TestReconcileBudget(t *testing.T) {
	rentID := "cat-rent"
	salaryID := "cat-salary"
	rows := []domain.BudgetPlanRow{
		{Name: "Salary", Group: "Income", CategoryID: &salaryID, Amount: dec("3500"), IncludeInTotal: true},
		{Name: "Rent", Group: "expenses", CategoryID: &rentID, Amount: dec("500"), IncludeInTotal: true},
		{Name: "Buffer", Group: "savings", Amount: dec("300"), IncludeInTotal: true},
	}
	actuals := map[string]decimal.Decimal{
		salaryID: dec("3500"),
		rentID:   dec("-480"), // spent 480 of a 500 plan
	}

	report := ReconcileBudget(rows, actuals)

	assert.True(t, report.TotalIncomePlanned.Equal(dec("3500")))
	assert.True(t, report.TotalExpensePlanned.Equal(dec("500")))
	assert.True(t, report.TotalSavingsPlanned.Equal(dec("300")))
	assert.True(t, report.RemainingBudget.Equal(dec("2700")))
	assert.Equal(t, 0, report.DroppedRows)

	require.Len(t, report.ExpenseRows, 1)
	rent := report.ExpenseRows[0]
	require.NotNil(t, rent.Actual)
	require.NotNil(t, rent.DifferencePct)
	assert.True(t, rent.Actual.Equal(dec("480")), "actual=%s", rent.Actual)
	assert.True(t, rent.DifferencePct.Equal(dec("-4")), "diffPct=%s", rent.DifferencePct)

	// Rows without a category are informational only.
	require.Len(t, report.SavingsRows, 1)
	assert.Nil(t, report.SavingsRows[0].Actual)
	assert.Nil(t, report.SavingsRows[0].DifferencePct)
}

func TestReconcileBudgetPlannedZero(t *testing.T) {
	catID := "cat-1"
	rows := []domain.BudgetPlanRow{
		{Name: "Misc", Group: "expense", CategoryID: &catID, Amount: decimal.Zero, IncludeInTotal: true},
	}
	actuals := map[string]decimal.Decimal{catID: dec("-250")}

	report := ReconcileBudget(rows, actuals)

	require.Len(t, report.ExpenseRows, 1)
	row := report.ExpenseRows[0]
	require.NotNil(t, row.DifferencePct)
	assert.True(t, row.DifferencePct.IsZero(), "planned zero must pin the difference to zero")
	require.NotNil(t, row.Actual)
	assert.True(t, row.Actual.Equal(dec("250")))
}

func TestReconcileBudgetIncomeShortfall(t *testing.T) {
	catID := "cat-salary"
	rows := []domain.BudgetPlanRow{
		{Name: "Salary", Group: "income", CategoryID: &catID, Amount: dec("5000"), IncludeInTotal: true},
	}
	actuals := map[string]decimal.Decimal{catID: dec("4800")}

	report := ReconcileBudget(rows, actuals)

	require.Len(t, report.IncomeRows, 1)
	row := report.IncomeRows[0]
	require.NotNil(t, row.Actual)
	assert.True(t, row.Actual.Equal(dec("4800")), "income actuals keep their stored sign")
	require.NotNil(t, row.DifferencePct)
	assert.True(t, row.DifferencePct.Equal(dec("-4")), "difference_pct=%s", row.DifferencePct)
}

func TestReconcileBudgetDropsUnrecognizedGroups(t *testing.T) {
	rows := []domain.BudgetPlanRow{
		{Name: "Salary", Group: "income", Amount: dec("3500"), IncludeInTotal: true},
		{Name: "Weird", Group: "misc", Amount: dec("999"), IncludeInTotal: true},
		{Name: "Blank", Group: "", Amount: dec("1"), IncludeInTotal: true},
	}

	report := ReconcileBudget(rows, nil)

	assert.Equal(t, 2, report.DroppedRows)
	assert.True(t, report.TotalIncomePlanned.Equal(dec("3500")))
	// Dropped rows never surface in any list or total.
	assert.Len(t, report.IncomeRows, 1)
	assert.Empty(t, report.ExpenseRows)
	assert.True(t, report.RemainingBudget.Equal(dec("3500")))
}

func TestReconcileBudgetExcludeFromTotal(t *testing.T) {
	catID := "cat-1"
	rows := []domain.BudgetPlanRow{
		{Name: "Rent", Group: "expense", CategoryID: &catID, Amount: dec("500"), IncludeInTotal: false},
	}

	report := ReconcileBudget(rows, map[string]decimal.Decimal{catID: dec("-480")})

	assert.True(t, report.TotalExpensePlanned.IsZero(), "excluded rows must not enter totals")
	// The row itself still shows up, reconciled.
	require.Len(t, report.ExpenseRows, 1)
	require.NotNil(t, report.ExpenseRows[0].Actual)
}

func TestReconcileBudgetEmpty(t *testing.T) {
	report := ReconcileBudget(nil, nil)

	assert.True(t, report.TotalIncomePlanned.IsZero())
	assert.True(t, report.RemainingBudget.IsZero())
	assert.NotNil(t, report.IncomeRows)
	assert.Empty(t, report.IncomeRows)
	assert.Equal(t, 0, report.DroppedRows)
}

func TestReconcileBudgetIdempotent(t *testing.T) {
	catID := "cat-1"
	rows := []domain.BudgetPlanRow{
		{Name: "Rent", Group: "expense", CategoryID: &catID, Amount: dec("500"), IncludeInTotal: true},
	}
	actuals := map[string]decimal.Decimal{catID: dec("-480")}

	a := ReconcileBudget(rows, actuals)
	b := ReconcileBudget(rows, actuals)

	assert.True(t, a.TotalExpensePlanned.Equal(b.TotalExpensePlanned))
	assert.True(t, a.ExpenseRows[0].Actual.Equal(*b.ExpenseRows[0].Actual))
	assert.True(t, a.ExpenseRows[0].DifferencePct.Equal(*b.ExpenseRows[0].DifferencePct))
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.March)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), last)

	// February in a leap year.
	_, lastFeb := MonthRange(2024, time.February)
	assert.Equal(t, 29, lastFeb.Day())

	// December rolls into January of the next year for the exclusive bound.
	firstDec, lastDec := MonthRange(2023, time.December)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), firstDec)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), lastDec)
}
