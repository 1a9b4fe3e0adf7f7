package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/utils/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAnalyticsRepository is a mock type for the AnalyticsRepository interface
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) FindTransactionFacts(ctx context.Context, userID string, from, to time.Time, categoryIDs []string) ([]domain.TransactionFact, error) {
	args := m.Called(ctx, userID, from, to, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionFact), args.Error(1)
}

func (m *MockAnalyticsRepository) FindAllTransactionFacts(ctx context.Context, userID string) ([]domain.TransactionFact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionFact), args.Error(1)
}

// MockBudgetReader is a mock type for the BudgetReader interface
type MockBudgetReader struct {
	mock.Mock
}

func (m *MockBudgetReader) FindBudgetForMonth(ctx context.Context, userID string, year, month int) (*domain.BudgetPlan, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetPlan), args.Error(1)
}

// MockFundRepository is a mock type for the FundReader interface
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.SavingsFund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsFund), args.Error(1)
}

func (m *MockFundRepository) ListFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsFund), args.Error(1)
}

// --- Test Suite Setup ---

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockAnalytics *MockAnalyticsRepository
	mockBudgets   *MockBudgetReader
	mockAccounts  *MockAccountRepository
	mockFunds     *MockFundRepository
	service       portssvc.AnalyticsService
	today         time.Time
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockAnalytics = new(MockAnalyticsRepository)
	suite.mockBudgets = new(MockBudgetReader)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockFunds = new(MockFundRepository)
	suite.today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewAnalyticsService(
		suite.mockAnalytics,
		suite.mockBudgets,
		suite.mockAccounts,
		suite.mockFunds,
		services.WithClock(func() time.Time { return suite.today }),
	)
}

func (suite *AnalyticsServiceTestSuite) assertAllExpectations() {
	suite.mockAnalytics.AssertExpectations(suite.T())
	suite.mockBudgets.AssertExpectations(suite.T())
	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockFunds.AssertExpectations(suite.T())
}

func expenseFact(accountID, amount string, date time.Time) domain.TransactionFact {
	return domain.TransactionFact{
		Amount:       decimal.RequireFromString(amount),
		Date:         date,
		AccountID:    accountID,
		CategoryName: "Groceries",
		CategoryType: domain.CategoryTypeExpense,
	}
}

// --- Test Cases ---

func (suite *AnalyticsServiceTestSuite) TestAccountsOverview_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	checkingID := uuid.NewString()
	dormantID := uuid.NewString()

	facts := []domain.TransactionFact{
		expenseFact(checkingID, "-400", suite.today.AddDate(0, -6, 0)),
		expenseFact(checkingID, "-100", suite.today.AddDate(0, 0, -5)),
		{
			Amount:       decimal.RequireFromString("2000"),
			Date:         suite.today.AddDate(0, 0, -10),
			AccountID:    checkingID,
			CategoryName: "Salary",
			CategoryType: domain.CategoryTypeIncome,
		},
	}
	accounts := []domain.Account{
		{AccountID: checkingID, UserID: userID, Name: "Main Checking"},
		{AccountID: dormantID, UserID: userID, Name: "Dormant"},
	}

	suite.mockAnalytics.On("FindAllTransactionFacts", ctx, userID).Return(facts, nil).Once()
	suite.mockAccounts.On("ListAccounts", ctx, userID).Return(accounts, nil).Once()

	rows, err := suite.service.AccountsOverview(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1, "accounts with no transactions are omitted")
	suite.Equal(checkingID, rows[0].AccountID)
	suite.Equal("Main Checking", rows[0].Name)
	suite.True(rows[0].CurrentBalance.Equal(decimal.RequireFromString("1500")))
	suite.True(rows[0].NetFlow30.Equal(decimal.RequireFromString("1900")))
	suite.assertAllExpectations()
}

func (suite *AnalyticsServiceTestSuite) TestMonthlySummary_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	from, to := finance.MonthRange(2025, time.March)

	facts := []domain.TransactionFact{
		{
			Amount:       decimal.RequireFromString("3000"),
			Date:         from.AddDate(0, 0, 1),
			AccountID:    "a1",
			CategoryName: "Salary",
			CategoryType: domain.CategoryTypeIncome,
		},
		expenseFact("a1", "-900", from.AddDate(0, 0, 10)),
	}

	suite.mockAnalytics.On("FindTransactionFacts", ctx, userID, from, to, []string(nil)).Return(facts, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, userID, 2025, 3)

	suite.Require().NoError(err)
	suite.True(summary.Income.Equal(decimal.RequireFromString("3000")))
	suite.True(summary.Expenses.Equal(decimal.RequireFromString("900")))
	suite.True(summary.Profit.Equal(decimal.RequireFromString("2100")))
	suite.assertAllExpectations()
}

func (suite *AnalyticsServiceTestSuite) TestMonthlySummary_InvalidMonth() {
	ctx := context.Background()

	_, err := suite.service.MonthlySummary(ctx, uuid.NewString(), 2025, 13)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAnalytics.AssertNotCalled(suite.T(), "FindTransactionFacts")
}

func (suite *AnalyticsServiceTestSuite) TestEmergencyFund_NoEmergencyFunds() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := suite.today.AddDate(0, -12, 0)

	facts := []domain.TransactionFact{
		{
			Amount:       decimal.RequireFromString("-1000"),
			Date:         suite.today.AddDate(0, -1, 0),
			AccountID:    "a1",
			CategoryName: "Rent",
			CategoryType: domain.CategoryTypeExpense,
			SpendingType: domain.SpendingCore,
		},
	}
	funds := []domain.SavingsFund{
		{FundID: uuid.NewString(), UserID: userID, Name: "Vacation", IsEmergency: false},
	}

	suite.mockAnalytics.On("FindTransactionFacts", ctx, userID, from, suite.today, []string(nil)).Return(facts, nil).Once()
	suite.mockFunds.On("ListFunds", ctx, userID).Return(funds, nil).Once()

	report, err := suite.service.EmergencyFund(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(1, report.MonthsAnalyzed)
	suite.True(report.CoreExpenseTotal.Equal(decimal.RequireFromString("1000")))
	suite.True(report.ThreeMonthTarget.Equal(decimal.RequireFromString("3000")))
	suite.True(report.CurrentAmount.IsZero())
	suite.True(report.SixMonthCoverage.IsZero())
	suite.mockAnalytics.AssertNotCalled(suite.T(), "FindAllTransactionFacts")
	suite.assertAllExpectations()
}

func (suite *AnalyticsServiceTestSuite) TestEmergencyFund_Coverage() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := suite.today.AddDate(0, -12, 0)
	emergencyID := uuid.NewString()

	windowFacts := []domain.TransactionFact{
		{
			Amount:       decimal.RequireFromString("-1000"),
			Date:         suite.today.AddDate(0, -2, 0),
			AccountID:    "a1",
			CategoryName: "Rent",
			CategoryType: domain.CategoryTypeExpense,
			SpendingType: domain.SpendingCore,
		},
		{
			Amount:       decimal.RequireFromString("-1000"),
			Date:         suite.today.AddDate(0, -1, 0),
			AccountID:    "a1",
			CategoryName: "Rent",
			CategoryType: domain.CategoryTypeExpense,
			SpendingType: domain.SpendingCore,
		},
	}
	contribution := domain.TransactionFact{
		Amount:       decimal.RequireFromString("-1500"),
		Date:         suite.today.AddDate(0, -3, 0),
		AccountID:    "a1",
		CategoryName: "Emergency Fund",
		CategoryType: domain.CategoryTypeSaving,
		FundID:       &emergencyID,
	}
	funds := []domain.SavingsFund{
		{FundID: emergencyID, UserID: userID, Name: "Emergency", IsEmergency: true},
	}

	suite.mockAnalytics.On("FindTransactionFacts", ctx, userID, from, suite.today, []string(nil)).Return(windowFacts, nil).Once()
	suite.mockFunds.On("ListFunds", ctx, userID).Return(funds, nil).Once()
	suite.mockAnalytics.On("FindAllTransactionFacts", ctx, userID).
		Return(append(windowFacts, contribution), nil).Once()

	report, err := suite.service.EmergencyFund(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(2, report.MonthsAnalyzed)
	suite.True(report.AvgMonthlyCore.Equal(decimal.RequireFromString("1000")))
	suite.True(report.ThreeMonthTarget.Equal(decimal.RequireFromString("3000")))
	suite.True(report.SixMonthTarget.Equal(decimal.RequireFromString("6000")))
	suite.True(report.CurrentAmount.Equal(decimal.RequireFromString("1500")), "fund contribution sign is inverted")
	suite.True(report.ThreeMonthCoverage.Equal(decimal.RequireFromString("50")))
	suite.True(report.SixMonthCoverage.Equal(decimal.RequireFromString("25")))
	suite.assertAllExpectations()
}

func (suite *AnalyticsServiceTestSuite) TestBudgetSummary_MissingPlan() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBudgets.On("FindBudgetForMonth", ctx, userID, 2025, 6).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.BudgetSummary(ctx, userID, 2025, 6)

	suite.Require().NoError(err, "a missing plan is an empty plan, not a failure")
	suite.Empty(report.IncomeRows)
	suite.Empty(report.ExpenseRows)
	suite.Empty(report.SavingsRows)
	suite.Empty(report.InvestmentsRows)
	suite.True(report.TotalIncomePlanned.IsZero())
	suite.True(report.RemainingBudget.IsZero())
	suite.mockAnalytics.AssertNotCalled(suite.T(), "FindTransactionFacts")
	suite.assertAllExpectations()
}

func (suite *AnalyticsServiceTestSuite) TestBudgetSummary_Reconciles() {
	ctx := context.Background()
	userID := uuid.NewString()
	groceriesID := uuid.NewString()
	from, to := finance.MonthRange(2025, time.June)

	plan := &domain.BudgetPlan{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Year:     2025,
		Month:    6,
		Rows: []domain.BudgetPlanRow{
			{Name: "Salary", Group: "income", Amount: decimal.RequireFromString("3000"), IncludeInTotal: true},
			{Name: "Groceries", Group: "expense", CategoryID: &groceriesID, Amount: decimal.RequireFromString("500"), IncludeInTotal: true},
		},
	}
	facts := []domain.TransactionFact{
		{
			Amount:       decimal.RequireFromString("-480"),
			Date:         from.AddDate(0, 0, 4),
			AccountID:    "a1",
			CategoryID:   &groceriesID,
			CategoryName: "Groceries",
			CategoryType: domain.CategoryTypeExpense,
		},
	}

	suite.mockBudgets.On("FindBudgetForMonth", ctx, userID, 2025, 6).Return(plan, nil).Once()
	suite.mockAnalytics.On("FindTransactionFacts", ctx, userID, from, to, []string{groceriesID}).Return(facts, nil).Once()

	report, err := suite.service.BudgetSummary(ctx, userID, 2025, 6)

	suite.Require().NoError(err)
	suite.Require().Len(report.IncomeRows, 1)
	suite.Require().Len(report.ExpenseRows, 1)
	suite.True(report.TotalIncomePlanned.Equal(decimal.RequireFromString("3000")))
	suite.True(report.TotalExpensePlanned.Equal(decimal.RequireFromString("500")))
	suite.True(report.RemainingBudget.Equal(decimal.RequireFromString("2500")))

	groceries := report.ExpenseRows[0]
	suite.Require().NotNil(groceries.Actual)
	suite.True(groceries.Actual.Equal(decimal.RequireFromString("480")))
	suite.Require().NotNil(groceries.DifferencePct)
	suite.True(groceries.DifferencePct.Equal(decimal.RequireFromString("-4")))
	suite.assertAllExpectations()
}

func (suite *AnalyticsServiceTestSuite) TestBudgetSummary_DropsUnrecognizedGroups() {
	ctx := context.Background()
	userID := uuid.NewString()

	plan := &domain.BudgetPlan{
		UserID: userID,
		Year:   2025,
		Month:  6,
		Rows: []domain.BudgetPlanRow{
			{Name: "Mystery", Group: "misc", Amount: decimal.RequireFromString("100"), IncludeInTotal: true},
		},
	}

	suite.mockBudgets.On("FindBudgetForMonth", ctx, userID, 2025, 6).Return(plan, nil).Once()

	report, err := suite.service.BudgetSummary(ctx, userID, 2025, 6)

	suite.Require().NoError(err)
	suite.Empty(report.IncomeRows)
	suite.Empty(report.ExpenseRows)
	suite.Equal(1, report.DroppedRows)
	suite.True(report.RemainingBudget.IsZero())
	suite.mockAnalytics.AssertNotCalled(suite.T(), "FindTransactionFacts")
	suite.assertAllExpectations()
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
