package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/handlers"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) AccountsOverview(ctx context.Context, userID string) ([]domain.AccountOverviewRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountOverviewRow), args.Error(1)
}

func (m *MockAnalyticsService) FundsOverview(ctx context.Context, userID string) ([]domain.FundOverviewRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundOverviewRow), args.Error(1)
}

func (m *MockAnalyticsService) MonthlySummary(ctx context.Context, userID string, year, month int) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

func (m *MockAnalyticsService) YearlySummary(ctx context.Context, userID string, year int) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

func (m *MockAnalyticsService) EmergencyFund(ctx context.Context, userID string) (*domain.EmergencyFundReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmergencyFundReport), args.Error(1)
}

func (m *MockAnalyticsService) BudgetSummary(ctx context.Context, userID string, year, month int) (*domain.BudgetReport, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetReport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AnalyticsService = (*MockAnalyticsService)(nil)

// --- Test Suite ---
type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAnalyticsService
	jwtSecret   string
}

func (suite *AnalyticsHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "budgeting-dashboard-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockAnalyticsService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAnalyticsRoutes(v1, suite.mockService)
}

func (suite *AnalyticsHandlerTestSuite) get(userID, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AnalyticsHandlerTestSuite) TestAccountsOverview_Success() {
	userID := uuid.NewString()
	rows := []domain.AccountOverviewRow{
		{
			AccountID:      uuid.NewString(),
			Name:           "Main Checking",
			CurrentBalance: decimal.RequireFromString("1500"),
			NetFlow30:      decimal.RequireFromString("-120.50"),
		},
	}

	suite.mockService.On("AccountsOverview",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
	).Return(rows, nil).Once()

	w := suite.get(userID, "/api/v1/analytics/accounts")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountOverviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("Main Checking", resp.Accounts[0].Name)
	suite.True(resp.Accounts[0].CurrentBalance.Equal(decimal.RequireFromString("1500")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AnalyticsHandlerTestSuite) TestMonthlySummary_Success() {
	userID := uuid.NewString()
	summary := &domain.PeriodSummary{
		Income:      decimal.RequireFromString("3000"),
		Expenses:    decimal.RequireFromString("900"),
		Profit:      decimal.RequireFromString("2100"),
		NetCashFlow: decimal.RequireFromString("2100"),
		ByCategory: map[string]decimal.Decimal{
			"Salary":    decimal.RequireFromString("3000"),
			"Groceries": decimal.RequireFromString("-900"),
		},
	}

	suite.mockService.On("MonthlySummary",
		mock.AnythingOfType("*context.valueCtx"),
		userID, 2025, 3,
	).Return(summary, nil).Once()

	w := suite.get(userID, "/api/v1/analytics/summary/2025/3")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PeriodSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Income.Equal(decimal.RequireFromString("3000")))
	suite.True(resp.ByCategory["Groceries"].Equal(decimal.RequireFromString("-900")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AnalyticsHandlerTestSuite) TestMonthlySummary_InvalidMonth() {
	userID := uuid.NewString()

	w := suite.get(userID, "/api/v1/analytics/summary/2025/abc")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "MonthlySummary")
}

func (suite *AnalyticsHandlerTestSuite) TestMonthlySummary_MonthOutOfRange() {
	userID := uuid.NewString()

	w := suite.get(userID, "/api/v1/analytics/summary/2025/13")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "MonthlySummary")
}

func (suite *AnalyticsHandlerTestSuite) TestYearlySummary_ServiceError() {
	userID := uuid.NewString()

	suite.mockService.On("YearlySummary",
		mock.AnythingOfType("*context.valueCtx"),
		userID, 2025,
	).Return(nil, apperrors.ErrValidation).Once()

	w := suite.get(userID, "/api/v1/analytics/summary/2025")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AnalyticsHandlerTestSuite) TestEmergencyFund_Success() {
	userID := uuid.NewString()
	report := &domain.EmergencyFundReport{
		CoreExpenseTotal:   decimal.RequireFromString("12000"),
		MonthsAnalyzed:     12,
		AvgMonthlyCore:     decimal.RequireFromString("1000"),
		ThreeMonthTarget:   decimal.RequireFromString("3000"),
		SixMonthTarget:     decimal.RequireFromString("6000"),
		CurrentAmount:      decimal.RequireFromString("4500"),
		ThreeMonthCoverage: decimal.RequireFromString("150"),
		SixMonthCoverage:   decimal.RequireFromString("75"),
	}

	suite.mockService.On("EmergencyFund",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
	).Return(report, nil).Once()

	w := suite.get(userID, "/api/v1/analytics/emergency-fund")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmergencyFundResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(12, resp.MonthsAnalyzed)
	suite.True(resp.SixMonthCoverage.Equal(decimal.RequireFromString("75")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AnalyticsHandlerTestSuite) TestBudgetSummary_Success() {
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	actual := decimal.RequireFromString("480")
	diff := decimal.RequireFromString("-4")
	report := &domain.BudgetReport{
		TotalIncomePlanned:  decimal.RequireFromString("3000"),
		TotalExpensePlanned: decimal.RequireFromString("500"),
		RemainingBudget:     decimal.RequireFromString("2500"),
		ExpenseRows: []domain.BudgetRow{
			{
				Name:           "Groceries",
				CategoryID:     &categoryID,
				Planned:        decimal.RequireFromString("500"),
				Actual:         &actual,
				DifferencePct:  &diff,
				IncludeInTotal: true,
			},
		},
	}

	suite.mockService.On("BudgetSummary",
		mock.AnythingOfType("*context.valueCtx"),
		userID, 2025, 6,
	).Return(report, nil).Once()

	w := suite.get(userID, "/api/v1/analytics/budget/2025/6")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BudgetSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.RemainingBudget.Equal(decimal.RequireFromString("2500")))
	suite.Require().Len(resp.ExpenseRows, 1)
	suite.Require().NotNil(resp.ExpenseRows[0].Actual)
	suite.True(resp.ExpenseRows[0].Actual.Equal(actual))
	suite.mockService.AssertExpectations(suite.T())
}

func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}
