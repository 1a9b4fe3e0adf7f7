package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles the read-only aggregation endpoints backing the
// dashboard views.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

func newAnalyticsHandler(as portssvc.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// RegisterAnalyticsRoutes registers the aggregation endpoints.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/accounts", h.accountsOverview)
		analytics.GET("/funds", h.fundsOverview)
		analytics.GET("/summary/:year/:month", h.monthlySummary)
		analytics.GET("/summary/:year", h.yearlySummary)
		analytics.GET("/emergency-fund", h.emergencyFund)
		analytics.GET("/budget/:year/:month", h.budgetSummary)
	}
}

// accountsOverview godoc
// @Summary Per-account balances and 30-day flows
// @Description Reports the current balance and trailing 30-day net flow of every account
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.AccountOverviewResponse
// @Security BearerAuth
// @Router /analytics/accounts [get]
func (h *analyticsHandler) accountsOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.analyticsService.AccountsOverview(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute accounts overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountOverviewResponse(rows))
}

// fundsOverview godoc
// @Summary Per-fund saved amounts and 30-day flows
// @Description Reports the amount saved into every savings fund, outflow sign inverted so savings read positive
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.FundOverviewResponse
// @Security BearerAuth
// @Router /analytics/funds [get]
func (h *analyticsHandler) fundsOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.analyticsService.FundsOverview(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute funds overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundOverviewResponse(rows))
}

// monthlySummary godoc
// @Summary Monthly income/expense summary
// @Description Aggregates one calendar month: group totals, profit, cash flow, rates and category breakdown
// @Tags analytics
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Security BearerAuth
// @Router /analytics/summary/{year}/{month} [get]
func (h *analyticsHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.analyticsService.MonthlySummary(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(summary))
}

// yearlySummary godoc
// @Summary Yearly income/expense summary
// @Description Aggregates one calendar year with the same shape as the monthly summary
// @Tags analytics
// @Produce  json
// @Param   year path int true "Year"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid year"
// @Security BearerAuth
// @Router /analytics/summary/{year} [get]
func (h *analyticsHandler) yearlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.analyticsService.YearlySummary(c.Request.Context(), userID, year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute yearly summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(summary))
}

// emergencyFund godoc
// @Summary Emergency fund sizing and coverage
// @Description Sizes 3- and 6-month targets from trailing core expenses and reports coverage from emergency-flagged funds
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.EmergencyFundResponse
// @Security BearerAuth
// @Router /analytics/emergency-fund [get]
func (h *analyticsHandler) emergencyFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.analyticsService.EmergencyFund(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute emergency fund report")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmergencyFundResponse(report))
}

// budgetSummary godoc
// @Summary Budget-vs-actual reconciliation for a month
// @Description Joins the month's plan with actual transactions; a missing plan yields an all-zero report
// @Tags analytics
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Security BearerAuth
// @Router /analytics/budget/{year}/{month} [get]
func (h *analyticsHandler) budgetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.analyticsService.BudgetSummary(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute budget summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(report))
}
