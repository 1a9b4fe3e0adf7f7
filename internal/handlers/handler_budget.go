package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budget plans.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budget plans.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.PUT("", h.upsertBudget)
		budgets.GET("/:year/:month", h.getBudget)
		budgets.DELETE("/:year/:month", h.deleteBudget)
	}
}

// parseYearMonth reads the year and month path params.
func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month: must be 1-12"})
		return 0, 0, false
	}
	return year, month, true
}

// upsertBudget godoc
// @Summary Create or replace a monthly budget plan
// @Description Replaces the entire plan for the given month; rows keep their authored order
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.UpsertBudgetRequest true "Plan details"
// @Success 200 {object} dto.BudgetPlanResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Security BearerAuth
// @Router /budgets [put]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	plan, err := h.budgetService.UpsertBudget(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetPlanResponse(plan))
}

// getBudget godoc
// @Summary Get the budget plan for a month
// @Tags budgets
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.BudgetPlanResponse
// @Failure 404 {object} ErrorResponse "No plan for that month"
// @Security BearerAuth
// @Router /budgets/{year}/{month} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
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

	plan, err := h.budgetService.GetBudget(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetPlanResponse(plan))
}

// deleteBudget godoc
// @Summary Delete the budget plan for a month
// @Tags budgets
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "No plan for that month"
// @Security BearerAuth
// @Router /budgets/{year}/{month} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
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

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, year, month); err != nil {
		respondServiceError(c, logger, err, "Failed to delete budget")
		return
	}

	c.Status(http.StatusNoContent)
}
