package handlers

import (
	"net/http"

	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundHandler handles HTTP requests related to savings funds.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fs portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fs}
}

// registerFundRoutes registers routes related to savings funds.
func registerFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	funds := rg.Group("/funds")
	{
		funds.POST("", h.createFund)
		funds.GET("", h.listFunds)
		funds.GET("/:id", h.getFund)
		funds.PUT("/:id", h.updateFund)
		funds.DELETE("/:id", h.deleteFund)
	}
}

// createFund godoc
// @Summary Create a new savings fund
// @Description Creates a named savings goal; target amount is optional
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   fund body dto.CreateFundRequest true "Fund details"
// @Success 201 {object} dto.FundResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Security BearerAuth
// @Router /funds [post]
func (h *fundHandler) createFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fund, err := h.fundService.CreateFund(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fund")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFundResponse(fund))
}

// listFunds godoc
// @Summary List savings funds
// @Tags funds
// @Produce  json
// @Success 200 {array} dto.FundResponse
// @Security BearerAuth
// @Router /funds [get]
func (h *fundHandler) listFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	funds, err := h.fundService.ListFunds(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list funds")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFundResponse(funds))
}

// getFund godoc
// @Summary Get a savings fund by ID
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 200 {object} dto.FundResponse
// @Failure 404 {object} ErrorResponse "Fund not found"
// @Security BearerAuth
// @Router /funds/{id} [get]
func (h *fundHandler) getFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fund, err := h.fundService.GetFundByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get fund")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// updateFund godoc
// @Summary Update a savings fund
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   id path string true "Fund ID"
// @Param   fund body dto.UpdateFundRequest true "Fields to update"
// @Success 200 {object} dto.FundResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Fund not found"
// @Security BearerAuth
// @Router /funds/{id} [put]
func (h *fundHandler) updateFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fund, err := h.fundService.UpdateFund(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update fund")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// deleteFund godoc
// @Summary Deactivate a savings fund
// @Description Marks a fund as inactive; contributions already made keep their reference
// @Tags funds
// @Param   id path string true "Fund ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Fund not found"
// @Security BearerAuth
// @Router /funds/{id} [delete]
func (h *fundHandler) deleteFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.fundService.DeactivateFund(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate fund")
		return
	}

	c.Status(http.StatusNoContent)
}
