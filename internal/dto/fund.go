package dto

import (
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFundRequest defines the data needed to create a new savings fund.
type CreateFundRequest struct {
	Name         string           `json:"name" binding:"required"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	IsEmergency  bool             `json:"isEmergency"`
}

// UpdateFundRequest defines the data allowed for updating a savings fund.
type UpdateFundRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	IsEmergency  *bool            `json:"isEmergency"`
}

// FundResponse defines the data returned for a savings fund.
type FundResponse struct {
	FundID        string           `json:"fundID"`
	Name          string           `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	IsEmergency   bool             `json:"isEmergency"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToFundResponse converts a domain.SavingsFund to FundResponse DTO
func ToFundResponse(fund *domain.SavingsFund) FundResponse {
	return FundResponse{
		FundID:        fund.FundID,
		Name:          fund.Name,
		TargetAmount:  fund.TargetAmount,
		IsEmergency:   fund.IsEmergency,
		IsActive:      fund.IsActive,
		CreatedAt:     fund.CreatedAt,
		LastUpdatedAt: fund.LastUpdatedAt,
	}
}

// ToListFundResponse converts a slice of domain.SavingsFund to response DTOs
func ToListFundResponse(funds []domain.SavingsFund) []FundResponse {
	res := make([]FundResponse, len(funds))
	for i, fund := range funds {
		res[i] = ToFundResponse(&fund)
	}
	return res
}
