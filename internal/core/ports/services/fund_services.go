package services

import (
	"context"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
)

// FundReaderSvc defines read operations for savings fund data
type FundReaderSvc interface {
	GetFundByID(ctx context.Context, fundID string, userID string) (*domain.SavingsFund, error)
	ListFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error)
}

// FundWriterSvc defines write operations for savings fund data
type FundWriterSvc interface {
	CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.SavingsFund, error)
	UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.SavingsFund, error)
	DeactivateFund(ctx context.Context, fundID string, userID string) error
}

// FundSvcFacade combines all savings-fund-related service interfaces
type FundSvcFacade interface {
	FundReaderSvc
	FundWriterSvc
}
