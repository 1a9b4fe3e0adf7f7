package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/google/uuid"
)

// fundService implements the FundSvcFacade interface
type fundService struct {
	BaseService
	fundRepo portsrepo.FundRepositoryFacade
}

// NewFundService creates a new savings fund service
func NewFundService(repo portsrepo.FundRepositoryFacade) portssvc.FundSvcFacade {
	return &fundService{fundRepo: repo}
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

func (s *fundService) findOwnedFund(ctx context.Context, fundID, userID string) (*domain.SavingsFund, error) {
	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if fund.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return fund, nil
}

// CreateFund persists a new savings fund for the user.
func (s *fundService) CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.SavingsFund, error) {
	if req.TargetAmount != nil && req.TargetAmount.IsNegative() {
		return nil, fmt.Errorf("%w: target amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	fund := domain.SavingsFund{
		FundID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		IsEmergency:  req.IsEmergency,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.fundRepo.SaveFund(ctx, fund); err != nil {
		s.LogError(ctx, err, "Failed to save fund", slog.String("fund_name", req.Name))
		return nil, fmt.Errorf("failed to create fund: %w", err)
	}

	s.LogInfo(ctx, "Fund created", slog.String("fund_id", fund.FundID))
	return &fund, nil
}

// GetFundByID retrieves a specific savings fund owned by the user.
func (s *fundService) GetFundByID(ctx context.Context, fundID string, userID string) (*domain.SavingsFund, error) {
	return s.findOwnedFund(ctx, fundID, userID)
}

// ListFunds retrieves all savings funds of a user.
func (s *fundService) ListFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error) {
	funds, err := s.fundRepo.ListFunds(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds")
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	if funds == nil {
		funds = []domain.SavingsFund{}
	}
	return funds, nil
}

// UpdateFund updates an existing savings fund's details.
func (s *fundService) UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.SavingsFund, error) {
	fund, err := s.findOwnedFund(ctx, fundID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		fund.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() {
			return nil, fmt.Errorf("%w: target amount cannot be negative", apperrors.ErrValidation)
		}
		fund.TargetAmount = req.TargetAmount
	}
	if req.IsEmergency != nil {
		fund.IsEmergency = *req.IsEmergency
	}
	fund.LastUpdatedAt = time.Now()

	if err := s.fundRepo.UpdateFund(ctx, *fund); err != nil {
		s.LogError(ctx, err, "Failed to update fund", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to update fund: %w", err)
	}
	return fund, nil
}

// DeactivateFund marks a savings fund as inactive.
func (s *fundService) DeactivateFund(ctx context.Context, fundID string, userID string) error {
	if _, err := s.findOwnedFund(ctx, fundID, userID); err != nil {
		return err
	}
	if err := s.fundRepo.DeactivateFund(ctx, fundID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate fund", slog.String("fund_id", fundID))
		return fmt.Errorf("failed to deactivate fund: %w", err)
	}
	s.LogInfo(ctx, "Fund deactivated", slog.String("fund_id", fundID))
	return nil
}
