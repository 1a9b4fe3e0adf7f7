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

const dateLayout = "2006-01-02"

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewTransactionService creates a new transaction service. The account
// reader verifies the target account belongs to the user.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, accountRepo: accountRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) findOwnedTransaction(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return txn, nil
}

func (s *transactionService) checkAccountOwnership(ctx context.Context, accountID, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if account.UserID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}

// CreateTransaction records a new transaction. The amount is written through
// unchanged; the ledger sign convention is the caller's responsibility.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount cannot be zero", apperrors.ErrValidation)
	}
	if err := s.checkAccountOwnership(ctx, req.AccountID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		FundID:        req.FundID,
		Amount:        req.Amount,
		Date:          date,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

// GetTransactionByID retrieves a specific transaction owned by the user.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	return s.findOwnedTransaction(ctx, transactionID, userID)
}

// ListTransactions retrieves a filtered, paginated transaction listing.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	filters := portsrepo.TransactionListFilters{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	}

	if params.From != "" {
		from, err := time.Parse(dateLayout, params.From)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, params.From)
		}
		filters.From = from
	}
	if params.To != "" {
		to, err := time.Parse(dateLayout, params.To)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, params.To)
		}
		filters.To = to
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, userID, filters)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

// UpdateTransaction updates an existing transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.findOwnedTransaction(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		if err := s.checkAccountOwnership(ctx, *req.AccountID, userID); err != nil {
			return nil, err
		}
		txn.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		txn.CategoryID = req.CategoryID
	}
	if req.FundID != nil {
		txn.FundID = req.FundID
	}
	if req.Amount != nil {
		if req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount cannot be zero", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, *req.Date)
		}
		txn.Date = date
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.LastUpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction permanently.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if _, err := s.findOwnedTransaction(ctx, transactionID, userID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
