package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFundRepository struct {
	BaseRepository
}

// newPgxFundRepository creates a new repository for savings fund data.
func newPgxFundRepository(pool *pgxpool.Pool) portsrepo.FundRepositoryFacade {
	return &PgxFundRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

func toDomainFund(m models.SavingsFund) domain.SavingsFund {
	return domain.SavingsFund{
		FundID:       m.FundID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		IsEmergency:  m.IsEmergency,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveFund inserts a new savings fund.
func (r *PgxFundRepository) SaveFund(ctx context.Context, fund domain.SavingsFund) error {
	query := `
		INSERT INTO savings_funds (fund_id, user_id, name, target_amount, is_emergency, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		fund.FundID,
		fund.UserID,
		fund.Name,
		fund.TargetAmount,
		fund.IsEmergency,
		fund.IsActive,
		fund.CreatedAt,
		fund.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: fund with ID %s already exists", apperrors.ErrDuplicate, fund.FundID)
		}
		return fmt.Errorf("failed to save fund %s: %w", fund.FundID, err)
	}
	return nil
}

// FindFundByID retrieves a single savings fund by its ID.
func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.SavingsFund, error) {
	query := `
		SELECT fund_id, user_id, name, target_amount, is_emergency, is_active, created_at, last_updated_at
		FROM savings_funds
		WHERE fund_id = $1;
	`
	var m models.SavingsFund
	err := r.Pool.QueryRow(ctx, query, fundID).Scan(
		&m.FundID,
		&m.UserID,
		&m.Name,
		&m.TargetAmount,
		&m.IsEmergency,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fund %s: %w", fundID, err)
	}

	fund := toDomainFund(m)
	return &fund, nil
}

// ListFunds retrieves all active savings funds for a user, oldest first.
func (r *PgxFundRepository) ListFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error) {
	query := `
		SELECT fund_id, user_id, name, target_amount, is_emergency, is_active, created_at, last_updated_at
		FROM savings_funds
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	defer rows.Close()

	funds := make([]domain.SavingsFund, 0)
	for rows.Next() {
		var m models.SavingsFund
		if err := rows.Scan(
			&m.FundID,
			&m.UserID,
			&m.Name,
			&m.TargetAmount,
			&m.IsEmergency,
			&m.IsActive,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fund row: %w", err)
		}
		funds = append(funds, toDomainFund(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund rows: %w", err)
	}
	return funds, nil
}

// UpdateFund updates the mutable fields of a savings fund.
func (r *PgxFundRepository) UpdateFund(ctx context.Context, fund domain.SavingsFund) error {
	query := `
		UPDATE savings_funds
		SET name = $2, target_amount = $3, is_emergency = $4, last_updated_at = $5
		WHERE fund_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		fund.FundID,
		fund.Name,
		fund.TargetAmount,
		fund.IsEmergency,
		fund.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update fund %s: %w", fund.FundID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateFund soft-deletes a savings fund.
func (r *PgxFundRepository) DeactivateFund(ctx context.Context, fundID string, now time.Time) error {
	query := `
		UPDATE savings_funds
		SET is_active = FALSE, last_updated_at = $2
		WHERE fund_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, fundID, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate fund %s: %w", fundID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
