package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/models"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTxnPageSize = 50

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		FundID:        m.FundID,
		Amount:        m.Amount,
		Date:          m.Date,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveTransaction inserts a new transaction. The amount is stored exactly
// as given; sign conventions are enforced upstream.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, account_id, category_id, fund_id, amount, txn_date, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.AccountID,
		txn.CategoryID,
		txn.FundID,
		txn.Amount,
		txn.Date,
		txn.Notes,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
			case "23503":
				return fmt.Errorf("%w: referenced account, category or fund does not exist", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, account_id, category_id, fund_id, amount, txn_date, notes, created_at, last_updated_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.FundID,
		&m.Amount,
		&m.Date,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves a filtered page of transactions, newest first.
// The cursor is (txn_date, created_at) keyset pagination; one extra row is
// fetched to decide whether a next page exists.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filters portsrepo.TransactionListFilters) ([]domain.Transaction, string, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultTxnPageSize
	}

	var conditions []string
	var args []interface{}
	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conditions = append(conditions, fmt.Sprintf("user_id = %s", addArg(userID)))
	if !filters.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("txn_date >= %s", addArg(filters.From)))
	}
	if !filters.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("txn_date <= %s", addArg(filters.To)))
	}
	if filters.AccountID != "" {
		conditions = append(conditions, fmt.Sprintf("account_id = %s", addArg(filters.AccountID)))
	}
	if filters.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("category_id = %s", addArg(filters.CategoryID)))
	}
	if filters.NextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(filters.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, fmt.Sprintf("(txn_date, created_at) < (%s, %s)", addArg(cursorDate), addArg(cursorCreatedAt)))
	}

	query := fmt.Sprintf(`
		SELECT transaction_id, user_id, account_id, category_id, fund_id, amount, txn_date, notes, created_at, last_updated_at
		FROM transactions
		WHERE %s
		ORDER BY txn_date DESC, created_at DESC
		LIMIT %s;
	`, strings.Join(conditions, " AND "), addArg(limit+1))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.AccountID,
			&m.CategoryID,
			&m.FundID,
			&m.Amount,
			&m.Date,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating transaction rows: %w", err)
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return txns, nextToken, nil
}

// UpdateTransaction updates the mutable fields of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $2, category_id = $3, fund_id = $4, amount = $5, txn_date = $6, notes = $7, last_updated_at = $8
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.AccountID,
		txn.CategoryID,
		txn.FundID,
		txn.Amount,
		txn.Date,
		txn.Notes,
		txn.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: referenced account, category or fund does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction permanently.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
