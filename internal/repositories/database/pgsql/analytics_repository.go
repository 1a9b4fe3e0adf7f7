package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAnalyticsRepository serves the flattened transaction facts the
// aggregators consume. The category classification is joined in at query
// time so the aggregation code never touches the store.
type PgxAnalyticsRepository struct {
	BaseRepository
}

// newPgxAnalyticsRepository creates a new repository for analytics reads.
func newPgxAnalyticsRepository(pool *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &PgxAnalyticsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

const factSelect = `
	SELECT t.amount, t.txn_date, t.account_id, t.category_id,
	       COALESCE(c.name, ''), COALESCE(c.category_type, ''), c.spending_type,
	       t.fund_id
	FROM transactions t
	LEFT JOIN categories c ON c.category_id = t.category_id
`

// FindTransactionFacts retrieves facts within a date window, inclusive on
// both ends, optionally restricted to a category set.
func (r *PgxAnalyticsRepository) FindTransactionFacts(ctx context.Context, userID string, from, to time.Time, categoryIDs []string) ([]domain.TransactionFact, error) {
	conditions := []string{"t.user_id = $1", "t.txn_date >= $2", "t.txn_date <= $3"}
	args := []interface{}{userID, from, to}
	if len(categoryIDs) > 0 {
		args = append(args, categoryIDs)
		conditions = append(conditions, fmt.Sprintf("t.category_id = ANY($%d)", len(args)))
	}

	query := factSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY t.txn_date ASC;"
	return r.queryFacts(ctx, query, args...)
}

// FindAllTransactionFacts retrieves every fact for a user.
func (r *PgxAnalyticsRepository) FindAllTransactionFacts(ctx context.Context, userID string) ([]domain.TransactionFact, error) {
	query := factSelect + " WHERE t.user_id = $1 ORDER BY t.txn_date ASC;"
	return r.queryFacts(ctx, query, userID)
}

func (r *PgxAnalyticsRepository) queryFacts(ctx context.Context, query string, args ...interface{}) ([]domain.TransactionFact, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction facts: %w", err)
	}
	defer rows.Close()

	facts := make([]domain.TransactionFact, 0)
	for rows.Next() {
		var f domain.TransactionFact
		var categoryType string
		var spendingType sql.NullString
		if err := rows.Scan(
			&f.Amount,
			&f.Date,
			&f.AccountID,
			&f.CategoryID,
			&f.CategoryName,
			&categoryType,
			&spendingType,
			&f.FundID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction fact: %w", err)
		}
		f.CategoryType = domain.CategoryType(categoryType)
		if spendingType.Valid {
			f.SpendingType = domain.SpendingType(spendingType.String)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction facts: %w", err)
	}
	return facts, nil
}
