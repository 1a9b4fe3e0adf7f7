package repositories

import (
	"context"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// AnalyticsRepository defines the read-only fetch capability the aggregators
// consume: transaction rows with their category classification joined in.
// Connectivity and query errors propagate unchanged; the aggregators never
// swallow them.
type AnalyticsRepository interface {
	// FindTransactionFacts retrieves all facts for a user within a date
	// window, inclusive on both ends. A non-empty categoryIDs slice restricts
	// the result to those categories.
	FindTransactionFacts(ctx context.Context, userID string, from, to time.Time, categoryIDs []string) ([]domain.TransactionFact, error)

	// FindAllTransactionFacts retrieves every fact for a user.
	FindAllTransactionFacts(ctx context.Context, userID string) ([]domain.TransactionFact, error)
}
