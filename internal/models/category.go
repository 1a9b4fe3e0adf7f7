package models

import "database/sql"

// Category is the database representation of a transaction category.
// SpendingType is nullable; only expense categories carry one.
type Category struct {
	CategoryID   string         `db:"category_id"`
	UserID       string         `db:"user_id"`
	Name         string         `db:"name"`
	CategoryType string         `db:"category_type"`
	SpendingType sql.NullString `db:"spending_type"`
	IsActive     bool           `db:"is_active"`
	AuditFields
}
