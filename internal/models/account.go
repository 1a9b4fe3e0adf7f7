package models

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the database representation of a financial account.
type Account struct {
	AccountID    string      `db:"account_id"`
	UserID       string      `db:"user_id"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	CurrencyCode string      `db:"currency_code"`
	IsActive     bool        `db:"is_active"`
	AuditFields
}
