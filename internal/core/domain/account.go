package domain

// AccountType classifies an account by how the user holds the money.
type AccountType string

const (
	AccountChecking AccountType = "CHECKING"
	AccountSavings  AccountType = "SAVINGS"
	AccountCash     AccountType = "CASH"
	AccountOther    AccountType = "OTHER"
)

// Account represents a financial account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	UserID       string      `json:"userID"`    // FK -> users.user_id (NON-NULL)
	Name         string      `json:"name"`      // User-defined name
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"` // ISO 4217 code, display only
	IsActive     bool        `json:"isActive"`     // Soft delete flag
	AuditFields
}
