package domain

// CategoryType is the flow direction of a category. Income transactions are
// stored positive; expense, saving and investment transactions are stored
// negative (money leaving the checking flow).
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeSaving     CategoryType = "saving"
	CategoryTypeInvestment CategoryType = "investment"
)

// SpendingType subclassifies expense categories. Core expenses drive
// emergency-fund sizing.
type SpendingType string

const (
	SpendingCore   SpendingType = "core"
	SpendingFun    SpendingType = "fun"
	SpendingFuture SpendingType = "future"
)

// Category represents a transaction category within the core domain.
type Category struct {
	CategoryID   string       `json:"categoryID"` // Primary Key (UUID)
	UserID       string       `json:"userID"`     // FK -> users.user_id (NON-NULL)
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	SpendingType SpendingType `json:"spendingType"` // Empty for non-expense categories
	IsActive     bool         `json:"isActive"`
	AuditFields
}
