package domain

import "github.com/shopspring/decimal"

// SavingsFund represents a named savings goal. Contributions are ordinary
// transactions with a fund reference; the fund itself carries no balance.
type SavingsFund struct {
	FundID       string           `json:"fundID"` // Primary Key (UUID)
	UserID       string           `json:"userID"` // FK -> users.user_id (NON-NULL)
	Name         string           `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"` // Nullable goal amount
	IsEmergency  bool             `json:"isEmergency"`  // Counts towards emergency-fund coverage
	IsActive     bool             `json:"isActive"`
	AuditFields
}
