package dto

import (
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount carries the ledger sign: income positive, outflows negative.
type CreateTransactionRequest struct {
	AccountID  string          `json:"accountID" binding:"required"`
	CategoryID *string         `json:"categoryID"`
	FundID     *string         `json:"fundID"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       string          `json:"date" binding:"required"` // YYYY-MM-DD
	Notes      string          `json:"notes"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	AccountID  *string          `json:"accountID"`
	CategoryID *string          `json:"categoryID"`
	FundID     *string          `json:"fundID"`
	Amount     *decimal.Decimal `json:"amount"`
	Date       *string          `json:"date"` // YYYY-MM-DD
	Notes      *string          `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From       string `form:"from"` // YYYY-MM-DD, inclusive
	To         string `form:"to"`   // YYYY-MM-DD, inclusive
	AccountID  string `form:"accountID"`
	CategoryID string `form:"categoryID"`
	Limit      int    `form:"limit,default=50"`
	NextToken  string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	CategoryID    *string         `json:"categoryID"`
	FundID        *string         `json:"fundID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a transaction page with its pagination token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		FundID:        txn.FundID,
		Amount:        txn.Amount,
		Date:          txn.Date.Format("2006-01-02"),
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a transaction page to the response DTO
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i, txn := range txns {
		res.Transactions[i] = ToTransactionResponse(&txn)
	}
	return res
}
