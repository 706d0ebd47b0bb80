package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// TransactionRequest is the body of POST /api/transactions
type TransactionRequest struct {
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

// TransactionResponse is one ledger row
type TransactionResponse struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

// NewTransactionResponse maps a ledger entity
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Type:      string(t.Kind),
		Amount:    Amount(t.Amount),
		Category:  t.Category,
		Date:      entity.FormatDate(t.Date),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.Description != "" {
		description := t.Description
		resp.Description = &description
	}
	return resp
}

// NewTransactionList maps a slice, never returning nil
func NewTransactionList(txns []*entity.Transaction) []TransactionResponse {
	list := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		list = append(list, NewTransactionResponse(t))
	}
	return list
}
