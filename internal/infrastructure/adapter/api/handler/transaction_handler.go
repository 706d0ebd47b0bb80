package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles ledger HTTP requests
type TransactionHandler struct {
	ledger usecaseport.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledger usecaseport.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, logger: logger}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txns, err := h.ledger.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionList(txns))
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	id, err := h.ledger.Record(c.Request.Context(), userID, usecaseport.RecordTransactionRequest{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, h.logger, "record transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Transaction added successfully",
	})
}
