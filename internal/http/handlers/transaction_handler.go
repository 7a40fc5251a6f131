package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	txUseCase domain.TransactionUseCase
	logger    *logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txUseCase domain.TransactionUseCase, logger *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		txUseCase: txUseCase,
		logger:    logger,
	}
}

// CreateTransactionRequest represents the transaction request body
type CreateTransactionRequest struct {
	Amount          *float64 `json:"amount" binding:"required" example:"250.50"`
	Category        string   `json:"category" binding:"required,max=64" example:"groceries"`
	Description     *string  `json:"description" example:"Weekly vegetables"`
	TransactionType string   `json:"transaction_type" binding:"required,oneof=income expense" example:"expense"`
}

// Create handles recording a transaction
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} domain.Transaction
// @Failure 404 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/transactions/{user_id} [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	tx, err := h.txUseCase.Create(c.Request.Context(), userID, domain.CreateTransactionInput{
		Amount:          *req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		TransactionType: domain.TransactionType(req.TransactionType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// List handles listing a user's transactions
// @Summary List transactions
// @Description Newest first
// @Tags transactions
// @Produce json
// @Param user_id path int true "User ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} domain.Transaction
// @Router /api/transactions/{user_id} [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	transactions, err := h.txUseCase.List(c.Request.Context(), userID, page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(transactions))
}

// Summary handles the income/expense summary
// @Summary Summarize transactions
// @Tags transactions
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.TransactionSummary
// @Router /api/transactions/{user_id}/summary [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	summary, err := h.txUseCase.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Delete handles deleting a transaction
// @Summary Delete a transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.txUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
