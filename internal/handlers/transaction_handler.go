package handlers

import (
	"net/http"

	"customer-insights/internal/dto"
	"customer-insights/internal/errors"
	"customer-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction batch queries
type TransactionHandler struct {
	transactionService services.TransactionQueryServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionQueryServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// QueryTransactions returns one batch of transactions filtered by month and customer
// @Summary Query transactions
// @Description Filter transactions by purchase month and customer, newest first, split into batches
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.QueryTransactionsRequest true "Filters and batching"
// @Success 200 {object} dto.TransactionBatchResponse "Selected batch"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid purchase_date or limit"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Selected batch not found"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - Dataset unavailable"
// @Router /trx [post]
func (h *TransactionHandler) QueryTransactions(c echo.Context) error {
	var req dto.QueryTransactionsRequest
	if err := bindRequest(c, &req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid purchase_date format"))
	}

	result, err := h.transactionService.Query(c.Request().Context(), req.ToQuery())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionBatchResponse(result))
}
