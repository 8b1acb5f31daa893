package dto

import (
	"customer-insights/internal/models"
)

// QueryTransactionsRequest is the body of a transaction batch query
type QueryTransactionsRequest struct {
	PurchaseDate  FlexibleString `json:"purchase_date" validate:"omitempty,year_month"`
	CustomerID    FlexibleString `json:"customer_id"`
	Limit         FlexibleString `json:"limit"`
	SelectedBatch FlexibleString `json:"selected_batch"`
}

// ToQuery converts the request into a transaction query, applying batching defaults
func (r QueryTransactionsRequest) ToQuery() models.TransactionQuery {
	return models.TransactionQuery{
		PurchaseMonth: r.PurchaseDate.String(),
		CustomerID:    r.CustomerID.String(),
		Limit:         r.Limit.IntOrDefault(models.DefaultBatchLimit),
		SelectedBatch: r.SelectedBatch.IntOrDefault(models.DefaultSelectedBatch),
	}
}

// TransactionBatchResponse represents one batch of transactions
type TransactionBatchResponse struct {
	Data             []models.TransactionRecord `json:"data"`
	TotalData        int                        `json:"total_data"`
	TotalBatch       int                        `json:"total_batch"`
	TotalDataInBatch int                        `json:"total_data_in_batch"`
	CurrentBatch     int                        `json:"current_batch"`
}

// NewTransactionBatchResponse converts a batch result into its response form
func NewTransactionBatchResponse(result *models.BatchResult) TransactionBatchResponse {
	data := result.Data
	if data == nil {
		data = []models.TransactionRecord{}
	}
	return TransactionBatchResponse{
		Data:             data,
		TotalData:        result.TotalData,
		TotalBatch:       result.TotalBatch,
		TotalDataInBatch: result.TotalDataInBatch,
		CurrentBatch:     result.CurrentBatch,
	}
}
