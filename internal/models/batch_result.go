package models

// BatchResult is one batch of the filtered and ordered transaction sequence
type BatchResult struct {
	Data             []TransactionRecord `json:"data"`
	TotalData        int                 `json:"total_data"`
	TotalBatch       int                 `json:"total_batch"`
	TotalDataInBatch int                 `json:"total_data_in_batch"`
	CurrentBatch     int                 `json:"current_batch"`
}
