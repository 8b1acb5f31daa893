package dto

import "customer-insights/internal/models"

// PredictProbaRequest is the body of a category probability query
type PredictProbaRequest struct {
	CustomerID FlexibleString `json:"customer_id" validate:"required"`
}

// PredictProbaResponse lists every category for a customer, most probable first
type PredictProbaResponse struct {
	CustomerID string    `json:"customer_id"`
	Proba      []float64 `json:"proba"`
	TopCat     []string  `json:"top_cat"`
}

// NewPredictProbaResponse converts a category ranking into its response form
func NewPredictProbaResponse(ranking *models.CategoryRanking) PredictProbaResponse {
	return PredictProbaResponse{
		CustomerID: ranking.CustomerID,
		Proba:      ranking.Probabilities,
		TopCat:     ranking.TopCategories,
	}
}
