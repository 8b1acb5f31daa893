package models

// CategoryRanking lists every category for a customer, most probable first.
// TopCategories and Probabilities are parallel slices.
type CategoryRanking struct {
	CustomerID    string    `json:"customer_id"`
	Probabilities []float64 `json:"proba"`
	TopCategories []string  `json:"top_cat"`
}

// Top returns the most probable category and its probability
func (r *CategoryRanking) Top() (string, float64, bool) {
	if r == nil || len(r.TopCategories) == 0 || len(r.Probabilities) == 0 {
		return "", 0, false
	}
	return r.TopCategories[0], r.Probabilities[0], true
}
