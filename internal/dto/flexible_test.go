package dto

import (
	"testing"

	"customer-insights/internal/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexibleString
		wantErr bool
	}{
		{"string", `"C1"`, "C1", false},
		{"number", `42`, "42", false},
		{"float", `2.5`, "2.5", false},
		{"boolean", `true`, "true", false},
		{"null", `null`, "", false},
		{"escaped string", `"a\"b"`, `a"b`, false},
		{"object", `{"a":1}`, "", true},
		{"array", `[1]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Value FlexibleString `json:"value"`
			}
			err := json.Unmarshal([]byte(`{"value":`+tt.input+`}`), &body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, body.Value)
		})
	}
}

func TestFlexibleString_IntOrDefault(t *testing.T) {
	tests := []struct {
		value FlexibleString
		want  int
	}{
		{"", 5},
		{"10", 10},
		{" 7 ", 7},
		{"12abc", 12},
		{"5.7", 5},
		{"-3", -3},
		{"+4", 4},
		{"0", 0},
		{"abc", 5},
		{"-", 5},
		{"true", 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.IntOrDefault(5))
		})
	}
}

func TestQueryTransactionsRequest_ToQuery(t *testing.T) {
	var req QueryTransactionsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"purchase_date":"2024-02","customer_id":101,"limit":"3","selected_batch":2}`), &req))

	query := req.ToQuery()

	assert.Equal(t, models.TransactionQuery{
		PurchaseMonth: "2024-02",
		CustomerID:    "101",
		Limit:         3,
		SelectedBatch: 2,
	}, query)

	assert.Equal(t, models.NewTransactionQuery(), QueryTransactionsRequest{}.ToQuery())
}

func TestNewTransactionBatchResponse_NeverNullData(t *testing.T) {
	response := NewTransactionBatchResponse(&models.BatchResult{CurrentBatch: 1})

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":[]`)
}

func TestNewPredictProbaResponse(t *testing.T) {
	response := NewPredictProbaResponse(&models.CategoryRanking{
		CustomerID:    "C1",
		TopCategories: []string{"Automotive", "Beauty"},
		Probabilities: []float64{0.9, 0.1},
	})

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer_id":"C1","proba":[0.9,0.1],"top_cat":["Automotive","Beauty"]}`, string(data))
}
