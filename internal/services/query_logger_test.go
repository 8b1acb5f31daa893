package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"customer-insights/internal/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedQueryLogger() (QueryLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewQueryLogger(slog.New(handler)), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestTraceIDContext(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "trace-1")

	assert.Equal(t, "trace-1", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestQueryLogger_TransactionQueryCompleted(t *testing.T) {
	logger, buf := newBufferedQueryLogger()
	ctx := ContextWithTraceID(context.Background(), "trace-2")

	logger.LogTransactionQueryCompleted(ctx,
		models.TransactionQuery{PurchaseMonth: "2024-02", CustomerID: "CUST-123456", Limit: 5, SelectedBatch: 2},
		&models.BatchResult{TotalData: 12, TotalBatch: 3},
		15*time.Millisecond,
	)

	entry := lastEntry(t, buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "transaction_query_completed", entry["event_type"])
	assert.Equal(t, "****3456", entry["customer_id"])
	assert.Equal(t, "trace-2", entry["trace_id"])
	assert.Equal(t, float64(3), entry["total_batch"])
	assert.NotContains(t, buf.String(), "CUST-123456")
}

func TestQueryLogger_PredictionCompleted(t *testing.T) {
	logger, buf := newBufferedQueryLogger()

	logger.LogPredictionCompleted(context.Background(), &models.CategoryRanking{
		CustomerID:    "C1",
		TopCategories: []string{"Automotive"},
		Probabilities: []float64{0.9},
	}, time.Millisecond)

	entry := lastEntry(t, buf)
	assert.Equal(t, "****", entry["customer_id"])
	assert.Equal(t, "Automotive", entry["top_category"])
	assert.Equal(t, 0.9, entry["top_probability"])
}

func TestQueryLogger_QueryFailedLevels(t *testing.T) {
	tests := []struct {
		reason string
		level  string
	}{
		{"batch_not_found", "INFO"},
		{"customer_not_found", "INFO"},
		{"dataset_unavailable", "WARN"},
		{"schema_mismatch", "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			logger, buf := newBufferedQueryLogger()

			logger.LogQueryFailed(context.Background(), queryTransactions, tt.reason, errors.New("boom"))

			entry := lastEntry(t, buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.reason, entry["reason"])
			assert.Equal(t, "boom", entry["error"])
		})
	}
}

func TestMaskCustomerID(t *testing.T) {
	assert.Equal(t, "", maskCustomerID(""))
	assert.Equal(t, "****", maskCustomerID("C1"))
	assert.Equal(t, "****", maskCustomerID("C123"))
	assert.Equal(t, "****2345", maskCustomerID("C12345"))
}
