package services

import (
	"context"
	"log/slog"
	"time"

	"customer-insights/internal/models"
)

type traceIDKey struct{}

// ContextWithTraceID returns a copy of ctx carrying the request trace ID
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by ContextWithTraceID
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// QueryLogger provides structured logging for dataset queries
type QueryLogger struct {
	logger *slog.Logger
}

// NewQueryLogger creates a new query logger
func NewQueryLogger(logger *slog.Logger) QueryLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{
		logger: logger,
	}
}

// LogTransactionQueryCompleted logs a served transaction batch
func (ql *QueryLogger) LogTransactionQueryCompleted(ctx context.Context, query models.TransactionQuery, result *models.BatchResult, duration time.Duration) {
	ql.logger.DebugContext(ctx, "transaction query completed",
		slog.String("event_type", "transaction_query_completed"),
		slog.String("purchase_month", query.PurchaseMonth),
		slog.String("customer_id", maskCustomerID(query.CustomerID)),
		slog.Int("limit", query.Limit),
		slog.Int("selected_batch", query.SelectedBatch),
		slog.Int("total_data", result.TotalData),
		slog.Int("total_batch", result.TotalBatch),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogPredictionCompleted logs a served category ranking
func (ql *QueryLogger) LogPredictionCompleted(ctx context.Context, ranking *models.CategoryRanking, duration time.Duration) {
	top, proba, _ := ranking.Top()
	ql.logger.DebugContext(ctx, "prediction query completed",
		slog.String("event_type", "prediction_query_completed"),
		slog.String("customer_id", maskCustomerID(ranking.CustomerID)),
		slog.String("top_category", top),
		slog.Float64("top_probability", proba),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogQueryFailed logs a rejected or failed query. Client mistakes log at INFO,
// dataset problems at WARN.
func (ql *QueryLogger) LogQueryFailed(ctx context.Context, query, reason string, err error) {
	level := slog.LevelInfo
	switch reason {
	case "dataset_unavailable", "decode_error", "schema_mismatch":
		level = slog.LevelWarn
	}

	ql.logger.Log(ctx, level, "query failed",
		slog.String("event_type", "query_failed"),
		slog.String("query", query),
		slog.String("reason", reason),
		slog.String("error", err.Error()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// maskCustomerID keeps the last four characters of a customer id
func maskCustomerID(customerID string) string {
	if customerID == "" {
		return ""
	}
	if len(customerID) <= 4 {
		return "****"
	}
	return "****" + customerID[len(customerID)-4:]
}
