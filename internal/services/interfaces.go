package services

import (
	"context"
	"time"

	"customer-insights/internal/models"
)

// TransactionQueryServiceInterface answers filtered, batched transaction queries
type TransactionQueryServiceInterface interface {
	Query(ctx context.Context, query models.TransactionQuery) (*models.BatchResult, error)
}

// ProbabilityQueryServiceInterface ranks a customer's category probabilities
type ProbabilityQueryServiceInterface interface {
	Predict(ctx context.Context, customerID string) (*models.CategoryRanking, error)
}

// MetricsRecorderInterface records query metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// QueryLoggerInterface logs query outcomes
type QueryLoggerInterface interface {
	LogTransactionQueryCompleted(ctx context.Context, query models.TransactionQuery, result *models.BatchResult, duration time.Duration)
	LogPredictionCompleted(ctx context.Context, ranking *models.CategoryRanking, duration time.Duration)
	LogQueryFailed(ctx context.Context, query, reason string, err error)
}
