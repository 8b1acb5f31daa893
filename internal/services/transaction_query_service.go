package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"customer-insights/internal/models"
	"customer-insights/internal/repositories"
	"customer-insights/internal/validation"
)

const queryTransactions = "transactions"

type transactionQueryService struct {
	repo    repositories.TransactionDatasetRepositoryInterface
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface
}

// NewTransactionQueryService creates a new TransactionQueryServiceInterface instance
func NewTransactionQueryService(
	repo repositories.TransactionDatasetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) TransactionQueryServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if logger == nil {
		logger = NewQueryLogger(nil)
	}
	return &transactionQueryService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Query validates the request, loads the transaction dataset and returns the selected batch
func (s *transactionQueryService) Query(ctx context.Context, query models.TransactionQuery) (*models.BatchResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricQueryDuration+"."+queryTransactions, time.Since(start))
	}()

	if err := ValidateTransactionQuery(query); err != nil {
		s.recordFailure(ctx, "invalid_format", err)
		return nil, err
	}

	records, err := s.repo.LoadTransactions(ctx)
	recordDatasetLoad(s.metrics, queryTransactions, len(records), err)
	if err != nil {
		err = fmt.Errorf("%w: failed to load transactions: %v", ErrDatasetUnavailable, err)
		s.recordFailure(ctx, "dataset_unavailable", err)
		return nil, err
	}

	result, err := QueryTransactions(records, query)
	if err != nil {
		s.recordFailure(ctx, "batch_not_found", err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricQueryCompleted, map[string]string{"query": queryTransactions})
	s.metrics.RecordGauge(MetricBatchSize, float64(result.TotalDataInBatch), nil)
	s.logger.LogTransactionQueryCompleted(ctx, query, result, time.Since(start))

	return result, nil
}

func (s *transactionQueryService) recordFailure(ctx context.Context, reason string, err error) {
	s.metrics.IncrementCounter(MetricQueryFailed, map[string]string{
		"query":  queryTransactions,
		"reason": reason,
	})
	s.logger.LogQueryFailed(ctx, queryTransactions, reason, err)
}

// ValidateTransactionQuery checks the month filter format and the batch size
func ValidateTransactionQuery(query models.TransactionQuery) error {
	if query.PurchaseMonth != "" && !validation.IsYearMonth(query.PurchaseMonth) {
		return fmt.Errorf("%w: purchase_date must match YYYY-MM", ErrInvalidFormat)
	}
	if query.Limit <= 0 {
		return fmt.Errorf("%w: limit must be a positive integer, got %d", ErrInvalidFormat, query.Limit)
	}
	return nil
}

// QueryTransactions filters, orders and batches records, then returns the selected batch.
// records is never modified.
func QueryTransactions(records []models.TransactionRecord, query models.TransactionQuery) (*models.BatchResult, error) {
	if err := ValidateTransactionQuery(query); err != nil {
		return nil, err
	}

	ordered := SortByPurchaseDateDesc(FilterTransactions(records, query))
	batches := PartitionBatches(ordered, query.Limit)

	index := query.SelectedBatch - 1
	if index < 0 || index >= len(batches) {
		return nil, fmt.Errorf("%w: batch %d requested, %d available", ErrBatchNotFound, query.SelectedBatch, len(batches))
	}

	batch := batches[index]
	return &models.BatchResult{
		Data:             batch,
		TotalData:        len(ordered),
		TotalBatch:       len(batches),
		TotalDataInBatch: len(batch),
		CurrentBatch:     query.SelectedBatch,
	}, nil
}

// FilterTransactions returns a new slice holding the records that match both optional filters
func FilterTransactions(records []models.TransactionRecord, query models.TransactionQuery) []models.TransactionRecord {
	filtered := make([]models.TransactionRecord, 0, len(records))
	for _, record := range records {
		if query.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// SortByPurchaseDateDesc orders records most recent first, in place.
// Records with unparsable dates go last; equal dates keep their input order.
func SortByPurchaseDateDesc(records []models.TransactionRecord) []models.TransactionRecord {
	type sortKey struct {
		at    time.Time
		valid bool
	}

	keyed := make([]struct {
		key    sortKey
		record models.TransactionRecord
	}, len(records))
	for i, record := range records {
		at, ok := record.PurchaseTime()
		keyed[i].key = sortKey{at: at, valid: ok}
		keyed[i].record = record
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		a, b := keyed[i].key, keyed[j].key
		if a.valid != b.valid {
			return a.valid
		}
		return a.at.After(b.at)
	})

	for i := range keyed {
		records[i] = keyed[i].record
	}
	return records
}

// PartitionBatches splits records into consecutive groups of limit elements; the last may be shorter
func PartitionBatches(records []models.TransactionRecord, limit int) [][]models.TransactionRecord {
	if limit <= 0 || len(records) == 0 {
		return nil
	}

	batches := make([][]models.TransactionRecord, 0, (len(records)+limit-1)/limit)
	for start := 0; start < len(records); start += limit {
		end := start + limit
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end:end])
	}
	return batches
}
