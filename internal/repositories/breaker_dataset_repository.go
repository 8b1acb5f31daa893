package repositories

import (
	"context"
	"errors"
	"fmt"

	"customer-insights/internal/models"
)

// BreakerDatasetRepository fails fast while its source keeps failing to load
type BreakerDatasetRepository struct {
	source  DatasetRepositoryInterface
	breaker *CircuitBreaker
}

// NewBreakerDatasetRepository guards source with breaker
func NewBreakerDatasetRepository(source DatasetRepositoryInterface, breaker *CircuitBreaker) *BreakerDatasetRepository {
	return &BreakerDatasetRepository{
		source:  source,
		breaker: breaker,
	}
}

func (r *BreakerDatasetRepository) LoadTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	if r.breaker.IsOpen() {
		return nil, fmt.Errorf("transactions: %w", ErrCircuitBreakerOpen)
	}

	records, err := r.source.LoadTransactions(ctx)
	r.record(err)
	return records, err
}

func (r *BreakerDatasetRepository) LoadProbabilities(ctx context.Context) ([]models.CustomerProbabilityRecord, error) {
	if r.breaker.IsOpen() {
		return nil, fmt.Errorf("customer probabilities: %w", ErrCircuitBreakerOpen)
	}

	records, err := r.source.LoadProbabilities(ctx)
	r.record(err)
	return records, err
}

// record counts source failures; a cancelled request says nothing about the source
func (r *BreakerDatasetRepository) record(err error) {
	switch {
	case err == nil:
		r.breaker.RecordSuccess()
	case errors.Is(err, context.Canceled):
	default:
		r.breaker.RecordFailure()
	}
}
