package repositories

import (
	"context"
	"sync"
	"time"

	"customer-insights/internal/models"

	"github.com/patrickmn/go-cache"
)

const (
	transactionsCacheKey  = "dataset:transactions"
	probabilitiesCacheKey = "dataset:probabilities"
)

// CachedDatasetRepository keeps the last loaded snapshot of each dataset in memory.
// Snapshots are shared between requests and must not be modified by callers.
type CachedDatasetRepository struct {
	source DatasetRepositoryInterface
	cache  *cache.Cache

	transactionsMu  sync.Mutex
	probabilitiesMu sync.Mutex
}

// NewCachedDatasetRepository wraps source with an in-memory snapshot cache.
// A ttl of zero keeps snapshots for the process lifetime.
func NewCachedDatasetRepository(source DatasetRepositoryInterface, ttl time.Duration) *CachedDatasetRepository {
	expiration := ttl
	cleanup := 2 * ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}

	return &CachedDatasetRepository{
		source: source,
		cache:  cache.New(expiration, cleanup),
	}
}

// LoadTransactions returns the cached transaction snapshot, loading it on a miss
func (r *CachedDatasetRepository) LoadTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	if cached, ok := r.cache.Get(transactionsCacheKey); ok {
		return cached.([]models.TransactionRecord), nil
	}

	r.transactionsMu.Lock()
	defer r.transactionsMu.Unlock()

	if cached, ok := r.cache.Get(transactionsCacheKey); ok {
		return cached.([]models.TransactionRecord), nil
	}

	records, err := r.source.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.SetDefault(transactionsCacheKey, records)
	return records, nil
}

// LoadProbabilities returns the cached probability snapshot, loading it on a miss
func (r *CachedDatasetRepository) LoadProbabilities(ctx context.Context) ([]models.CustomerProbabilityRecord, error) {
	if cached, ok := r.cache.Get(probabilitiesCacheKey); ok {
		return cached.([]models.CustomerProbabilityRecord), nil
	}

	r.probabilitiesMu.Lock()
	defer r.probabilitiesMu.Unlock()

	if cached, ok := r.cache.Get(probabilitiesCacheKey); ok {
		return cached.([]models.CustomerProbabilityRecord), nil
	}

	records, err := r.source.LoadProbabilities(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.SetDefault(probabilitiesCacheKey, records)
	return records, nil
}

// Warm loads both datasets so the first request does not pay the load cost
func (r *CachedDatasetRepository) Warm(ctx context.Context) error {
	if _, err := r.LoadTransactions(ctx); err != nil {
		return err
	}
	if _, err := r.LoadProbabilities(ctx); err != nil {
		return err
	}
	return nil
}

// Invalidate drops both snapshots; the next load reads the source again
func (r *CachedDatasetRepository) Invalidate() {
	r.cache.Flush()
}
