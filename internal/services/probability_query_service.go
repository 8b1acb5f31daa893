package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"customer-insights/internal/models"
	"customer-insights/internal/repositories"
)

const queryProbabilities = "probabilities"

type probabilityQueryService struct {
	repo    repositories.ProbabilityDatasetRepositoryInterface
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface
}

// NewProbabilityQueryService creates a new ProbabilityQueryServiceInterface instance
func NewProbabilityQueryService(
	repo repositories.ProbabilityDatasetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) ProbabilityQueryServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if logger == nil {
		logger = NewQueryLogger(nil)
	}
	return &probabilityQueryService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Predict loads the probability dataset and ranks the categories of one customer
func (s *probabilityQueryService) Predict(ctx context.Context, customerID string) (*models.CategoryRanking, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricQueryDuration+"."+queryProbabilities, time.Since(start))
	}()

	if customerID == "" {
		err := fmt.Errorf("%w: customer_id must be filled", ErrMissingField)
		s.recordFailure(ctx, err)
		return nil, err
	}

	records, err := s.repo.LoadProbabilities(ctx)
	recordDatasetLoad(s.metrics, queryProbabilities, len(records), err)
	if err != nil {
		err = fmt.Errorf("%w: failed to load probabilities: %v", ErrDatasetUnavailable, err)
		s.recordFailure(ctx, err)
		return nil, err
	}

	ranking, err := RankCategories(records, customerID)
	if err != nil {
		s.recordFailure(ctx, err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricQueryCompleted, map[string]string{"query": queryProbabilities})
	s.logger.LogPredictionCompleted(ctx, ranking, time.Since(start))
	return ranking, nil
}

func (s *probabilityQueryService) recordFailure(ctx context.Context, err error) {
	reason := "unknown"
	switch {
	case errors.Is(err, ErrMissingField):
		reason = "missing_field"
	case errors.Is(err, ErrDatasetUnavailable):
		reason = "dataset_unavailable"
	case errors.Is(err, ErrCustomerNotFound):
		reason = "customer_not_found"
	case errors.Is(err, ErrDecode):
		reason = "decode_error"
	case errors.Is(err, ErrSchemaMismatch):
		reason = "schema_mismatch"
	}

	s.metrics.IncrementCounter(MetricQueryFailed, map[string]string{
		"query":  queryProbabilities,
		"reason": reason,
	})
	s.logger.LogQueryFailed(ctx, queryProbabilities, reason, err)
}

// RankCategories finds the customer's probability vector and orders every category by
// descending probability. Equal probabilities keep ascending category index order.
func RankCategories(records []models.CustomerProbabilityRecord, customerID string) (*models.CategoryRanking, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer_id must be filled", ErrMissingField)
	}

	record, found := FindCustomerProbability(records, customerID)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrCustomerNotFound, customerID)
	}

	vector, err := record.DecodePrediction()
	if err != nil {
		return nil, fmt.Errorf("%w: customer %q: %v", ErrDecode, customerID, err)
	}

	if len(vector) != models.CategoryCount {
		return nil, fmt.Errorf("%w: customer %q has %d values, mapping has %d",
			ErrSchemaMismatch, customerID, len(vector), models.CategoryCount)
	}

	order := RankIndexes(vector)

	ranking := &models.CategoryRanking{
		CustomerID:    customerID,
		TopCategories: make([]string, 0, len(order)),
		Probabilities: make([]float64, 0, len(order)),
	}
	for _, index := range order {
		label, _ := models.CategoryLabel(index)
		ranking.TopCategories = append(ranking.TopCategories, label)
		ranking.Probabilities = append(ranking.Probabilities, vector[index])
	}

	return ranking, nil
}

// FindCustomerProbability returns the first record whose customer id equals customerID
func FindCustomerProbability(records []models.CustomerProbabilityRecord, customerID string) (models.CustomerProbabilityRecord, bool) {
	for _, record := range records {
		if record.CustomerID == customerID {
			return record, true
		}
	}
	return models.CustomerProbabilityRecord{}, false
}

// RankIndexes returns the permutation of vector indexes sorted by descending value
func RankIndexes(vector []float64) []int {
	order := make([]int, len(vector))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return vector[order[i]] > vector[order[j]]
	})

	return order
}
