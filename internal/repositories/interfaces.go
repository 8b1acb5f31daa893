package repositories

import (
	"context"

	"customer-insights/internal/models"
)

// TransactionDatasetRepositoryInterface loads the transaction dataset.
// Returned slices are treated as immutable by every caller.
type TransactionDatasetRepositoryInterface interface {
	LoadTransactions(ctx context.Context) ([]models.TransactionRecord, error)
}

// ProbabilityDatasetRepositoryInterface loads the customer category probability dataset.
// Returned slices are treated as immutable by every caller.
type ProbabilityDatasetRepositoryInterface interface {
	LoadProbabilities(ctx context.Context) ([]models.CustomerProbabilityRecord, error)
}

// DatasetRepositoryInterface loads both datasets from a single source
type DatasetRepositoryInterface interface {
	TransactionDatasetRepositoryInterface
	ProbabilityDatasetRepositoryInterface
}

// DatasetWriterInterface stores datasets into a source that DatasetRepositoryInterface can read back
type DatasetWriterInterface interface {
	SaveTransactions(ctx context.Context, records []models.TransactionRecord) error
	SaveProbabilities(ctx context.Context, records []models.CustomerProbabilityRecord) error
}
