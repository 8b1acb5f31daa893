package repositories

import (
	"context"
	"fmt"

	"customer-insights/internal/models"

	"gorm.io/gorm"
)

// saveBatchSize is the number of rows inserted per statement by the dataset writer
const saveBatchSize = 500

// DBDatasetRepository reads and writes both datasets in SQL tables
type DBDatasetRepository struct {
	db *gorm.DB
}

// NewDBDatasetRepository creates a new database-backed dataset repository
func NewDBDatasetRepository(db *gorm.DB) *DBDatasetRepository {
	return &DBDatasetRepository{
		db: db,
	}
}

// LoadTransactions retrieves every transaction row in import order
func (r *DBDatasetRepository) LoadTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	var rows []models.TransactionRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	return records, nil
}

// LoadProbabilities retrieves every customer probability row in import order
func (r *DBDatasetRepository) LoadProbabilities(ctx context.Context) ([]models.CustomerProbabilityRecord, error) {
	var rows []models.CustomerProbabilityRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load customer probabilities: %w", err)
	}

	records := make([]models.CustomerProbabilityRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	return records, nil
}

// SaveTransactions replaces the stored transaction dataset
func (r *DBDatasetRepository) SaveTransactions(ctx context.Context, records []models.TransactionRecord) error {
	rows := make([]models.TransactionRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, models.NewTransactionRow(record))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.TransactionRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, saveBatchSize).Error; err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		return nil
	})
}

// SaveProbabilities replaces the stored customer probability dataset
func (r *DBDatasetRepository) SaveProbabilities(ctx context.Context, records []models.CustomerProbabilityRecord) error {
	rows := make([]models.CustomerProbabilityRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, models.NewCustomerProbabilityRow(record))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CustomerProbabilityRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear customer probabilities: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, saveBatchSize).Error; err != nil {
			return fmt.Errorf("failed to save customer probabilities: %w", err)
		}
		return nil
	})
}

// Ping checks that the underlying database is reachable
func (r *DBDatasetRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
