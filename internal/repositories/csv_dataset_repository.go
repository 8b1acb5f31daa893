package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"customer-insights/internal/models"
)

var (
	ErrDatasetNotFound = errors.New("dataset file not found")
	ErrDatasetEmpty    = errors.New("dataset has no header row")
)

// checkContextEvery bounds how many rows are read between cancellation checks
const checkContextEvery = 1024

// CSVDatasetRepository reads both datasets from header-keyed CSV files on every load
type CSVDatasetRepository struct {
	transactionsPath  string
	probabilitiesPath string
}

// NewCSVDatasetRepository creates a new CSV-backed dataset repository
func NewCSVDatasetRepository(transactionsPath, probabilitiesPath string) *CSVDatasetRepository {
	return &CSVDatasetRepository{
		transactionsPath:  transactionsPath,
		probabilitiesPath: probabilitiesPath,
	}
}

// LoadTransactions reads the transaction CSV file
func (r *CSVDatasetRepository) LoadTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	rows, err := readCSVFile(ctx, r.transactionsPath)
	if err != nil {
		return nil, err
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.NewTransactionRecord(row))
	}
	return records, nil
}

// LoadProbabilities reads the customer probability CSV file
func (r *CSVDatasetRepository) LoadProbabilities(ctx context.Context) ([]models.CustomerProbabilityRecord, error) {
	rows, err := readCSVFile(ctx, r.probabilitiesPath)
	if err != nil {
		return nil, err
	}

	records := make([]models.CustomerProbabilityRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.NewCustomerProbabilityRecord(row))
	}
	return records, nil
}

// Ping checks that both dataset files exist and are readable
func (r *CSVDatasetRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, path := range []string{r.transactionsPath, r.probabilitiesPath} {
		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
			}
			return fmt.Errorf("failed to open dataset %s: %w", path, err)
		}
		file.Close()
	}
	return nil
}

func readCSVFile(ctx context.Context, path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	rows, err := ReadCSVRows(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return rows, nil
}

// ReadCSVRows parses CSV text into header-keyed rows. Values are trimmed, missing trailing
// cells become empty strings and cells beyond the header are named field<N> (1-based).
func ReadCSVRows(ctx context.Context, r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrDatasetEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[i] = strings.TrimSpace(name)
	}

	var rows []map[string]string
	for line := 2; ; line++ {
		if line%checkContextEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlankRecord(record) {
			continue
		}

		row := make(map[string]string, len(columns))
		for i, name := range columns {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			} else {
				row[name] = ""
			}
		}
		for i := len(columns); i < len(record); i++ {
			row[fmt.Sprintf("field%d", i+1)] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
