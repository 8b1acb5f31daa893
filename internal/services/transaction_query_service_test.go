package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"customer-insights/internal/models"
	"customer-insights/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TransactionQueryServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionDatasetRepositoryInterface
	service  TransactionQueryServiceInterface
	ctx      context.Context
}

func TestTransactionQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionQueryServiceTestSuite))
}

func (s *TransactionQueryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionDatasetRepositoryInterface(s.ctrl)
	s.service = NewTransactionQueryService(s.mockRepo, nil, nil)
	s.ctx = context.Background()
}

func (s *TransactionQueryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func newRecord(purchaseDate, customerID string) models.TransactionRecord {
	return models.NewTransactionRecord(map[string]string{
		models.FieldPurchaseDate: purchaseDate,
		models.FieldCustomerID:   customerID,
		"merchant":               gofakeit.Company(),
		"amount":                 fmt.Sprintf("%.2f", gofakeit.Price(1, 250)),
	})
}

// twelveTransactions spreads 12 records over 3 customers, four per month of the first quarter of 2024.
// February holds C2, C3, C1, C2.
func twelveTransactions() []models.TransactionRecord {
	customers := []string{"C1", "C2", "C3"}
	records := make([]models.TransactionRecord, 0, 12)
	for i := 0; i < 12; i++ {
		date := fmt.Sprintf("2024-%02d-%02d", i/4+1, i+1)
		records = append(records, newRecord(date, customers[i%3]))
	}
	return records
}

func defaultQuery() models.TransactionQuery {
	return models.TransactionQuery{Limit: models.DefaultBatchLimit, SelectedBatch: models.DefaultSelectedBatch}
}

func (s *TransactionQueryServiceTestSuite) TestQuery_ThreeBatchesWithoutFilters() {
	dataset := twelveTransactions()
	s.mockRepo.EXPECT().LoadTransactions(s.ctx).Return(dataset, nil).Times(2)

	first, err := s.service.Query(s.ctx, defaultQuery())
	s.Require().NoError(err)
	s.Equal(12, first.TotalData)
	s.Equal(3, first.TotalBatch)
	s.Equal(5, first.TotalDataInBatch)
	s.Equal(1, first.CurrentBatch)

	query := defaultQuery()
	query.SelectedBatch = 3
	last, err := s.service.Query(s.ctx, query)
	s.Require().NoError(err)
	s.Equal(2, last.TotalDataInBatch)
	s.Len(last.Data, 2)
	s.Equal(3, last.CurrentBatch)
}

func (s *TransactionQueryServiceTestSuite) TestQuery_MonthAndCustomerFilters() {
	dataset := twelveTransactions()
	s.mockRepo.EXPECT().LoadTransactions(s.ctx).Return(dataset, nil).Times(3)

	query := defaultQuery()
	query.Limit = 20
	query.PurchaseMonth = "2024-02"
	february, err := s.service.Query(s.ctx, query)
	s.Require().NoError(err)
	s.Equal(4, february.TotalData)
	for _, record := range february.Data {
		s.True(record.InMonth("2024-02"), record.PurchaseDate)
	}

	query.CustomerID = "C2"
	filtered, err := s.service.Query(s.ctx, query)
	s.Require().NoError(err)
	s.Equal(2, filtered.TotalData)
	s.Equal(1, filtered.TotalBatch)
	for _, record := range filtered.Data {
		s.Equal("C2", record.CustomerID)
		s.True(record.InMonth("2024-02"))
	}
	s.Equal("2024-02-08", filtered.Data[0].PurchaseDate)
	s.Equal("2024-02-05", filtered.Data[1].PurchaseDate)

	query.PurchaseMonth = ""
	query.CustomerID = "C1"
	customerOnly, err := s.service.Query(s.ctx, query)
	s.Require().NoError(err)
	s.Equal(4, customerOnly.TotalData)
}

func (s *TransactionQueryServiceTestSuite) TestQuery_SelectedBatchOutOfRange() {
	s.mockRepo.EXPECT().LoadTransactions(s.ctx).Return(twelveTransactions(), nil)

	query := defaultQuery()
	query.SelectedBatch = 99
	result, err := s.service.Query(s.ctx, query)

	s.Nil(result)
	s.ErrorIs(err, ErrBatchNotFound)
}

func (s *TransactionQueryServiceTestSuite) TestQuery_InvalidMonthSkipsLoad() {
	for _, month := range []string{"2024-13", "2024-2", "24-02", "2024-02-01", "February"} {
		s.Run(month, func() {
			query := defaultQuery()
			query.PurchaseMonth = month

			_, err := s.service.Query(s.ctx, query)

			s.ErrorIs(err, ErrInvalidFormat)
		})
	}
}

func (s *TransactionQueryServiceTestSuite) TestQuery_NonPositiveLimit() {
	for _, limit := range []int{0, -5} {
		query := defaultQuery()
		query.Limit = limit

		_, err := s.service.Query(s.ctx, query)

		s.ErrorIs(err, ErrInvalidFormat)
	}
}

func (s *TransactionQueryServiceTestSuite) TestQuery_DatasetUnavailable() {
	loadErr := errors.New("open final_transactions.csv: no such file")
	s.mockRepo.EXPECT().LoadTransactions(s.ctx).Return(nil, loadErr)

	_, err := s.service.Query(s.ctx, defaultQuery())

	s.ErrorIs(err, ErrDatasetUnavailable)
	s.Contains(err.Error(), "no such file")
}

func (s *TransactionQueryServiceTestSuite) TestQuery_EmptyDatasetIsBatchNotFound() {
	s.mockRepo.EXPECT().LoadTransactions(s.ctx).Return([]models.TransactionRecord{}, nil)

	_, err := s.service.Query(s.ctx, defaultQuery())

	s.ErrorIs(err, ErrBatchNotFound)
}

// Pure query properties

func (s *TransactionQueryServiceTestSuite) TestQueryTransactions_Properties() {
	dataset := twelveTransactions()
	dataset = append(dataset, newRecord("not a date", "C9"), newRecord("2024-03-15", "C9"))

	for _, limit := range []int{1, 2, 3, 5, 7, 14, 15, 100} {
		s.Run(fmt.Sprintf("limit %d", limit), func() {
			var concatenated []models.TransactionRecord
			totalBatch := 0

			for batch := 1; ; batch++ {
				result, err := QueryTransactions(dataset, models.TransactionQuery{Limit: limit, SelectedBatch: batch})
				if errors.Is(err, ErrBatchNotFound) {
					break
				}
				s.Require().NoError(err)

				s.Equal(len(dataset), result.TotalData)
				s.Equal((len(dataset)+limit-1)/limit, result.TotalBatch)
				s.Equal(len(result.Data), result.TotalDataInBatch)
				concatenated = append(concatenated, result.Data...)
				totalBatch = result.TotalBatch
			}

			s.Equal(totalBatch, (len(dataset)+limit-1)/limit)
			s.Equal(SortByPurchaseDateDesc(FilterTransactions(dataset, models.TransactionQuery{})), concatenated)
		})
	}
}

func (s *TransactionQueryServiceTestSuite) TestSortByPurchaseDateDesc() {
	records := []models.TransactionRecord{
		newRecord("2024-01-05", "A"),
		newRecord("garbage", "B"),
		newRecord("2024-03-01", "C"),
		newRecord("2024-01-05", "D"),
		newRecord("2024-02-29T10:00:00Z", "E"),
	}

	sorted := SortByPurchaseDateDesc(FilterTransactions(records, models.TransactionQuery{}))

	var order []string
	for _, record := range sorted {
		order = append(order, record.CustomerID)
	}
	s.Equal([]string{"C", "E", "A", "D", "B"}, order)

	for i := 0; i+1 < len(sorted)-1; i++ {
		a, _ := sorted[i].PurchaseTime()
		b, _ := sorted[i+1].PurchaseTime()
		s.False(a.Before(b))
	}
}

func (s *TransactionQueryServiceTestSuite) TestQueryTransactions_DoesNotModifyDataset() {
	dataset := []models.TransactionRecord{
		newRecord("2024-01-01", "A"),
		newRecord("2024-02-01", "B"),
	}
	snapshot := append([]models.TransactionRecord(nil), dataset...)

	_, err := QueryTransactions(dataset, defaultQuery())

	s.Require().NoError(err)
	s.Equal(snapshot, dataset)
}

func (s *TransactionQueryServiceTestSuite) TestQueryTransactions_ZeroSelectedBatch() {
	query := defaultQuery()
	query.SelectedBatch = 0

	_, err := QueryTransactions(twelveTransactions(), query)

	s.ErrorIs(err, ErrBatchNotFound)
}

func (s *TransactionQueryServiceTestSuite) TestPartitionBatches() {
	records := twelveTransactions()[:7]

	batches := PartitionBatches(records, 3)

	s.Require().Len(batches, 3)
	s.Len(batches[0], 3)
	s.Len(batches[2], 1)
	s.Nil(PartitionBatches(nil, 3))
	s.Nil(PartitionBatches(records, 0))

	// appending to a batch must not overwrite the next one
	_ = append(batches[0], newRecord("2000-01-01", "X"))
	s.Equal(records[3], batches[1][0])
}

func (s *TransactionQueryServiceTestSuite) TestMetricsRecorded() {
	metrics := newRecordingMetrics()
	service := NewTransactionQueryService(s.mockRepo, metrics, nil)
	s.mockRepo.EXPECT().LoadTransactions(s.ctx).Return(twelveTransactions(), nil).Times(2)

	_, err := service.Query(s.ctx, defaultQuery())
	s.Require().NoError(err)
	query := defaultQuery()
	query.SelectedBatch = 50
	_, _ = service.Query(s.ctx, query)

	s.Equal(1, metrics.counters[MetricQueryCompleted+"|transactions|"])
	s.Equal(1, metrics.counters[MetricQueryFailed+"|transactions|batch_not_found"])
	s.Equal(2, metrics.counters[MetricDatasetLoaded+"|transactions|"])
	s.Equal(float64(12), metrics.gauges[MetricDatasetRows])
	s.Equal(float64(5), metrics.gauges[MetricBatchSize])
	s.Len(metrics.durations[MetricQueryDuration+".transactions"], 2)
}
