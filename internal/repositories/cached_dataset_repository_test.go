package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"customer-insights/internal/models"
	"customer-insights/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

func TestCachedDatasetRepository(t *testing.T) {
	suite.Run(t, new(CachedDatasetRepositorySuite))
}

type CachedDatasetRepositorySuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	source *repository_mocks.MockDatasetRepositoryInterface
	ctx    context.Context

	transactions  []models.TransactionRecord
	probabilities []models.CustomerProbabilityRecord
}

func (s *CachedDatasetRepositorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = repository_mocks.NewMockDatasetRepositoryInterface(s.ctrl)
	s.ctx = context.Background()

	s.transactions = []models.TransactionRecord{
		models.NewTransactionRecord(map[string]string{"purchase_date": "2021-03-05", "customer_id": "C1"}),
	}
	s.probabilities = []models.CustomerProbabilityRecord{{CustomerID: "C1", Prediction: "[]"}}
}

func (s *CachedDatasetRepositorySuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedDatasetRepositorySuite) TestLoadsSourceOnceWithoutTTL() {
	s.source.EXPECT().LoadTransactions(gomock.Any()).Return(s.transactions, nil).Times(1)
	s.source.EXPECT().LoadProbabilities(gomock.Any()).Return(s.probabilities, nil).Times(1)
	repo := NewCachedDatasetRepository(s.source, 0)

	for i := 0; i < 3; i++ {
		transactions, err := repo.LoadTransactions(s.ctx)
		s.Require().NoError(err)
		s.Equal(s.transactions, transactions)

		probabilities, err := repo.LoadProbabilities(s.ctx)
		s.Require().NoError(err)
		s.Equal(s.probabilities, probabilities)
	}
}

func (s *CachedDatasetRepositorySuite) TestErrorsAreNotCached() {
	gomock.InOrder(
		s.source.EXPECT().LoadTransactions(gomock.Any()).Return(nil, errors.New("disk unavailable")),
		s.source.EXPECT().LoadTransactions(gomock.Any()).Return(s.transactions, nil),
	)
	repo := NewCachedDatasetRepository(s.source, 0)

	_, err := repo.LoadTransactions(s.ctx)
	s.Error(err)

	transactions, err := repo.LoadTransactions(s.ctx)
	s.NoError(err)
	s.Equal(s.transactions, transactions)
}

func (s *CachedDatasetRepositorySuite) TestSnapshotExpiresAfterTTL() {
	s.source.EXPECT().LoadProbabilities(gomock.Any()).Return(s.probabilities, nil).Times(2)
	repo := NewCachedDatasetRepository(s.source, 20*time.Millisecond)

	_, err := repo.LoadProbabilities(s.ctx)
	s.Require().NoError(err)
	_, err = repo.LoadProbabilities(s.ctx)
	s.Require().NoError(err)

	time.Sleep(40 * time.Millisecond)

	_, err = repo.LoadProbabilities(s.ctx)
	s.Require().NoError(err)
}

func (s *CachedDatasetRepositorySuite) TestInvalidateForcesReload() {
	s.source.EXPECT().LoadTransactions(gomock.Any()).Return(s.transactions, nil).Times(2)
	repo := NewCachedDatasetRepository(s.source, 0)

	_, err := repo.LoadTransactions(s.ctx)
	s.Require().NoError(err)
	repo.Invalidate()
	_, err = repo.LoadTransactions(s.ctx)
	s.Require().NoError(err)
}

func (s *CachedDatasetRepositorySuite) TestWarmLoadsBothDatasets() {
	s.source.EXPECT().LoadTransactions(gomock.Any()).Return(s.transactions, nil).Times(1)
	s.source.EXPECT().LoadProbabilities(gomock.Any()).Return(s.probabilities, nil).Times(1)
	repo := NewCachedDatasetRepository(s.source, 0)

	s.Require().NoError(repo.Warm(s.ctx))

	_, err := repo.LoadTransactions(s.ctx)
	s.NoError(err)
	_, err = repo.LoadProbabilities(s.ctx)
	s.NoError(err)
}

func (s *CachedDatasetRepositorySuite) TestWarmStopsOnFirstError() {
	s.source.EXPECT().LoadTransactions(gomock.Any()).Return(nil, ErrDatasetNotFound)
	repo := NewCachedDatasetRepository(s.source, 0)

	s.ErrorIs(repo.Warm(s.ctx), ErrDatasetNotFound)
}

func (s *CachedDatasetRepositorySuite) TestConcurrentMissesLoadOnce() {
	s.source.EXPECT().LoadTransactions(gomock.Any()).DoAndReturn(func(context.Context) ([]models.TransactionRecord, error) {
		time.Sleep(10 * time.Millisecond)
		return s.transactions, nil
	}).Times(1)
	repo := NewCachedDatasetRepository(s.source, 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.LoadTransactions(s.ctx)
		}()
	}
	wg.Wait()
}
