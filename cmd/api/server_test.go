package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"customer-insights/internal/config"
	"customer-insights/internal/repositories"
	"customer-insights/internal/services"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	dir    string
	source *repositories.CSVDatasetRepository
	e      *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	var trx strings.Builder
	trx.WriteString("purchase_date,customer_id,amount\n")
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&trx, "2024-01-%02d,C%d,%d.00\n", i, i%3+1, i*10)
	}
	s.writeFile("transactions.csv", trx.String())
	s.writeFile("probabilities.csv", "customer_id,prediction\n"+
		`C1,"[0.9,0.05,0.05,0,0,0,0,0,0,0,0,0,0,0,0]"`+"\n"+
		`C2,"[0.1,0.2]"`+"\n")

	s.source = repositories.NewCSVDatasetRepository(
		filepath.Join(s.dir, "transactions.csv"),
		filepath.Join(s.dir, "probabilities.csv"),
	)
	s.e = s.newServer(s.source)
}

func (s *ServerTestSuite) writeFile(name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o600))
}

func (s *ServerTestSuite) newServer(source datasetSource) *echo.Echo {
	cfg := &config.Config{
		Server: config.ServerConfig{
			APIBasePath:      "/api",
			CORSAllowOrigins: []string{"*"},
		},
	}
	return newServer(cfg, serverDeps{
		dataset: repositories.NewCachedDatasetRepository(source, 0),
		pinger:  source,
		metrics: services.NewNoopMetrics(),
	})
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestRoot() {
	rec := s.do(http.MethodGet, "/api/", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("App is running..", rec.Body.String())
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *ServerTestSuite) TestTransactions_DefaultBatching() {
	rec := s.do(http.MethodPost, "/api/trx", `{}`)

	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Data             []map[string]string `json:"data"`
		TotalData        int                 `json:"total_data"`
		TotalBatch       int                 `json:"total_batch"`
		TotalDataInBatch int                 `json:"total_data_in_batch"`
		CurrentBatch     int                 `json:"current_batch"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(12, body.TotalData)
	s.Equal(3, body.TotalBatch)
	s.Equal(5, body.TotalDataInBatch)
	s.Equal(1, body.CurrentBatch)
	s.Equal("2024-01-12", body.Data[0]["purchase_date"])
	s.Equal("120.00", body.Data[0]["amount"])
}

func (s *ServerTestSuite) TestTransactions_LastBatch() {
	rec := s.do(http.MethodPost, "/api/trx", `{"selected_batch":"3"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total_data_in_batch":2`)
	s.Contains(rec.Body.String(), `"current_batch":3`)
}

func (s *ServerTestSuite) TestTransactions_Errors() {
	rec := s.do(http.MethodPost, "/api/trx", `{"selected_batch":4}`)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_001")

	rec = s.do(http.MethodPost, "/api/trx", `{"purchase_date":"2024-1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *ServerTestSuite) TestPredictProba() {
	rec := s.do(http.MethodPost, "/api/predict_proba", `{"customer_id":"C1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		CustomerID string    `json:"customer_id"`
		Proba      []float64 `json:"proba"`
		TopCat     []string  `json:"top_cat"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("C1", body.CustomerID)
	s.Len(body.TopCat, 15)
	s.Equal("Automotive", body.TopCat[0])
	s.Equal(0.9, body.Proba[0])
}

func (s *ServerTestSuite) TestPredictProba_Errors() {
	testCases := []struct {
		body   string
		status int
		code   string
	}{
		{`{}`, http.StatusBadRequest, "VALIDATION_002"},
		{`{"customer_id":"C9"}`, http.StatusNotFound, "CUSTOMER_001"},
		{`{"customer_id":"C2"}`, http.StatusInternalServerError, "PREDICTION_002"},
	}

	for _, tc := range testCases {
		s.Run(tc.body, func() {
			rec := s.do(http.MethodPost, "/api/predict_proba", tc.body)
			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.code)
		})
	}
}

func (s *ServerTestSuite) TestMissingDataset() {
	missing := repositories.NewCSVDatasetRepository(filepath.Join(s.dir, "nope.csv"), filepath.Join(s.dir, "nope2.csv"))
	s.e = s.newServer(missing)

	rec := s.do(http.MethodPost, "/api/trx", `{}`)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_002")
	s.NotContains(rec.Body.String(), "nope.csv")

	rec = s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"healthy"`)

	rec = s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "insights_api_requests_total")
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/unknown", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ServerTestSuite) TestSecurityHeaders() {
	rec := s.do(http.MethodPost, "/api/trx", `{}`)

	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Contains(rec.Header().Get("Cache-Control"), "no-store")
}
