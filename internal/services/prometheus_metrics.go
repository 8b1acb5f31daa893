package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricQueryCompleted   = "query.completed"
	MetricQueryFailed      = "query.failed"
	MetricQueryDuration    = "query.duration"
	MetricDatasetLoaded    = "dataset.loaded"
	MetricDatasetLoadError = "dataset.load_failed"
	MetricDatasetRows      = "dataset.rows"
	MetricBatchSize        = "batch.size"
)

type PrometheusMetrics struct {
	queriesTotal      *prometheus.CounterVec
	queryDuration     *prometheus.HistogramVec
	datasetLoadsTotal *prometheus.CounterVec
	datasetRows       *prometheus.GaugeVec
	batchesReturned   prometheus.Histogram
}

// NewPrometheusMetrics registers the query metrics with the given registerer
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_queries_total",
				Help: "Total number of dataset queries by endpoint and outcome",
			},
			[]string{"query", "status"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "insights_query_duration_milliseconds",
				Help:    "Query duration in milliseconds, dataset load included",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"query"},
		),
		datasetLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_dataset_loads_total",
				Help: "Total number of dataset loads by dataset and outcome",
			},
			[]string{"dataset", "status"},
		),
		datasetRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "insights_dataset_rows",
				Help: "Number of rows in the most recently loaded dataset",
			},
			[]string{"dataset"},
		),
		batchesReturned: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insights_batch_size",
				Help:    "Number of transaction records returned per batch",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricQueryCompleted:
		m.queriesTotal.WithLabelValues(tags["query"], "success").Inc()
	case MetricQueryFailed:
		m.queriesTotal.WithLabelValues(tags["query"], "failed_"+tags["reason"]).Inc()
	case MetricDatasetLoaded:
		m.datasetLoadsTotal.WithLabelValues(tags["dataset"], "success").Inc()
	case MetricDatasetLoadError:
		m.datasetLoadsTotal.WithLabelValues(tags["dataset"], "failed").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricQueryDuration + ".transactions":
		m.queryDuration.WithLabelValues("transactions").Observe(float64(duration.Milliseconds()))
	case MetricQueryDuration + ".probabilities":
		m.queryDuration.WithLabelValues("probabilities").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDatasetRows:
		m.datasetRows.WithLabelValues(tags["dataset"]).Set(value)
	case MetricBatchSize:
		m.batchesReturned.Observe(value)
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

// recordDatasetLoad reports the outcome of a dataset load through any recorder
func recordDatasetLoad(metrics MetricsRecorderInterface, dataset string, rows int, err error) {
	tags := map[string]string{"dataset": dataset}
	if err != nil {
		metrics.IncrementCounter(MetricDatasetLoadError, tags)
		return
	}
	metrics.IncrementCounter(MetricDatasetLoaded, tags)
	metrics.RecordGauge(MetricDatasetRows, float64(rows), tags)
}
