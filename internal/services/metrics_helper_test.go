package services

import (
	"sync"
	"time"
)

// recordingMetrics keeps every recorded value in memory.
// Counter keys are name|query-or-dataset|reason.
type recordingMetrics struct {
	mu        sync.Mutex
	counters  map[string]int
	gauges    map[string]float64
	durations map[string][]time.Duration
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters:  make(map[string]int),
		gauges:    make(map[string]float64),
		durations: make(map[string][]time.Duration),
	}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name+"|"+tags["query"]+tags["dataset"]+"|"+tags["reason"]]++
}

func (m *recordingMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[name] = append(m.durations[name], duration)
}

func (m *recordingMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}
