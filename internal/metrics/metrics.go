package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/drakos74/neurons/internal/train"
)

const (
	trainSet = "train"
	testSet  = "test"
)

// Observer is the default metrics observer, registered with the default prometheus registry.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.collectors()...)
}

// Metrics exports the training progress as prometheus metrics.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// New creates a new metrics observer registered with the given registry.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: NewPrometheusMetrics(),
	}
	for _, c := range m.prometheus.collectors() {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records the epoch results of the given run.
func (m *Metrics) Observe(run string, epoch train.Epoch) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Loss.WithLabelValues(run, trainSet).Set(epoch.TrainLoss)
	m.prometheus.Loss.WithLabelValues(run, testSet).Set(epoch.TestLoss)
	m.prometheus.Accuracy.WithLabelValues(run, trainSet).Set(epoch.TrainAccuracy)
	m.prometheus.Accuracy.WithLabelValues(run, testSet).Set(epoch.TestAccuracy)
	m.prometheus.Epochs.WithLabelValues(run).Inc()
}
