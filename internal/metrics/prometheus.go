package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "neurons"

// Prometheus holds the training collectors.
type Prometheus struct {
	Loss     *prometheus.GaugeVec
	Accuracy *prometheus.GaugeVec
	Epochs   *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Loss: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "epoch_loss",
				Help:      "loss of the latest epoch",
			}, []string{"run", "set"}),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "epoch_accuracy",
				Help:      "accuracy of the latest epoch",
			}, []string{"run", "set"}),
		Epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "epochs_total",
				Help:      "number of trained epochs",
			}, []string{"run"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Loss, p.Accuracy, p.Epochs}
}
