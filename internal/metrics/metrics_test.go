package metrics

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/neurons/internal/train"
)

func TestMetrics_Observe(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.Observe("r1", train.Epoch{Index: 1, TrainLoss: 0.5, TrainAccuracy: 0.6, TestLoss: 0.7, TestAccuracy: 0.4})
	m.Observe("r1", train.Epoch{Index: 2, TrainLoss: 0.25, TrainAccuracy: 0.8, TestLoss: 0.35, TestAccuracy: 0.75})
	m.Observe("r2", train.Epoch{Index: 1, TrainLoss: 0.1})

	assert.Equal(t, 0.25, testutil.ToFloat64(m.prometheus.Loss.WithLabelValues("r1", "train")))
	assert.Equal(t, 0.35, testutil.ToFloat64(m.prometheus.Loss.WithLabelValues("r1", "test")))
	assert.Equal(t, 0.8, testutil.ToFloat64(m.prometheus.Accuracy.WithLabelValues("r1", "train")))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.prometheus.Accuracy.WithLabelValues("r1", "test")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Epochs.WithLabelValues("r1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Epochs.WithLabelValues("r2")))

	// collectors can be registered only once per registry
	_, err = New(registry)
	assert.Error(t, err)
}

func TestMetrics_Endpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)
	m.Observe("run", train.Epoch{Index: 1, TrainLoss: 0.5})

	server := httptest.NewServer(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `neurons_epoch_loss{run="run",set="train"} 0.5`)
	assert.Contains(t, string(body), `neurons_epochs_total{run="run"} 1`)
}

func TestObserver(t *testing.T) {
	var o train.Observer = Observer
	o.Observe("default", train.Epoch{Index: 1, TestLoss: 0.2})
	assert.Equal(t, 0.2, testutil.ToFloat64(Observer.prometheus.Loss.WithLabelValues("default", "test")))
}
