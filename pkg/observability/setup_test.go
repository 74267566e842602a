package observability

import (
	"testing"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/dynamo-items-service/pkg/config"
	"github.com/raywall/dynamo-items-service/pkg/metrics"
)

func TestSetupMetrics(t *testing.T) {
	t.Run("Disabled returns Noop", func(t *testing.T) {
		provider, err := SetupMetrics(config.MetricsConf{
			Datadog: config.DatadogConf{Enabled: false},
		})
		require.NoError(t, err)
		assert.IsType(t, metrics.Noop{}, provider)
	})

	t.Run("Enabled returns Datadog", func(t *testing.T) {
		provider, err := SetupMetrics(config.MetricsConf{
			Datadog: config.DatadogConf{
				Enabled:   true,
				Addr:      "localhost:8125",
				Namespace: "items.",
			},
		})
		// statsd.New usa UDP e não precisa de um agente escutando
		require.NoError(t, err)

		dd, ok := provider.(*DatadogProvider)
		require.True(t, ok, "esperado DatadogProvider, recebido %T", provider)
		assert.NoError(t, dd.Count("dyndb.pages", 1, []string{"table:items"}))
		assert.NoError(t, dd.Close())
	})
}

func TestDatadogProvider_NoOpClient(t *testing.T) {
	p := &DatadogProvider{client: &statsd.NoOpClient{}}

	assert.NoError(t, p.Count("http.requests", 2, nil))
	assert.NoError(t, p.Gauge("http.inflight", 1, nil))
	assert.NoError(t, p.Histogram("http.latency_ms", 12.5, nil))
	assert.NoError(t, p.Close())
}
