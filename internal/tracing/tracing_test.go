package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/jaeger-client-go"
)

type tracingConfig struct {
	enabled bool
}

func (c tracingConfig) Enabled() bool       { return c.enabled }
func (c tracingConfig) ServiceName() string { return "usd-converter-test" }

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(tracingConfig{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func Test_OnEnabledTracing_ShouldInstallTracer(t *testing.T) {
	t.Setenv("JAEGER_SAMPLER_TYPE", "const")
	t.Setenv("JAEGER_SAMPLER_PARAM", "0")
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	closer, err := Init(tracingConfig{enabled: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &jaeger.Tracer{}, opentracing.GlobalTracer())
}
