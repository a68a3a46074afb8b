package config

const (
	defaultServiceName = "usd-converter"
	defaultMetricsJob  = "usd-converter"
)

type TracingConfig struct {
	On      bool   `yaml:"enabled"`
	Service string `yaml:"service-name"`
}

func (t *TracingConfig) setDefaults() {
	if t.Service == "" {
		t.Service = defaultServiceName
	}
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

type MetricsConfig struct {
	Pushgateway string `yaml:"pushgateway-url"`
	JobName     string `yaml:"job"`
}

func (m *MetricsConfig) setDefaults() {
	if m.JobName == "" {
		m.JobName = defaultMetricsJob
	}
}

func (m *MetricsConfig) PushgatewayURL() string {
	return m.Pushgateway
}

func (m *MetricsConfig) Job() string {
	return m.JobName
}
