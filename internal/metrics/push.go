package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/logger"
)

type config interface {
	PushgatewayURL() string
	Job() string
}

// Push sends everything registered in gatherer to the configured
// Pushgateway. It does nothing when no gateway is configured.
func Push(config config, gatherer prometheus.Gatherer) error {
	url := config.PushgatewayURL()
	if url == "" {
		return nil
	}

	err := push.New(url, config.Job()).Gatherer(gatherer).Push()
	if err != nil {
		return errors.Wrap(err, "push metrics")
	}
	logger.Info("metrics pushed", zap.String("gateway", url), zap.String("job", config.Job()))
	return nil
}
