package ephemeris

import "time"

type Config struct {
	BaseURL    string        `envconfig:"BASE_URL" default:"http://localhost:8090"`
	ApiVersion string        `envconfig:"VERSION" default:"v1"`
	ApiKey     string        `envconfig:"API_KEY"`
	SkipSSL    string        `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`

	Breaker BreakerConfig `envconfig:"BREAKER"`
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}

// BreakerConfig настройки circuit breaker перед провайдером
type BreakerConfig struct {
	MaxRequests      uint32        `envconfig:"MAX_REQUESTS" default:"5"`
	Interval         time.Duration `envconfig:"INTERVAL" default:"30s"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"60s"`
	FailureThreshold float64       `envconfig:"FAILURE_THRESHOLD" default:"0.6"`
	MinRequests      uint32        `envconfig:"MIN_REQUESTS" default:"8"`
}
