package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkaAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/kafka"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/storage/inmemory"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/logger"
)

const testPrefix = "JYOTISH_TEST"

func TestNewEnvConfig_Defaults(t *testing.T) {
	cfg, err := NewEnvConfig(testPrefix)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ascendant", cfg.Core.DoshaReference)
	assert.Equal(t, 25*time.Hour, cfg.Core.TransitsTTL)
	assert.Equal(t, "v1", cfg.Ephemeris.ApiVersion)
	assert.Equal(t, uint32(8), cfg.Ephemeris.Breaker.MinRequests)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10000, cfg.Cache.RequestIDs)
	assert.True(t, cfg.Jobs.Enabled)
	assert.Equal(t, "Asia/Kolkata", cfg.Jobs.Timezone)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Empty(t, cfg.Kafka.List)
}

func TestNewEnvConfig_Kafka(t *testing.T) {
	t.Setenv(testPrefix+"_KAFKA_ENABLED", "true")
	t.Setenv(testPrefix+"_KAFKA_0_NAME", kafkaAdapter.ComputeRequests)
	t.Setenv(testPrefix+"_KAFKA_0_CONFIG_TOPIC", "jyotish.requests")
	t.Setenv(testPrefix+"_KAFKA_0_CONFIG_CONSUMER_GROUP", "jyotish")
	t.Setenv(testPrefix+"_KAFKA_1_NAME", kafkaAdapter.ComputeResponses)
	t.Setenv(testPrefix+"_KAFKA_1_CONFIG_TOPIC", "jyotish.responses")

	cfg, err := NewEnvConfig(testPrefix)
	require.NoError(t, err)
	require.Len(t, cfg.Kafka.List, 2)

	req, err := cfg.Kafka.Get(kafkaAdapter.ComputeRequests)
	require.NoError(t, err)
	assert.Equal(t, "jyotish.requests", req.Topic)
	assert.Equal(t, "jyotish", req.ConsumerGroup)

	resp, err := cfg.Kafka.Get(kafkaAdapter.ComputeResponses)
	require.NoError(t, err)
	assert.Equal(t, "jyotish.responses", resp.Topic)
}

func TestNewEnvConfig_InvalidJobsHour(t *testing.T) {
	t.Setenv(testPrefix+"_JOBS_TRANSITS_HOUR", "25")

	_, err := NewEnvConfig(testPrefix)
	assert.Error(t, err)
}

func TestNewCore_WiresHTTP(t *testing.T) {
	cfg, err := NewEnvConfig(testPrefix)
	require.NoError(t, err)

	a := &App{Name: "test", Cfg: cfg, Log: logger.Discard()}
	core, err := a.NewCore(context.Background())
	require.NoError(t, err)
	defer core.Close(a.Log)

	assert.IsType(t, &inmemory.Cache{}, core.Cache)
	require.NotNil(t, core.Astro)

	srv, err := a.initHTTP(core)
	require.NoError(t, err)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	assert.NotNil(t, a.initJobScheduler(core))

	producer, consumer, err := a.initKafka(core)
	require.NoError(t, err)
	assert.Nil(t, producer)
	assert.Nil(t, consumer)
}
