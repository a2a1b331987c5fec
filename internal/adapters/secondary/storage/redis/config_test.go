package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_OptionsDefaults(t *testing.T) {
	cfg := &Config{Host: "cache", Port: "6380", Database: 2}
	opts := cfg.Options()

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
	assert.Equal(t, 10, opts.PoolSize)
	assert.Equal(t, 5*time.Minute, opts.ConnMaxIdleTime)
}

func TestClient_PrefixesKeys(t *testing.T) {
	c := NewClient(nil, "jyotish:")
	assert.Equal(t, "jyotish:transits:current", c.key("transits:current"))
}
