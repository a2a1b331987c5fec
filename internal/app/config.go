package app

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/http"
	alerterAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/alerter"
	ephemerisAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/ephemeris"
	kafkaAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/kafka"
	redisAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/storage/redis"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/logger"
	astroUsecase "github.com/Aayushsharma490/viprakarma-sub003/internal/usecases/astro"
)

type Config struct {
	Log       *logger.Config            `envconfig:"LOG"`
	Server    *server.Config            `envconfig:"APISERVER"`
	Ephemeris *ephemerisAdapter.Config  `envconfig:"EPHEMERIS"`
	Redis     *redisAdapter.Config      `envconfig:"REDIS"`
	Cache     *CacheConfig              `envconfig:"CACHE"`
	Kafka     kafkaAdapter.KafkaConfigs `envconfig:"KAFKA"`
	Jobs      *JobsConfig               `envconfig:"JOBS"`
	Core      *astroUsecase.Config      `envconfig:"CORE"`
	Alerter   *alerterAdapter.Config    `envconfig:"ALERTER"`
}

// CacheConfig кэш ответов эфемерид и окно дедупликации request_id
type CacheConfig struct {
	EphemerisTTL time.Duration `envconfig:"EPHEMERIS_TTL" default:"720h"`
	RequestIDs   int           `envconfig:"REQUEST_IDS" default:"10000"`
}

// JobsConfig расписание пересчёта транзитов
type JobsConfig struct {
	Enabled      bool   `envconfig:"ENABLED" default:"true"`
	TransitsHour int    `envconfig:"TRANSITS_HOUR" default:"0"`
	Timezone     string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
}

func (c *JobsConfig) Validate() error {
	if c.TransitsHour < 0 || c.TransitsHour > 23 {
		return fmt.Errorf("transits_hour %d out of range 0..23", c.TransitsHour)
	}
	return nil
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// envconfig не умеет определять размер слайса, Kafka грузим вручную
	if cfg.Kafka.Enabled {
		if err := cfg.Kafka.Load(envPrefix); err != nil {
			return nil, fmt.Errorf("failed to load kafka config: %w", err)
		}
	}

	if err := cfg.Jobs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid jobs config: %w", err)
	}

	return cfg, nil
}
