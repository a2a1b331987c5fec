package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	server "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/http"
	astroController "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/http/controllers/astro"
	healthcheckController "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/http/controllers/healthcheck"
	kafkaConsumerAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/alerter"
	ephemerisAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/ephemeris"
	kafkaAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/kafka"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/storage/inmemory"
	redisAdapter "github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/storage/redis"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/cache"
	alerterService "github.com/Aayushsharma490/viprakarma-sub003/internal/services/alerter"
	ephemerisService "github.com/Aayushsharma490/viprakarma-sub003/internal/services/ephemeris"
	jobScheduler "github.com/Aayushsharma490/viprakarma-sub003/internal/services/jobs"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/services/positions"
	astroUsecase "github.com/Aayushsharma490/viprakarma-sub003/internal/usecases/astro"
)

type Dependencies struct {
	HTTPServer    *http.Server
	Core          *Core
	KafkaProducer *kafkaAdapter.Producer
	KafkaConsumer *kafkaConsumerAdapter.Consumer
	JobScheduler  *jobScheduler.Scheduler
}

// Core ядро расчётов со всем, что ему нужно снаружи
type Core struct {
	Astro     *astroUsecase.Service
	Ephemeris *ephemerisAdapter.Client
	Cache     cache.Cache
	Metrics   *metrics.Collector
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	core, err := a.NewCore(ctx)
	if err != nil {
		return nil, err
	}

	producer, consumer, err := a.initKafka(core)
	if err != nil {
		core.Close(a.Log)
		return nil, fmt.Errorf("failed to init kafka: %w", err)
	}

	httpServer, err := a.initHTTP(core)
	if err != nil {
		core.Close(a.Log)
		return nil, fmt.Errorf("failed to init http server: %w", err)
	}

	return &Dependencies{
		HTTPServer:    httpServer,
		Core:          core,
		KafkaProducer: producer,
		KafkaConsumer: consumer,
		JobScheduler:  a.initJobScheduler(core),
	}, nil
}

// NewCore собирает кэш, клиент эфемерид и use case. Используется и сервисом, и CLI
func (a *App) NewCore(ctx context.Context) (*Core, error) {
	if a.Cfg.Ephemeris == nil {
		return nil, fmt.Errorf("ephemeris configuration is missing")
	}

	m := metrics.New("jyotish")
	c := a.initCache(ctx)

	client := ephemerisAdapter.NewClient(a.Cfg.Ephemeris, m, a.Log)

	ttl := a.Cfg.Cache.EphemerisTTL
	eph := ephemerisService.NewCached(client, c, ttl, m, a.Log)

	resolver := positions.New(eph, a.Log)
	astro := astroUsecase.New(*a.Cfg.Core, resolver, c, m, a.Log)

	return &Core{
		Astro:     astro,
		Ephemeris: client,
		Cache:     c,
		Metrics:   m,
	}, nil
}

// Close освобождает кэш
func (c *Core) Close(log *slog.Logger) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.Close(); err != nil {
		log.Error("failed to close cache", "error", err)
	}
}

// initCache Redis, если включен и доступен, иначе in-memory
func (a *App) initCache(ctx context.Context) cache.Cache {
	if a.Cfg.Redis != nil && a.Cfg.Redis.Enabled {
		rdb, err := a.Cfg.Redis.NewConnection(ctx)
		if err == nil {
			a.Log.Info("redis cache connected successfully")
			return redisAdapter.NewClient(rdb, a.Cfg.Redis.KeyPrefix)
		}
		a.Log.Warn("failed to init redis cache, falling back to in-memory", "error", err)
	}
	return inmemory.NewCache()
}

// initKafka producer ответов и consumer запросов, если Kafka включена
func (a *App) initKafka(core *Core) (*kafkaAdapter.Producer, *kafkaConsumerAdapter.Consumer, error) {
	if !a.Cfg.Kafka.Enabled {
		a.Log.Info("kafka transport disabled")
		return nil, nil, nil
	}

	responsesCfg, err := a.Cfg.Kafka.Get(kafkaAdapter.ComputeResponses)
	if err != nil {
		return nil, nil, err
	}
	requestsCfg, err := a.Cfg.Kafka.Get(kafkaAdapter.ComputeRequests)
	if err != nil {
		return nil, nil, err
	}

	producer, err := kafkaAdapter.NewProducer(responsesCfg, a.Log)
	if err != nil {
		return nil, nil, err
	}

	handler := kafkaHandlers.NewComputeHandler(
		core.Astro,
		producer,
		inmemory.NewRequestCache(a.Cfg.Cache.RequestIDs),
		core.Metrics,
		a.Log,
	)

	consumer, err := kafkaConsumerAdapter.NewConsumer(requestsCfg, handler, a.Log)
	if err != nil {
		if cerr := producer.Close(); cerr != nil {
			a.Log.Error("failed to close kafka producer", "error", cerr)
		}
		return nil, nil, err
	}

	return producer, consumer, nil
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(core *Core) (*http.Server, error) {
	controllers := []server.Controller{
		healthcheckController.New(core.Cache, core.Ephemeris, a.Log),
		astroController.New(core.Astro, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, core.Metrics, controllers...)
}

// initJobScheduler регистрирует пересчёт транзитной карты
func (a *App) initJobScheduler(core *Core) *jobScheduler.Scheduler {
	if !a.Cfg.Jobs.Enabled {
		a.Log.Info("jobs disabled")
		return nil
	}

	alerter := alerterService.New(alerterAdapter.NewClient(a.Cfg.Alerter, a.Log), a.Name)
	if alerter == nil {
		a.Log.Info("alerter not configured, job failures are only logged")
	}

	scheduler := jobScheduler.NewScheduler(a.Log, nil).WithAlerter(alerter)
	scheduler.Register(jobScheduler.NewTransitsUpdater(
		core.Astro,
		a.Cfg.Jobs.TransitsHour,
		a.Cfg.Jobs.Timezone,
		a.Log,
	))
	a.Log.Info("transits updater job registered")

	return scheduler
}
