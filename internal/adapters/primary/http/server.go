package server

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/primary/http/middlewares"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
)

type Config struct {
	Host                    string        `envconfig:"HOST"`
	Port                    string        `envconfig:"PORT" default:"8080"`
	WriteTimeout            time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	ReadTimeout             time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	ReadHeaderTimeout       time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"3s"`
	IdleTimeout             time.Duration `envconfig:"IDLE_TIMEOUT" default:"15s"`
	EnableLoggingMiddleware bool          `envconfig:"ENABLE_LOGGING_MIDDLEWARE" default:"false"`
	EnableMetrics           bool          `envconfig:"ENABLE_METRICS" default:"true"`
}

type Controller interface {
	RegisterRoutes(router *gin.Engine)
}

// NewRouter собирает gin с общими middleware и маршрутами контроллеров
func NewRouter(
	cfg *Config,
	logger *slog.Logger,
	m *metrics.Collector,
	controllers ...Controller,
) *gin.Engine {
	router := gin.New()
	router.Use(middlewares.RequestID(), middlewares.RecoveryLogger(logger))

	if cfg.EnableMetrics && m != nil {
		router.Use(middlewares.Metrics(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	if cfg.EnableLoggingMiddleware {
		router.Use(middlewares.RequestLogger(logger))
	}

	for _, controller := range controllers {
		controller.RegisterRoutes(router)
	}

	return router
}

func NewHTTPServer(
	cfg *Config,
	logger *slog.Logger,
	m *metrics.Collector,
	controllers ...Controller,
) (*http.Server, error) {
	gin.SetMode(gin.ReleaseMode)
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	server := &http.Server{
		Handler:           NewRouter(cfg, logger, m, controllers...),
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return server, nil
}
