package astro

import (
	"log/slog"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/cache"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/services/positions"
)

// Config параметры ядра, не относящиеся к конкретному запросу
type Config struct {
	// ReferenceLatitude/ReferenceLongitude точка для транзитной карты
	ReferenceLatitude  float64       `envconfig:"REFERENCE_LATITUDE" default:"28.6139"`
	ReferenceLongitude float64       `envconfig:"REFERENCE_LONGITUDE" default:"77.2090"`
	TransitsTTL        time.Duration `envconfig:"TRANSITS_TTL" default:"25h"`
	DoshaReference     string        `envconfig:"DOSHA_REFERENCE" default:"ascendant"`
}

// Service расчёты карты, даш, совместимости и транзитов
type Service struct {
	Resolver *positions.Resolver
	Cache    cache.Cache
	Metrics  *metrics.Collector
	Log      *slog.Logger

	cfg Config
	now func() time.Time
}

// New создаёт сервис. cache может быть nil, тогда транзиты не кэшируются
func New(
	cfg Config,
	resolver *positions.Resolver,
	c cache.Cache,
	m *metrics.Collector,
	log *slog.Logger,
) *Service {
	return &Service{
		Resolver: resolver,
		Cache:    c,
		Metrics:  m,
		Log:      log,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) defaultDoshaReference() domain.DoshaReference {
	ref := domain.DoshaReference(s.cfg.DoshaReference)
	if !ref.IsValid() {
		return domain.DoshaFromAscendant
	}
	return ref
}
