package jobs

import (
	"context"
	"log/slog"
	"time"
)

const transitsUpdaterName = "transits-updater"

// TransitsCache то, что нужно джобе от use case
type TransitsCache interface {
	UpdateCachedTransits(ctx context.Context, at time.Time) error
}

// TransitsUpdater пересчитывает транзитную карту в кэше раз в сутки в заданный час
type TransitsUpdater struct {
	astro    TransitsCache
	hour     int
	location *time.Location
	log      *slog.Logger
}

// NewTransitsUpdater timezone - имя из базы IANA, при ошибке используется UTC
func NewTransitsUpdater(astro TransitsCache, hour int, timezone string, log *slog.Logger) *TransitsUpdater {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warn("unknown timezone for transits updater, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	return &TransitsUpdater{
		astro:    astro,
		hour:     hour,
		location: location,
		log:      log,
	}
}

func (j *TransitsUpdater) Name() string {
	return transitsUpdaterName
}

// NextRun ближайший час запуска строго после now
func (j *TransitsUpdater) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	next := time.Date(local.Year(), local.Month(), local.Day(), j.hour, 0, 0, 0, j.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run пересчитывает транзиты на текущий момент
func (j *TransitsUpdater) Run(ctx context.Context) error {
	return j.astro.UpdateCachedTransits(ctx, time.Now())
}
