package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/jobs"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/service"
)

// DefaultRetries паузы перед повторами упавшей джобы | now + 1m + 10m + 30m
var DefaultRetries = []time.Duration{
	1 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
}

// Scheduler управляет запуском периодических джоб
type Scheduler struct {
	jobs    []jobs.Job
	retries []time.Duration
	alerter service.IAlerterService
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewScheduler создаёт новый планировщик джоб
func NewScheduler(log *slog.Logger, retries []time.Duration) *Scheduler {
	if retries == nil {
		retries = DefaultRetries
	}
	return &Scheduler{
		jobs:    make([]jobs.Job, 0),
		retries: retries,
		log:     log,
	}
}

// WithAlerter алертит о джобах, упавших после всех повторов. nil отключает алерты
func (s *Scheduler) WithAlerter(alerter service.IAlerterService) *Scheduler {
	s.alerter = alerter
	return s
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start запускает все зарегистрированные джобы, каждую в своей горутине
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Warn("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runJob(ctx, job)
		}()
	}
	return nil
}

// Wait ждёт остановки всех джоб после отмены контекста
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// runJob запускает отдельную джобу в цикле
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job) {
	jobName := job.Name()
	for {
		now := time.Now()
		timer := time.NewTimer(job.NextRun(now).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("job stopped by context", "job_name", jobName)
			return
		case <-timer.C:
			if err := s.executeJobWithRetry(ctx, job); err != nil {
				s.log.Error("job failed after all retries", "job_name", jobName, "error", err)
				s.sendAlert(ctx, jobName, err)
			} else {
				s.log.Info("job executed successfully", "job_name", jobName)
			}
		}
	}
}

// executeJobWithRetry выполняет джобу с повторами. Итоговая ошибка объединяет ошибки всех попыток
func (s *Scheduler) executeJobWithRetry(ctx context.Context, job jobs.Job) error {
	err := job.Run(ctx)
	if err == nil {
		return nil
	}
	attemptErrors := []error{fmt.Errorf("attempt 1: %w", err)}

	for i, delay := range s.retries {
		s.log.Warn("job execution failed, will retry",
			"job_name", job.Name(),
			"attempt", i+1,
			"retries_remaining", len(s.retries)-i,
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(append(attemptErrors, ctx.Err())...)
		case <-timer.C:
		}

		if err = job.Run(ctx); err == nil {
			return nil
		}
		attemptErrors = append(attemptErrors, fmt.Errorf("attempt %d: %w", i+2, err))
	}

	return errors.Join(attemptErrors...)
}

// sendAlert алертит на финальную ошибку после ретраев
func (s *Scheduler) sendAlert(ctx context.Context, jobName string, err error) {
	if s.alerter == nil || ctx.Err() != nil {
		return
	}

	message := fmt.Sprintf("Job %s failed, retries exhausted (%d attempts)\n\n%v", jobName, 1+len(s.retries), err)
	if alertErr := s.alerter.SendAlert(ctx, message); alertErr != nil {
		s.log.Warn("failed to send job failure alert",
			"job_name", jobName,
			"error", alertErr,
		)
	}
}
