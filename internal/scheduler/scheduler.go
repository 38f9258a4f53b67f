// Package scheduler runs the periodic exchange rate refresh.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
	"github.com/SscSPs/currency_admin/internal/middleware"
	"github.com/robfig/cron/v3"
)

// SystemUser is recorded as the actor of scheduled refreshes.
const SystemUser = "system:scheduler"

// RateRefreshJob refreshes rates on a cron schedule.
type RateRefreshJob struct {
	cron    *cron.Cron
	svc     portssvc.RateRefresherSvc
	logger  *slog.Logger
	timeout time.Duration
}

// NewRateRefreshJob schedules svc.RefreshRates on spec, a standard
// five-field cron expression. Overlapping runs are skipped.
func NewRateRefreshJob(spec string, svc portssvc.RateRefresherSvc, logger *slog.Logger) (*RateRefreshJob, error) {
	job := &RateRefreshJob{
		svc:     svc,
		logger:  logger,
		timeout: 2 * time.Minute,
	}
	job.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := job.cron.AddFunc(spec, job.Run); err != nil {
		return nil, fmt.Errorf("invalid rates refresh schedule %q: %w", spec, err)
	}
	return job, nil
}

// Run performs one refresh.
func (j *RateRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	ctx = middleware.WithLogger(ctx, j.logger.With(slog.String("job", "rates_refresh")))

	result, err := j.svc.RefreshRates(ctx, SystemUser)
	if err != nil {
		j.logger.Error("Scheduled rate refresh failed", slog.String("error", err.Error()))
		return
	}
	j.logger.Info("Scheduled rate refresh finished", slog.Int("updated", result.Updated))
}

func (j *RateRefreshJob) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running refresh to finish.
func (j *RateRefreshJob) Stop() {
	<-j.cron.Stop().Done()
}
