package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

type idleSweeper interface {
	SweepIdle(ctx context.Context, idleAfter time.Duration) int
}

// Reaper - periodically cancels games abandoned by both players.
type Reaper struct {
	logger    *slog.Logger
	sweeper   idleSweeper
	interval  time.Duration
	idleAfter time.Duration

	scheduler gocron.Scheduler
}

func NewReaper(logger *slog.Logger, sweeper idleSweeper, interval, idleAfter time.Duration) *Reaper {
	return &Reaper{
		logger:    logger,
		sweeper:   sweeper,
		interval:  interval,
		idleAfter: idleAfter,
	}
}

// Start - schedules the sweep. The job runs until Shutdown, using ctx for its storage calls.
func (that *Reaper) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(that.interval),
		gocron.NewTask(func() {
			that.sweep(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	scheduler.Start()
	that.scheduler = scheduler

	log.Info("reaper started", "interval", that.interval, "idleAfter", that.idleAfter)

	return nil
}

func (that *Reaper) sweep(ctx context.Context) {
	if swept := that.sweeper.SweepIdle(ctx, that.idleAfter); swept > 0 {
		that.logger.Info("stalled games cancelled", "count", swept)
	}
}

func (that *Reaper) Shutdown() error {
	if that.scheduler == nil {
		return nil
	}

	if err := that.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}

	return nil
}
