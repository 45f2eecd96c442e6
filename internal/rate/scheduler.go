package rate

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type Scheduler struct {
	job        *RefreshJob
	clock      clockwork.Clock
	loc        *time.Location
	hour       uint
	minute     uint
	runOnStart bool
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(
		gocron.WithClock(s.clock),
		gocron.WithLocation(s.loc),
	)
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if runErr := s.job.Run(jobCtx, execID); runErr != nil {
			logrus.Errorf("Refresh rates job %s failed: %v", execID, runErr)
		}
	}

	opts := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}
	if s.runOnStart {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(s.hour, s.minute, 0))),
		gocron.NewTask(job),
		opts...,
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.sched = scheduler
	scheduler.Start()
	logrus.Infof("Rates refresh scheduled daily at %02d:%02d %s", s.hour, s.minute, s.loc)

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(job *RefreshJob, clock clockwork.Clock, loc *time.Location, hour, minute uint, runOnStart bool) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{job: job, clock: clock, loc: loc, hour: hour, minute: minute, runOnStart: runOnStart}
}
