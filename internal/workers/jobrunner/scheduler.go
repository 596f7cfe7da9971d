package jobrunner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Schedule binds a job to a cadence: a Go duration ("1h", "30m") or a daily
// wall-clock time ("03:00") in the scheduler's location.
type Schedule struct {
	Job  string
	Spec string
}

// NextFunc returns the next fire time strictly after t.
type NextFunc func(t time.Time) time.Time

// ParseCadence parses a schedule spec.
func ParseCadence(spec string, loc *time.Location) (NextFunc, error) {
	spec = strings.TrimSpace(spec)
	if h, m, ok := parseClock(spec); ok {
		return func(t time.Time) time.Time {
			t = t.In(loc)
			next := time.Date(t.Year(), t.Month(), t.Day(), h, m, 0, 0, loc)
			if !next.After(t) {
				next = next.AddDate(0, 0, 1)
			}
			return next
		}, nil
	}
	d, err := time.ParseDuration(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cadence %q: want a duration or HH:MM", spec)
	}
	if d <= 0 {
		return nil, fmt.Errorf("invalid cadence %q: must be positive", spec)
	}
	return func(t time.Time) time.Time { return t.Add(d) }, nil
}

func parseClock(spec string) (int, int, bool) {
	hh, mm, found := strings.Cut(spec, ":")
	if !found {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// Scheduler triggers runner jobs on their cadences. Each schedule has its own
// goroutine, so a slow or failing job never delays another. A tick that finds
// its job still running is skipped, not queued.
type Scheduler struct {
	runner    *Runner
	schedules []Schedule
	loc       *time.Location
	wg        sync.WaitGroup
	// Now is the clock; tests replace it.
	Now func() time.Time
}

func NewScheduler(runner *Runner, loc *time.Location, schedules ...Schedule) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{runner: runner, schedules: schedules, loc: loc, Now: time.Now}
}

// Start validates every schedule and launches the loops. They stop when ctx
// is cancelled; Wait blocks until they have.
func (s *Scheduler) Start(ctx context.Context) error {
	nexts := make([]NextFunc, len(s.schedules))
	for i, sc := range s.schedules {
		next, err := ParseCadence(sc.Spec, s.loc)
		if err != nil {
			return fmt.Errorf("schedule %s: %w", sc.Job, err)
		}
		nexts[i] = next
	}
	for i, sc := range s.schedules {
		s.wg.Add(1)
		go s.loop(ctx, sc, nexts[i])
	}
	return nil
}

func (s *Scheduler) Wait() { s.wg.Wait() }

func (s *Scheduler) loop(ctx context.Context, sc Schedule, next NextFunc) {
	defer s.wg.Done()
	entry := log.WithFields(log.Fields{"job": sc.Job, "cadence": sc.Spec})
	for {
		at := next(s.Now())
		entry.WithField("next_run", at.Format(time.RFC3339)).Debug("job scheduled")
		timer := time.NewTimer(time.Until(at))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		_, err := s.runner.Trigger(ctx, sc.Job)
		switch {
		case errors.Is(err, ErrAlreadyRunning):
			entry.Warn("previous run still in progress, tick skipped")
		case err != nil:
			entry.WithError(err).Error("scheduled run failed")
		}
	}
}
