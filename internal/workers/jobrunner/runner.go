// Package jobrunner runs named jobs once per trigger with skip-if-running
// semantics, and schedules them on fixed cadences.
package jobrunner

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"domainwatch/internal/ports"
	"domainwatch/internal/telemetry"
)

var (
	ErrAlreadyRunning = errString("job already running")
	ErrUnknownJob     = errString("unknown job")
)

type errString string

func (e errString) Error() string { return string(e) }

// Job is one finite pass over its record set.
type Job func(ctx context.Context, run *Run) error

type Runner struct {
	mu      sync.Mutex
	jobs    map[string]Job
	running map[string]bool
	metrics *telemetry.Metrics
	runs    ports.JobRunRepository
	// Now is the clock for report timestamps.
	Now func() time.Time
}

// New returns a Runner. metrics and runs may be nil.
func New(metrics *telemetry.Metrics, runs ports.JobRunRepository) *Runner {
	return &Runner{
		jobs:    map[string]Job{},
		running: map[string]bool{},
		metrics: metrics,
		runs:    runs,
		Now:     time.Now,
	}
}

// Register adds a named job, replacing one with the same name.
func (r *Runner) Register(name string, job Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[name] = job
}

func (r *Runner) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.jobs))
	for n := range r.jobs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Trigger runs a registered job to completion.
func (r *Runner) Trigger(ctx context.Context, name string) (Report, error) {
	r.mu.Lock()
	job, ok := r.jobs[name]
	r.mu.Unlock()
	if !ok {
		return Report{Job: name}, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return r.Execute(ctx, name, job)
}

// Execute runs job under key. A second call for a key that is still running
// returns ErrAlreadyRunning without starting anything. The returned error is
// the job's own failure; per-record failures stay in the report.
func (r *Runner) Execute(ctx context.Context, key string, job Job) (Report, error) {
	if !r.acquire(key) {
		r.metrics.JobRun(key, "skipped", 0)
		log.WithField("job", key).Warn("job already running, skipping")
		return Report{Job: key}, ErrAlreadyRunning
	}
	defer r.release(key)

	start := r.Now()
	run := newRun(key, start)
	run.Infof("%s started", key)

	err := r.safeRun(ctx, job, run)

	rep := run.Snapshot()
	rep.FinishedAt = r.Now()
	outcome := "ok"
	if err != nil {
		outcome = "failed"
		msg := fmt.Sprintf("%s aborted: %v", key, err)
		rep.Output = append(rep.Output, "[error] "+msg)
		log.WithField("job", key).Error(msg)
	} else {
		msg := fmt.Sprintf("%s finished: processed=%d succeeded=%d skipped=%d failed=%d",
			key, rep.Processed, rep.Succeeded, rep.Skipped, len(rep.Failed))
		rep.Output = append(rep.Output, "[info] "+msg)
		log.WithField("job", key).Info(msg)
	}
	r.metrics.JobRun(key, outcome, rep.FinishedAt.Sub(start))
	r.metrics.JobRecords(key, rep.Succeeded, len(rep.Failed), rep.Skipped)
	r.record(ctx, rep, err)
	return rep, err
}

func (r *Runner) record(ctx context.Context, rep Report, runErr error) {
	if r.runs == nil {
		return
	}
	run := ports.JobRun{
		Job:        rep.Job,
		StartedAt:  rep.StartedAt,
		FinishedAt: rep.FinishedAt,
		Success:    runErr == nil,
		Message:    Message(rep, runErr),
		Processed:  rep.Processed,
		Succeeded:  rep.Succeeded,
		Skipped:    rep.Skipped,
		Failed:     len(rep.Failed),
		Output:     rep.Output,
	}
	if err := r.runs.RecordJobRun(context.WithoutCancel(ctx), &run); err != nil {
		log.WithField("job", rep.Job).WithError(err).Warn("could not record job run")
	}
}

// Message is the one-line human summary of a run.
func Message(rep Report, runErr error) string {
	if runErr != nil {
		return fmt.Sprintf("%s failed: %v", rep.Job, runErr)
	}
	if len(rep.Failed) > 0 {
		return fmt.Sprintf("%s completed with %d failure(s) out of %d record(s)", rep.Job, len(rep.Failed), rep.Processed)
	}
	return fmt.Sprintf("%s completed: %d record(s) processed", rep.Job, rep.Processed)
}

func (r *Runner) safeRun(ctx context.Context, job Job, run *Run) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return job(ctx, run)
}

func (r *Runner) acquire(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running[key] {
		return false
	}
	r.running[key] = true
	return true
}

func (r *Runner) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.running, key)
}
