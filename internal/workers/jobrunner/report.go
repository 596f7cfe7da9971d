package jobrunner

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// Failure is one record that could not be processed.
type Failure struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error"`
}

// Report summarises one job run. Output holds the run's log lines in order.
type Report struct {
	Job        string    `json:"job"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Processed  int       `json:"processed"`
	Succeeded  int       `json:"succeeded"`
	Skipped    int       `json:"skipped"`
	Failed     []Failure `json:"failed"`
	Output     []string  `json:"output"`
}

// Err folds the per-record failures into one error, nil when none failed.
func (r Report) Err() error {
	var result *multierror.Error
	for _, f := range r.Failed {
		result = multierror.Append(result, fmt.Errorf("%s: %s", f.label(), f.Error))
	}
	return result.ErrorOrNil()
}

func (f Failure) label() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// Run is handed to a job while it executes. It is safe for concurrent use by
// fan-out workers.
type Run struct {
	mu     sync.Mutex
	report Report
	entry  *log.Entry
}

func newRun(job string, started time.Time) *Run {
	return &Run{
		report: Report{Job: job, StartedAt: started, Failed: []Failure{}, Output: []string{}},
		entry:  log.WithField("job", job),
	}
}

func (r *Run) capture(level log.Level, msg string) {
	r.mu.Lock()
	r.report.Output = append(r.report.Output, fmt.Sprintf("[%s] %s", level, msg))
	r.mu.Unlock()
	r.entry.Log(level, msg)
}

func (r *Run) Infof(format string, args ...any) {
	r.capture(log.InfoLevel, fmt.Sprintf(format, args...))
}

func (r *Run) Warnf(format string, args ...any) {
	r.capture(log.WarnLevel, fmt.Sprintf(format, args...))
}

func (r *Run) Errorf(format string, args ...any) {
	r.capture(log.ErrorLevel, fmt.Sprintf(format, args...))
}

// Succeed counts a processed record that completed.
func (r *Run) Succeed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Processed++
	r.report.Succeeded++
}

// Skip counts a processed record that had nothing to do this run.
func (r *Run) Skip(name, reason string) {
	r.mu.Lock()
	r.report.Processed++
	r.report.Skipped++
	r.mu.Unlock()
	r.Infof("%s skipped: %s", name, reason)
}

// Fail records a per-record failure and logs it.
func (r *Run) Fail(id, name string, err error) {
	r.mu.Lock()
	r.report.Processed++
	r.report.Failed = append(r.report.Failed, Failure{ID: id, Name: name, Error: err.Error()})
	r.mu.Unlock()
	r.Errorf("%s failed: %v", name, err)
}

// Snapshot returns a copy of the report so far.
func (r *Run) Snapshot() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.report
	out.Failed = append([]Failure{}, r.report.Failed...)
	out.Output = append([]string{}, r.report.Output...)
	return out
}
