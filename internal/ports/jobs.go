package ports

import (
	"context"
	"time"
)

// JobRun is the persisted outcome of one job execution.
type JobRun struct {
	ID         string
	Job        string
	StartedAt  time.Time
	FinishedAt time.Time
	Success    bool
	Message    string
	Processed  int
	Succeeded  int
	Skipped    int
	Failed     int
	Output     []string
}

// JobRunRepository keeps the run log shown to operators.
type JobRunRepository interface {
	RecordJobRun(ctx context.Context, run *JobRun) error
	// ListJobRuns returns newest first; an empty job lists every job.
	ListJobRuns(ctx context.Context, job string, limit int) ([]JobRun, error)
}
