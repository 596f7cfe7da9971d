package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"domainwatch/internal/ports"
)

// RecordJobRun appends one finished run to the job log.
func (q *queries) RecordJobRun(ctx context.Context, run *ports.JobRun) error {
	newID(&run.ID)
	output := run.Output
	if output == nil {
		output = []string{}
	}
	_, err := q.db.Exec(ctx, `
        INSERT INTO job_runs (id, job, started_at, finished_at, success, message,
            processed, succeeded, skipped, failed, output)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, run.ID, run.Job, run.StartedAt, run.FinishedAt, run.Success, run.Message,
		run.Processed, run.Succeeded, run.Skipped, run.Failed, output)
	return mapErr(err)
}

// ListJobRuns returns the newest runs first, optionally for one job only.
func (q *queries) ListJobRuns(ctx context.Context, job string, limit int) ([]ports.JobRun, error) {
	rows, err := q.db.Query(ctx, `
        SELECT id, job, started_at, finished_at, success, message,
            processed, succeeded, skipped, failed, output
        FROM job_runs
        WHERE $1 = '' OR job = $1
        ORDER BY started_at DESC, id DESC
        LIMIT NULLIF($2::int, 0)
    `, job, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ports.JobRun, error) {
		var r ports.JobRun
		err := row.Scan(&r.ID, &r.Job, &r.StartedAt, &r.FinishedAt, &r.Success, &r.Message,
			&r.Processed, &r.Succeeded, &r.Skipped, &r.Failed, &r.Output)
		return r, err
	})
}

// PruneJobRuns deletes runs that started more than keepDays days ago.
func (db *DB) PruneJobRuns(ctx context.Context, keepDays int) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM job_runs WHERE started_at < now() - make_interval(days => $1)`, keepDays)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
