package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
)

// Runs against a scratch database named by DOMAINWATCH_TEST_DATABASE_URL.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("DOMAINWATCH_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DOMAINWATCH_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url, Options{ConnectTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE job_runs, history, technologies, certificates, domains, contracts, clients`)
	require.NoError(t, err)
	return db
}

func TestStore_DomainLifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	c := domain.Client{Name: "Acme"}
	require.NoError(t, db.CreateClient(ctx, &c))

	exp := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
	d := domain.Domain{Name: "Example.com", ClientID: c.ID, Status: domain.DomainActive, ExpiresAt: &exp}
	require.NoError(t, db.CreateDomain(ctx, &d))

	dup := domain.Domain{Name: "example.com", ClientID: c.ID, Status: domain.DomainActive}
	assert.ErrorIs(t, db.CreateDomain(ctx, &dup), ports.ErrConflict)

	got, err := db.GetDomainByName(ctx, "EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, exp.Equal(*got.ExpiresAt))

	cert := domain.Certificate{DomainID: d.ID, Status: domain.CertificateUnknown}
	require.NoError(t, db.CreateCertificate(ctx, &cert))
	due, err := db.ListCertificatesDue(ctx, exp, "", 10)
	require.NoError(t, err)
	assert.Len(t, due, 1)

	require.NoError(t, db.AppendHistory(ctx, &domain.HistoryEntry{DomainID: d.ID, Action: domain.ActionCreation}))
	require.NoError(t, db.DeleteDomain(ctx, d.ID))
	_, err = db.GetCertificateByDomain(ctx, d.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	hist, err := db.ListHistory(ctx, d.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)

	assert.ErrorIs(t, db.UpdateDomainStatus(ctx, d.ID, domain.DomainExpired), ports.ErrNotFound)
}

func TestStore_WithTxRollsBack(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	c := domain.Client{Name: "Acme"}
	require.NoError(t, db.CreateClient(ctx, &c))

	boom := errors.New("boom")
	err := db.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		d := domain.Domain{Name: "rollback.com", ClientID: c.ID, Status: domain.DomainActive}
		require.NoError(t, repos.CreateDomain(ctx, &d))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	_, err = db.GetDomainByName(ctx, "rollback.com")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStore_JobRuns(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)
	for i, job := range []string{"ssl", "contracts", "ssl"} {
		run := ports.JobRun{
			Job:        job,
			StartedAt:  start.Add(time.Duration(i) * time.Minute),
			FinishedAt: start.Add(time.Duration(i)*time.Minute + time.Second),
			Success:    true,
			Message:    job + " completed",
			Output:     []string{"[info] " + job},
		}
		require.NoError(t, db.RecordJobRun(ctx, &run))
	}

	runs, err := db.ListJobRuns(ctx, "ssl", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	assert.Equal(t, []string{"[info] ssl"}, runs[0].Output)

	n, err := db.PruneJobRuns(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, n)
}
