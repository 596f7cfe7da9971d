package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
)

func seed(t *testing.T, names ...string) (*Store, []domain.Domain) {
	t.Helper()
	ctx := context.Background()
	store := New()
	c := domain.Client{Name: "Acme"}
	require.NoError(t, store.CreateClient(ctx, &c))
	out := make([]domain.Domain, 0, len(names))
	for _, name := range names {
		d := domain.Domain{Name: name, ClientID: c.ID, Status: domain.DomainActive}
		require.NoError(t, store.CreateDomain(ctx, &d))
		out = append(out, d)
	}
	return store, out
}

func TestWithTx_RollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store, ds := seed(t, "a.com", "b.com")
	a, b := ds[0], ds[1]
	exp := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	boom := errors.New("boom")

	opened := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)
	go func() {
		txDone <- store.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
			if err := repos.UpdateDomainStatus(ctx, a.ID, domain.DomainInactive); err != nil {
				return err
			}
			close(opened)
			<-release
			return boom
		})
	}()
	<-opened

	wrote := make(chan error, 1)
	go func() { wrote <- store.UpdateDomainExpiry(ctx, b.ID, &exp) }()

	select {
	case <-wrote:
		t.Fatal("write outside the transaction completed while it was open")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)

	require.ErrorIs(t, <-txDone, boom)
	require.NoError(t, <-wrote)

	gotA, err := store.GetDomain(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DomainActive, gotA.Status)

	gotB, err := store.GetDomain(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, gotB.ExpiresAt)
	assert.Equal(t, exp, *gotB.ExpiresAt)
}

func TestWithTx_PanicRestoresState(t *testing.T) {
	ctx := context.Background()
	store, ds := seed(t, "a.com")

	assert.Panics(t, func() {
		_ = store.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
			require.NoError(t, repos.DeleteDomain(ctx, ds[0].ID))
			panic("boom")
		})
	})

	_, err := store.GetDomain(ctx, ds[0].ID)
	require.NoError(t, err)
	// The store is usable again.
	require.NoError(t, store.UpdateDomainStatus(ctx, ds[0].ID, domain.DomainExpired))
}

func TestWithTx_NestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	store, ds := seed(t, "a.com")
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		inner := repos.(ports.Store)
		require.NoError(t, inner.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
			return repos.UpdateDomainStatus(ctx, ds[0].ID, domain.DomainExpired)
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.GetDomain(ctx, ds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DomainActive, got.Status)
}

func TestStore_NotFoundAndConflict(t *testing.T) {
	ctx := context.Background()
	store, ds := seed(t, "a.com")

	dup := domain.Domain{Name: "A.com", ClientID: ds[0].ClientID, Status: domain.DomainActive}
	assert.ErrorIs(t, store.CreateDomain(ctx, &dup), ports.ErrConflict)
	assert.ErrorIs(t, store.UpdateDomainStatus(ctx, "ghost", domain.DomainExpired), ports.ErrNotFound)
	assert.ErrorIs(t, store.CreateCertificate(ctx, &domain.Certificate{DomainID: "ghost"}), ports.ErrNotFound)

	require.NoError(t, store.CreateCertificate(ctx, &domain.Certificate{DomainID: ds[0].ID, Status: domain.CertificateUnknown}))
	require.NoError(t, store.DeleteDomain(ctx, ds[0].ID))
	_, err := store.GetCertificateByDomain(ctx, ds[0].ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
