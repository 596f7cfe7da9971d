package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainwatch/internal/adapters/memory"
	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/sources"
	"domainwatch/internal/workers/jobrunner"
)

var now = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

type fixture struct {
	store  *memory.Store
	svc    *Service
	runner *jobrunner.Runner
	client domain.Client
	mu     sync.Mutex
	checked []string
}

func newFixture(t *testing.T, src Sources) *fixture {
	t.Helper()
	store := memory.New()
	store.SetClock(func() time.Time { return now })
	engine := reconcile.New(store, time.UTC, false)
	engine.Now = func() time.Time { return now }

	f := &fixture{store: store, runner: jobrunner.New(nil, nil)}
	require.NoError(t, store.CreateClient(context.Background(), &f.client))
	f.svc = New(store, engine, src, nil, Options{BatchSize: 2, Concurrency: 2})
	f.svc.Register(f.runner)
	return f
}

func (f *fixture) addDomain(t *testing.T, name string, status domain.DomainStatus, expires *time.Time) domain.Domain {
	t.Helper()
	d := domain.Domain{Name: name, ClientID: f.client.ID, Status: status, ExpiresAt: expires}
	require.NoError(t, f.store.CreateDomain(context.Background(), &d))
	return d
}

func (f *fixture) liveness(answers map[string]*bool) sources.Chain[bool] {
	return sources.NewChain[bool]("liveness", nil, sources.Func("https", func(ctx context.Context, name string) (bool, bool) {
		f.mu.Lock()
		f.checked = append(f.checked, name)
		f.mu.Unlock()
		if a, ok := answers[name]; ok && a != nil {
			return *a, true
		}
		return false, false
	}))
}

func ptr(b bool) *bool { return &b }

func status(t *testing.T, store ports.Repositories, id string) domain.DomainStatus {
	t.Helper()
	d, err := store.GetDomain(context.Background(), id)
	require.NoError(t, err)
	return d.Status
}

func TestDomainStatus_TimeoutOnOneDomainDoesNotStopBatch(t *testing.T) {
	f := newFixture(t, Sources{})
	far := day(2028, time.January, 1)
	one := f.addDomain(t, "one.com", domain.DomainActive, far)
	two := f.addDomain(t, "two.com", domain.DomainActive, far)
	three := f.addDomain(t, "three.com", domain.DomainInactive, far)
	f.svc.src.Liveness = f.liveness(map[string]*bool{"one.com": ptr(false), "two.com": nil, "three.com": ptr(true)})

	rep, err := f.runner.Trigger(context.Background(), JobDomainStatus)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Processed)
	assert.Equal(t, 2, rep.Succeeded)
	require.Len(t, rep.Failed, 1)
	assert.Equal(t, two.ID, rep.Failed[0].ID)
	assert.Equal(t, domain.DomainInactive, status(t, f.store, one.ID))
	assert.Equal(t, domain.DomainActive, status(t, f.store, two.ID))
	assert.Equal(t, domain.DomainActive, status(t, f.store, three.ID))
}

func TestDomainStatus_ExpiredAndCalendarMonth(t *testing.T) {
	f := newFixture(t, Sources{})
	gone := f.addDomain(t, "gone.com", domain.DomainActive, day(2026, time.October, 1))
	soon := f.addDomain(t, "soon.com", domain.DomainActive, day(2026, time.October, 30))
	next := f.addDomain(t, "next.com", domain.DomainActive, day(2026, time.November, 3))
	f.svc.src.Liveness = f.liveness(map[string]*bool{"next.com": ptr(true)})

	_, err := f.runner.Trigger(context.Background(), JobDomainStatus)
	require.NoError(t, err)

	assert.Equal(t, domain.DomainExpired, status(t, f.store, gone.ID))
	assert.Equal(t, domain.DomainInactive, status(t, f.store, soon.ID))
	assert.Equal(t, domain.DomainActive, status(t, f.store, next.ID))
	assert.ElementsMatch(t, []string{"next.com"}, f.checked, "expiry decides without a liveness check")

	hist, err := f.store.ListHistory(context.Background(), gone.ID, 0)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, domain.ActionStatusChange, hist[0].Action)
	assert.Equal(t, "active", *hist[0].OldValue)
	assert.Equal(t, "expired", *hist[0].NewValue)
	assert.Equal(t, now, hist[0].CreatedAt)

	// A second pass writes nothing new.
	before := f.store.HistoryLen()
	_, err = f.runner.Trigger(context.Background(), JobDomainStatus)
	require.NoError(t, err)
	assert.Equal(t, before, f.store.HistoryLen())
}

func TestDomainStatus_ResolvesMissingExpiry(t *testing.T) {
	var whoisCalls int
	f := newFixture(t, Sources{
		RegistrationExpiry: sources.NewChain[time.Time]("registration_expiry", nil,
			sources.Func("whois-api", func(ctx context.Context, name string) (time.Time, bool) {
				whoisCalls++
				return time.Time{}, false
			}),
			sources.Func("whois-command", func(ctx context.Context, name string) (time.Time, bool) {
				return *day(2026, time.May, 1), true
			}),
		),
	})
	d := f.addDomain(t, "example.com", domain.DomainActive, nil)
	f.svc.src.Liveness = f.liveness(nil)

	_, err := f.runner.Trigger(context.Background(), JobDomainStatus)
	require.NoError(t, err)

	got, err := f.store.GetDomain(context.Background(), d.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, *day(2026, time.May, 1), *got.ExpiresAt)
	assert.Equal(t, domain.DomainExpired, got.Status)
	assert.Equal(t, 1, whoisCalls)
}

func TestCertificates_StatusAndTerminal(t *testing.T) {
	answers := map[string]time.Time{
		"renew.com": *day(2026, time.October, 18),
		"dead.com":  *day(2026, time.October, 2),
	}
	var asked []string
	var mu sync.Mutex
	f := newFixture(t, Sources{
		CertificateExpiry: sources.NewChain[time.Time]("certificate_expiry", nil,
			sources.Func("tls", func(ctx context.Context, name string) (time.Time, bool) {
				mu.Lock()
				asked = append(asked, name)
				mu.Unlock()
				v, ok := answers[name]
				return v, ok
			})),
	})
	ctx := context.Background()
	add := func(name string, c domain.Certificate) domain.Certificate {
		d := f.addDomain(t, name, domain.DomainActive, day(2028, time.January, 1))
		c.DomainID = d.ID
		require.NoError(t, f.store.CreateCertificate(ctx, &c))
		return c
	}
	renew := add("renew.com", domain.Certificate{Status: domain.CertificateUnknown})
	dead := add("dead.com", domain.Certificate{Status: domain.CertificateValid, ExpiresAt: day(2026, time.October, 20)})
	add("quiet.com", domain.Certificate{Status: domain.CertificateUnknown})
	add("old.com", domain.Certificate{Status: domain.CertificateExpired, ExpiresAt: day(2025, time.January, 1)})
	add("fine.com", domain.Certificate{Status: domain.CertificateValid, ExpiresAt: day(2027, time.January, 1)})

	rep, err := f.runner.Trigger(ctx, JobSSL)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Processed)
	assert.Equal(t, 2, rep.Succeeded)
	assert.Equal(t, 1, rep.Skipped)
	assert.ElementsMatch(t, []string{"renew.com", "dead.com", "quiet.com"}, asked)

	c, err := f.store.GetCertificateByDomain(ctx, renew.DomainID)
	require.NoError(t, err)
	assert.Equal(t, domain.CertificateToRenew, c.Status)
	c, err = f.store.GetCertificateByDomain(ctx, dead.DomainID)
	require.NoError(t, err)
	assert.Equal(t, domain.CertificateExpired, c.Status)
	assert.Zero(t, f.store.HistoryLen())

	asked = nil
	_, err = f.runner.Trigger(ctx, JobSSL)
	require.NoError(t, err)
	assert.NotContains(t, asked, "dead.com")
}

func TestCertificates_SilentSourcesStillExpireStoredCertificate(t *testing.T) {
	f := newFixture(t, Sources{
		CertificateExpiry: sources.NewChain[time.Time]("certificate_expiry", nil,
			sources.Func("tls", func(ctx context.Context, name string) (time.Time, bool) {
				return time.Time{}, false
			})),
	})
	ctx := context.Background()
	d := f.addDomain(t, "lapsed.com", domain.DomainActive, day(2028, time.January, 1))
	c := domain.Certificate{DomainID: d.ID, Status: domain.CertificateToRenew, ExpiresAt: day(2026, time.October, 12)}
	require.NoError(t, f.store.CreateCertificate(ctx, &c))

	rep, err := f.runner.Trigger(ctx, JobSSL)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)

	got, err := f.store.GetCertificateByDomain(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CertificateExpired, got.Status)
	assert.Equal(t, *day(2026, time.October, 12), *got.ExpiresAt)
}

func TestTechnologies_IdempotentSecondRun(t *testing.T) {
	html := `<html><link href="/wp-content/x.css"><meta name="generator" content="WordPress 6.4.2" />` +
		`<script src="/wp-includes/js/jquery/jquery.js?ver=3.6.0"></script></html>`
	f := newFixture(t, Sources{
		HTML: sources.NewChain[string]("html", nil, sources.Func("homepage", func(ctx context.Context, name string) (string, bool) {
			if name == "down.com" {
				return "", false
			}
			return html, true
		})),
	})
	ctx := context.Background()
	d := f.addDomain(t, "shop.com", domain.DomainActive, nil)
	f.addDomain(t, "down.com", domain.DomainActive, nil)

	rep, err := f.runner.Trigger(ctx, JobTechnologies)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Succeeded)
	assert.Equal(t, 1, rep.Skipped)

	techs, err := f.store.ListTechnologies(ctx, d.ID)
	require.NoError(t, err)
	names := map[string]string{}
	for _, tc := range techs {
		names[tc.Name] = tc.Version
	}
	assert.Equal(t, "6.4.2", names["WordPress"])
	assert.Equal(t, "3.6.0", names["jQuery"])

	entries := f.store.HistoryLen()
	_, err = f.runner.Trigger(ctx, JobTechnologies)
	require.NoError(t, err)
	assert.Equal(t, entries, f.store.HistoryLen())
	again, err := f.store.ListTechnologies(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, techs, again)
}

func TestDomainTechnologies_UnknownDomain(t *testing.T) {
	f := newFixture(t, Sources{})
	_, err := f.runner.Execute(context.Background(), "technologies:nope", f.svc.DomainTechnologies("nope"))
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestContracts_OnlyActiveEvaluated(t *testing.T) {
	f := newFixture(t, Sources{})
	ctx := context.Background()
	mk := func(end *time.Time, st domain.ContractStatus) domain.Contract {
		c := domain.Contract{ClientID: f.client.ID, StartsAt: *day(2025, time.January, 1), EndsAt: *end, Status: st}
		require.NoError(t, f.store.CreateContract(ctx, &c))
		return c
	}
	mk(day(2026, time.October, 1), domain.ContractActive)
	mk(day(2026, time.October, 25), domain.ContractActive)
	mk(day(2027, time.October, 1), domain.ContractActive)
	mk(day(2026, time.October, 1), domain.ContractInactive)

	rep, err := f.runner.Trigger(ctx, JobContracts)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Processed)

	counts := map[domain.ContractStatus]int{}
	all, err := f.store.ListContracts(ctx)
	require.NoError(t, err)
	for _, c := range all {
		counts[c.Status]++
	}
	assert.Equal(t, map[domain.ContractStatus]int{
		domain.ContractExpired:  1,
		domain.ContractInactive: 2,
		domain.ContractActive:   1,
	}, counts)
}

func TestDomainExpiry_KeepsStoredValueWithoutAnswer(t *testing.T) {
	f := newFixture(t, Sources{
		RegistrationExpiry: sources.NewChain[time.Time]("registration_expiry", nil,
			sources.Func("whois", func(ctx context.Context, name string) (time.Time, bool) {
				if name == "renewed.com" {
					return *day(2028, time.March, 1), true
				}
				return time.Time{}, false
			})),
	})
	ctx := context.Background()
	renewed := f.addDomain(t, "renewed.com", domain.DomainActive, day(2026, time.December, 1))
	silent := f.addDomain(t, "silent.com", domain.DomainActive, day(2026, time.December, 1))

	rep, err := f.runner.Trigger(ctx, JobDomainExpiry)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Succeeded)
	assert.Equal(t, 1, rep.Skipped)

	got, err := f.store.GetDomain(ctx, renewed.ID)
	require.NoError(t, err)
	assert.Equal(t, *day(2028, time.March, 1), *got.ExpiresAt)
	got, err = f.store.GetDomain(ctx, silent.ID)
	require.NoError(t, err)
	assert.Equal(t, *day(2026, time.December, 1), *got.ExpiresAt)
}
