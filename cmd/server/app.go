package main

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	httpadapter "domainwatch/internal/adapters/http"
	"domainwatch/internal/adapters/memory"
	pg "domainwatch/internal/adapters/postgres"
	"domainwatch/internal/config"
	"domainwatch/internal/fingerprint"
	"domainwatch/internal/ports"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/services/monitor"
	"domainwatch/internal/services/portfolio"
	"domainwatch/internal/sources"
	"domainwatch/internal/telemetry"
	"domainwatch/internal/workers/jobrunner"
)

// jobPruneRuns trims the job run log. Only registered on the postgres store.
const jobPruneRuns = "prune-job-runs"

// app is the fully wired service graph shared by every subcommand.
type app struct {
	cfg       config.Config
	store     ports.Store
	db        *pg.DB
	registry  *prometheus.Registry
	metrics   *telemetry.Metrics
	engine    *reconcile.Engine
	monitor   *monitor.Service
	portfolio *portfolio.Service
	runner    *jobrunner.Runner
}

func openStore(ctx context.Context, cfg config.Config) (ports.Store, *pg.DB, error) {
	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("using the in-memory store, data is lost on exit")
		return memory.New(), nil, nil
	default:
		if cfg.DatabaseURL == "" {
			return nil, nil, config.ErrNoDatabaseURL
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.Options{
			MaxConns:       cfg.DBMaxConns,
			Location:       cfg.Location,
			ConnectTimeout: cfg.DBConnectTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		return db, db, nil
	}
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	store, db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, store: store, db: db, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = telemetry.New(a.registry)

	a.engine = reconcile.New(store, cfg.Location, cfg.PruneTechnologies)
	src := buildSources(cfg, a.metrics)
	a.monitor = monitor.New(store, a.engine, src, fingerprint.New(), monitor.Options{
		BatchSize:   cfg.BatchSize,
		Concurrency: cfg.Concurrency,
	})
	a.portfolio = portfolio.New(store, a.engine, src.RegistrationExpiry, src.CertificateExpiry)

	a.runner = jobrunner.New(a.metrics, store)
	a.monitor.Register(a.runner)
	if db != nil && cfg.JobRunRetention > 0 {
		a.runner.Register(jobPruneRuns, pruneRuns(db, cfg.JobRunRetention))
	}
	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// buildSources assembles the fallback chains. Paid or rate limited upstreams
// are throttled and their answers cached for lookup_cache_ttl.
func buildSources(cfg config.Config, m *telemetry.Metrics) monitor.Sources {
	loc := cfg.Location
	cache := gocache.New(cfg.LookupCacheTTL, 10*time.Minute)
	observe := sources.Observer(m.SourceLookup)

	sslLabs := sources.Limited[time.Time](
		sources.NewSSLLabs(cfg.SSLLabsURL, cfg.SSLLabsTimeout, cfg.SSLLabsPollAttempts, cfg.SSLLabsPollInterval, loc),
		limiter(cfg.SSLLabsRPS))
	whoisAPI := sources.Limited[time.Time](
		sources.NewWhoisAPI(cfg.WhoisAPIURL, cfg.WhoisAPIKey, cfg.WhoisAPITimeout, loc),
		limiter(cfg.WhoisAPIRPS))

	return monitor.Sources{
		Liveness: sources.NewChain[bool]("liveness", observe, sources.NewLiveness(cfg.HTTPTimeout)),
		CertificateExpiry: sources.NewChain[time.Time]("certificate_expiry", observe,
			sources.Cached(sslLabs, cache, cfg.LookupCacheTTL),
			sources.NewTLSSocket(cfg.TLSDialTimeout, loc),
		),
		RegistrationExpiry: sources.NewChain[time.Time]("registration_expiry", observe,
			sources.Cached(whoisAPI, cache, cfg.LookupCacheTTL),
			sources.Cached[time.Time](sources.NewWhoisCommand(cfg.WhoisCommand, cfg.WhoisTimeout, loc), cache, cfg.LookupCacheTTL),
		),
		HTML: sources.NewChain[string]("html", observe, sources.NewHTMLFetcher(cfg.HTTPTimeout)),
	}
}

func limiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

func pruneRuns(db *pg.DB, days int) jobrunner.Job {
	return func(ctx context.Context, run *jobrunner.Run) error {
		n, err := db.PruneJobRuns(ctx, days)
		if err != nil {
			return fmt.Errorf("prune job runs: %w", err)
		}
		run.Infof("removed %d job run(s) older than %d day(s)", n, days)
		return nil
	}
}

// schedules maps the configured cadences onto registered jobs.
func (a *app) schedules() []jobrunner.Schedule {
	out := make([]jobrunner.Schedule, 0, len(monitor.Jobs)+1)
	for _, job := range monitor.Jobs {
		if spec := a.cfg.Schedules[job]; spec != "" {
			out = append(out, jobrunner.Schedule{Job: job, Spec: spec})
		}
	}
	if a.db != nil && a.cfg.JobRunRetention > 0 {
		out = append(out, jobrunner.Schedule{Job: jobPruneRuns, Spec: "04:00"})
	}
	return out
}

func (a *app) api() *httpadapter.Server {
	return httpadapter.New(a.portfolio, a.runner, a.monitor, a.store, httpadapter.Options{
		Location:    a.cfg.Location,
		CORSOrigins: a.cfg.CORSOrigins,
		Metrics:     a.metrics,
		Gatherer:    a.registry,
	})
}
