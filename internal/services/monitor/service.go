// Package monitor implements the periodic portfolio checks. Each job is one
// finite pass over its eligible records in bounded batches; a failing record
// is reported and the pass moves on.
package monitor

import (
	"context"
	"errors"
	"time"

	"domainwatch/internal/domain"
	"domainwatch/internal/fingerprint"
	"domainwatch/internal/ports"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/sources"
	"domainwatch/internal/workers/jobrunner"
)

const (
	JobDomainStatus = "domain-status"
	JobSSL          = "ssl"
	JobTechnologies = "technologies"
	JobContracts    = "contracts"
	JobDomainExpiry = "domain-expiry"
)

// Jobs lists every job name in a stable order.
var Jobs = []string{JobDomainStatus, JobSSL, JobTechnologies, JobContracts, JobDomainExpiry}

var errNoLiveness = errors.New("liveness check returned no result")

// Sources groups the fallback chains per fact.
type Sources struct {
	Liveness           sources.Chain[bool]
	CertificateExpiry  sources.Chain[time.Time]
	RegistrationExpiry sources.Chain[time.Time]
	HTML               sources.Chain[string]
}

type Options struct {
	BatchSize   int
	Concurrency int
}

type Service struct {
	store       ports.Store
	engine      *reconcile.Engine
	src         Sources
	fp          *fingerprint.Fingerprinter
	batchSize   int
	concurrency int
}

func New(store ports.Store, engine *reconcile.Engine, src Sources, fp *fingerprint.Fingerprinter, opts Options) *Service {
	if fp == nil {
		fp = fingerprint.New()
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = jobrunner.DefaultBatchSize
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Service{
		store:       store,
		engine:      engine,
		src:         src,
		fp:          fp,
		batchSize:   opts.BatchSize,
		concurrency: opts.Concurrency,
	}
}

// Register adds every job to r under its public name.
func (s *Service) Register(r *jobrunner.Runner) {
	r.Register(JobDomainStatus, s.DomainStatus)
	r.Register(JobSSL, s.Certificates)
	r.Register(JobTechnologies, s.Technologies)
	r.Register(JobContracts, s.Contracts)
	r.Register(JobDomainExpiry, s.DomainExpiry)
}

func domainID(d domain.Domain) string { return d.ID }

// eachDomain fans fn out over every domain, batch by batch.
func (s *Service) eachDomain(ctx context.Context, fn func(ctx context.Context, d domain.Domain)) error {
	return jobrunner.ForEachBatch(ctx, s.batchSize, s.store.ListDomains, domainID,
		func(ctx context.Context, batch []domain.Domain) error {
			return jobrunner.FanOut(ctx, s.concurrency, batch, fn)
		})
}
