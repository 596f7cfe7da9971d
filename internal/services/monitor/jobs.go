package monitor

import (
	"context"
	"fmt"
	"time"

	"domainwatch/internal/domain"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/workers/jobrunner"
)

// DomainStatus re-evaluates every domain from its registration expiry and
// a liveness check. A check with no result leaves the domain untouched.
func (s *Service) DomainStatus(ctx context.Context, run *jobrunner.Run) error {
	return s.eachDomain(ctx, func(ctx context.Context, d domain.Domain) {
		if err := s.checkDomainStatus(ctx, run, d); err != nil {
			run.Fail(d.ID, d.Name, err)
			return
		}
		run.Succeed()
	})
}

func (s *Service) checkDomainStatus(ctx context.Context, run *jobrunner.Run, d domain.Domain) error {
	if d.ExpiresAt == nil {
		exp, src := s.resolveRegistrationExpiry(ctx, d.Name)
		if _, err := s.engine.ApplyDomainExpiry(ctx, d, exp); err != nil {
			return err
		}
		d.ExpiresAt = &exp
		run.Infof("%s registration expiry set to %s (source %s)", d.Name, exp.Format(time.DateOnly), src)
	}

	now := s.engine.Clock()
	// Liveness only matters when the expiry does not already decide.
	reachable := true
	if reconcile.NextDomainStatus(d.ExpiresAt, true, now) != reconcile.NextDomainStatus(d.ExpiresAt, false, now) {
		r, _, ok := s.src.Liveness.Resolve(ctx, d.Name)
		if !ok {
			return errNoLiveness
		}
		reachable = r
	}

	status, changed, err := s.engine.ApplyDomainStatus(ctx, d, reachable)
	if err != nil {
		return fmt.Errorf("apply status: %w", err)
	}
	if changed {
		run.Infof("%s status %s -> %s", d.Name, d.Status, status)
	}
	return nil
}

func (s *Service) resolveRegistrationExpiry(ctx context.Context, name string) (time.Time, string) {
	return s.src.RegistrationExpiry.ResolveOr(ctx, name, func() time.Time {
		return reconcile.DefaultRegistrationExpiry(s.engine.Clock())
	})
}

// Certificates re-reads the expiry of every certificate that is unknown or
// inside the renewal threshold. Expired certificates are never revisited.
func (s *Service) Certificates(ctx context.Context, run *jobrunner.Run) error {
	threshold := s.engine.Clock().Add(reconcile.RenewalThreshold)
	fetch := func(ctx context.Context, after string, limit int) ([]domain.Certificate, error) {
		return s.store.ListCertificatesDue(ctx, threshold, after, limit)
	}
	id := func(c domain.Certificate) string { return c.ID }
	return jobrunner.ForEachBatch(ctx, s.batchSize, fetch, id, func(ctx context.Context, batch []domain.Certificate) error {
		return jobrunner.FanOut(ctx, s.concurrency, batch, func(ctx context.Context, c domain.Certificate) {
			s.checkCertificate(ctx, run, c)
		})
	})
}

func (s *Service) checkCertificate(ctx context.Context, run *jobrunner.Run, c domain.Certificate) {
	d, err := s.store.GetDomain(ctx, c.DomainID)
	if err != nil {
		run.Fail(c.ID, c.DomainID, fmt.Errorf("load domain: %w", err))
		return
	}
	exp, src, ok := s.src.CertificateExpiry.Resolve(ctx, d.Name)
	if !ok {
		status, changed, err := s.engine.RefreshCertificateStatus(ctx, c)
		if err != nil {
			run.Fail(c.ID, d.Name, err)
			return
		}
		if changed {
			run.Infof("%s certificate %s from the stored expiry", d.Name, status)
		}
		run.Skip(d.Name, "no certificate source answered")
		return
	}
	status, changed, err := s.engine.ApplyCertificate(ctx, c, exp)
	if err != nil {
		run.Fail(c.ID, d.Name, err)
		return
	}
	if changed {
		run.Infof("%s certificate expires %s (%s, source %s)", d.Name, exp.Format(time.DateOnly), status, src)
	}
	run.Succeed()
}

// Technologies fingerprints every domain's homepage.
func (s *Service) Technologies(ctx context.Context, run *jobrunner.Run) error {
	return s.eachDomain(ctx, func(ctx context.Context, d domain.Domain) {
		s.detectTechnologies(ctx, run, d)
	})
}

// DomainTechnologies returns a job that fingerprints a single domain.
func (s *Service) DomainTechnologies(domainID string) jobrunner.Job {
	return func(ctx context.Context, run *jobrunner.Run) error {
		d, err := s.store.GetDomain(ctx, domainID)
		if err != nil {
			return fmt.Errorf("load domain %s: %w", domainID, err)
		}
		s.detectTechnologies(ctx, run, d)
		return nil
	}
}

func (s *Service) detectTechnologies(ctx context.Context, run *jobrunner.Run, d domain.Domain) {
	html, _, ok := s.src.HTML.Resolve(ctx, d.Name)
	if !ok {
		run.Skip(d.Name, "homepage unavailable")
		return
	}
	detected := s.fp.Detect(html)
	if len(detected) == 0 {
		run.Skip(d.Name, "no technology detected")
		return
	}
	res, err := s.engine.ApplyTechnologies(ctx, d.ID, detected)
	if err != nil {
		run.Fail(d.ID, d.Name, err)
		return
	}
	if res.Changed() {
		run.Infof("%s technologies: %d new, %d updated, %d removed", d.Name, res.Created, res.Updated, res.Deleted)
	}
	run.Succeed()
}

// Contracts moves active maintenance contracts that end this month or have
// ended.
func (s *Service) Contracts(ctx context.Context, run *jobrunner.Run) error {
	fetch := func(ctx context.Context, after string, limit int) ([]domain.Contract, error) {
		return s.store.ListContractsByStatus(ctx, domain.ContractActive, after, limit)
	}
	id := func(c domain.Contract) string { return c.ID }
	return jobrunner.ForEachBatch(ctx, s.batchSize, fetch, id, func(ctx context.Context, batch []domain.Contract) error {
		for _, c := range batch {
			status, changed, err := s.engine.ApplyContractStatus(ctx, c)
			if err != nil {
				run.Fail(c.ID, "contract "+c.ID, err)
				continue
			}
			if changed {
				run.Infof("contract %s %s -> %s", c.ID, c.Status, status)
			}
			run.Succeed()
		}
		return nil
	})
}

// DomainExpiry refreshes registration expiry from WHOIS. Without an answer
// the stored value is kept.
func (s *Service) DomainExpiry(ctx context.Context, run *jobrunner.Run) error {
	return s.eachDomain(ctx, func(ctx context.Context, d domain.Domain) {
		exp, src, ok := s.src.RegistrationExpiry.Resolve(ctx, d.Name)
		if !ok {
			run.Skip(d.Name, "no registration source answered")
			return
		}
		changed, err := s.engine.ApplyDomainExpiry(ctx, d, exp)
		if err != nil {
			run.Fail(d.ID, d.Name, err)
			return
		}
		if changed {
			run.Infof("%s registration expiry %s (source %s)", d.Name, exp.Format(time.DateOnly), src)
		}
		run.Succeed()
	})
}
