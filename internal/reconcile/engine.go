package reconcile

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"domainwatch/internal/changelog"
	"domainwatch/internal/domain"
	"domainwatch/internal/fingerprint"
	"domainwatch/internal/ports"
)

// Engine applies reconciliation outcomes. Every write is compared against the
// stored value first so unchanged facts cost no write and no history entry.
type Engine struct {
	store    ports.Store
	location *time.Location
	prune    bool
	// Now is the clock; tests replace it.
	Now func() time.Time
}

func New(store ports.Store, loc *time.Location, prune bool) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{store: store, location: loc, prune: prune, Now: time.Now}
}

// Clock returns the current time in the engine's location.
func (e *Engine) Clock() time.Time { return e.Now().In(e.location) }

func (e *Engine) Location() *time.Location { return e.location }

// ApplyDomainStatus evaluates the next status of d and persists it with a
// system status_change entry when it differs.
func (e *Engine) ApplyDomainStatus(ctx context.Context, d domain.Domain, reachable bool) (domain.DomainStatus, bool, error) {
	now := e.Clock()
	next := NextDomainStatus(d.ExpiresAt, reachable, now)
	if next == d.Status {
		return next, false, nil
	}
	if err := e.SetDomainStatus(ctx, d.ID, next, nil); err != nil {
		return d.Status, false, err
	}
	log.WithFields(log.Fields{"domain": d.Name, "from": d.Status, "to": next}).Info("domain status changed")
	return next, true, nil
}

// SetDomainStatus writes status on behalf of actor (nil for the system).
func (e *Engine) SetDomainStatus(ctx context.Context, id string, status domain.DomainStatus, actor *string) error {
	return e.store.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		return changelog.Observe(repos, actor, e.Clock).UpdateDomainStatus(ctx, id, status)
	})
}

// ApplyDomainExpiry stores the registration expiry when it changed.
func (e *Engine) ApplyDomainExpiry(ctx context.Context, d domain.Domain, expiresAt time.Time) (bool, error) {
	if d.ExpiresAt != nil && d.ExpiresAt.Equal(expiresAt) {
		return false, nil
	}
	if err := e.store.UpdateDomainExpiry(ctx, d.ID, &expiresAt); err != nil {
		return false, fmt.Errorf("update expiry of %s: %w", d.Name, err)
	}
	return true, nil
}

// ApplyCertificate records a freshly resolved expiry and the status derived
// from it. Expired certificates are left alone. Certificate writes are not
// audited.
func (e *Engine) ApplyCertificate(ctx context.Context, c domain.Certificate, expiresAt time.Time) (domain.CertificateStatus, bool, error) {
	if c.Status == domain.CertificateExpired {
		return c.Status, false, nil
	}
	status := CertificateStatusAt(&expiresAt, e.Clock())
	if c.Status == status && c.ExpiresAt != nil && c.ExpiresAt.Equal(expiresAt) {
		return status, false, nil
	}
	if err := e.store.UpdateCertificate(ctx, c.ID, &expiresAt, status); err != nil {
		return c.Status, false, fmt.Errorf("update certificate %s: %w", c.ID, err)
	}
	return status, true, nil
}

// RefreshCertificateStatus re-derives status from the stored expiry when no
// fresh expiry is available.
func (e *Engine) RefreshCertificateStatus(ctx context.Context, c domain.Certificate) (domain.CertificateStatus, bool, error) {
	if c.Status == domain.CertificateExpired {
		return c.Status, false, nil
	}
	status := CertificateStatusAt(c.ExpiresAt, e.Clock())
	if status == c.Status {
		return status, false, nil
	}
	if err := e.store.UpdateCertificate(ctx, c.ID, c.ExpiresAt, status); err != nil {
		return c.Status, false, fmt.Errorf("update certificate %s: %w", c.ID, err)
	}
	return status, true, nil
}

// TechnologyResult counts the writes applied for one domain.
type TechnologyResult struct {
	Created int
	Updated int
	Deleted int
}

func (r TechnologyResult) Changed() bool { return r.Created+r.Updated+r.Deleted > 0 }

// ApplyTechnologies reconciles one domain's technology set in a single unit
// of work, history entries included.
func (e *Engine) ApplyTechnologies(ctx context.Context, domainID string, detected []fingerprint.Detection) (TechnologyResult, error) {
	var res TechnologyResult
	err := e.store.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		existing, err := repos.ListTechnologies(ctx, domainID)
		if err != nil {
			return fmt.Errorf("list technologies: %w", err)
		}
		plan := PlanTechnologies(domainID, existing, detected, e.prune)
		if plan.Empty() {
			return nil
		}
		obs := changelog.Observe(repos, nil, e.Clock)
		for i := range plan.Create {
			if err := obs.CreateTechnology(ctx, &plan.Create[i]); err != nil {
				return fmt.Errorf("create technology %s: %w", plan.Create[i].Name, err)
			}
			res.Created++
		}
		for _, u := range plan.Update {
			if err := obs.UpdateTechnology(ctx, u.ID, u.Version, domain.TechnologyUpToDate); err != nil {
				return fmt.Errorf("update technology %s: %w", u.Name, err)
			}
			res.Updated++
		}
		for _, t := range plan.Delete {
			if err := obs.DeleteTechnology(ctx, t.ID); err != nil {
				return fmt.Errorf("delete technology %s: %w", t.Name, err)
			}
			res.Deleted++
		}
		return nil
	})
	if err != nil {
		return TechnologyResult{}, err
	}
	return res, nil
}

// ApplyContractStatus moves an active contract to inactive or expired when
// its end date requires it.
func (e *Engine) ApplyContractStatus(ctx context.Context, c domain.Contract) (domain.ContractStatus, bool, error) {
	next := NextContractStatus(c, e.Clock())
	if next == c.Status {
		return next, false, nil
	}
	if err := e.store.UpdateContractStatus(ctx, c.ID, next); err != nil {
		return c.Status, false, fmt.Errorf("update contract %s: %w", c.ID, err)
	}
	return next, true, nil
}
