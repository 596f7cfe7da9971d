// Package portfolio holds the user-facing operations on domains: creation,
// bulk import, manual updates, deletion, history and reports.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"domainwatch/internal/changelog"
	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/sources"
)

type Service struct {
	store        ports.Store
	engine       *reconcile.Engine
	registration sources.Chain[time.Time]
	certificate  sources.Chain[time.Time]
}

func New(store ports.Store, engine *reconcile.Engine, registration, certificate sources.Chain[time.Time]) *Service {
	return &Service{store: store, engine: engine, registration: registration, certificate: certificate}
}

// NewDomain is the input of CreateDomain. An empty Status means active.
type NewDomain struct {
	Name     string `json:"domain"`
	ClientID string `json:"client_id"`
	Status   string `json:"status,omitempty"`
}

// Created is a freshly tracked domain with the sources that answered.
type Created struct {
	Domain            domain.Domain      `json:"domain"`
	Certificate       domain.Certificate `json:"certificate"`
	ExpirationSource  string             `json:"expiration_source"`
	CertificateSource string             `json:"certificate_source,omitempty"`
}

// ValidateName normalises raw and checks it has a registrable suffix.
func ValidateName(raw string) (string, error) {
	name := sources.NormalizeName(raw)
	if name == "" {
		return "", errors.New("is required")
	}
	if strings.ContainsAny(name, " _/") || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return "", fmt.Errorf("%q is not a domain name", raw)
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(name); err != nil {
		return "", fmt.Errorf("%q has no registrable suffix", raw)
	}
	return name, nil
}

func (in NewDomain) validate() (string, domain.DomainStatus, []FieldError) {
	var errs []FieldError
	name, err := ValidateName(in.Name)
	if err != nil {
		errs = append(errs, FieldError{Field: "domain", Message: err.Error()})
	}
	if strings.TrimSpace(in.ClientID) == "" {
		errs = append(errs, FieldError{Field: "client_id", Message: "is required"})
	}
	status := domain.DomainActive
	if in.Status != "" {
		status = domain.DomainStatus(strings.ToLower(strings.TrimSpace(in.Status)))
		if !status.Valid() {
			errs = append(errs, FieldError{Field: "status", Message: fmt.Sprintf("%q is not one of active, inactive, expired", in.Status)})
		}
	}
	return name, status, errs
}

// CreateDomain resolves the registration and certificate expiry, then stores
// the domain, its certificate and a creation entry in one unit of work.
func (s *Service) CreateDomain(ctx context.Context, in NewDomain, actor *string) (Created, error) {
	name, status, errs := in.validate()
	if len(errs) > 0 {
		return Created{}, &ValidationError{Errors: errs}
	}
	if _, err := s.store.GetClient(ctx, in.ClientID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Created{}, &ValidationError{Errors: []FieldError{{Field: "client_id", Message: "unknown client"}}}
		}
		return Created{}, err
	}
	if _, err := s.store.GetDomainByName(ctx, name); err == nil {
		return Created{}, fmt.Errorf("domain %s: %w", name, ports.ErrConflict)
	} else if !errors.Is(err, ports.ErrNotFound) {
		return Created{}, err
	}

	now := s.engine.Clock()
	expiresAt, expSource := s.registration.ResolveOr(ctx, name, func() time.Time {
		return reconcile.DefaultRegistrationExpiry(now)
	})
	var certExpiry *time.Time
	certSource := ""
	if v, src, ok := s.certificate.Resolve(ctx, name); ok {
		certExpiry, certSource = &v, src
	}

	out := Created{ExpirationSource: expSource, CertificateSource: certSource}
	err := s.store.WithTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		out.Domain = domain.Domain{Name: name, ClientID: in.ClientID, Status: status, ExpiresAt: &expiresAt}
		if err := changelog.Observe(repos, actor, s.engine.Clock).CreateDomain(ctx, &out.Domain); err != nil {
			return fmt.Errorf("create domain: %w", err)
		}
		out.Certificate = domain.Certificate{
			DomainID:  out.Domain.ID,
			ExpiresAt: certExpiry,
			Status:    reconcile.CertificateStatusAt(certExpiry, now),
		}
		if err := repos.CreateCertificate(ctx, &out.Certificate); err != nil {
			return fmt.Errorf("create certificate: %w", err)
		}
		return nil
	})
	if err != nil {
		return Created{}, err
	}
	log.WithFields(log.Fields{"domain": name, "expiration_source": expSource, "certificate_source": certSource}).Info("domain created")
	return out, nil
}

// DomainPatch carries the fields a user may change by hand.
type DomainPatch struct {
	Status    *string    `json:"status,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// UpdateDomain applies a manual change attributed to actor.
func (s *Service) UpdateDomain(ctx context.Context, id string, patch DomainPatch, actor *string) (domain.Domain, error) {
	d, err := s.store.GetDomain(ctx, id)
	if err != nil {
		return domain.Domain{}, err
	}
	if patch.Status == nil && patch.ExpiresAt == nil {
		return domain.Domain{}, &ValidationError{Errors: []FieldError{{Message: "nothing to update"}}}
	}
	if patch.Status != nil {
		status := domain.DomainStatus(strings.ToLower(*patch.Status))
		if !status.Valid() {
			return domain.Domain{}, &ValidationError{Errors: []FieldError{{Field: "status", Message: fmt.Sprintf("%q is not one of active, inactive, expired", *patch.Status)}}}
		}
		if err := s.engine.SetDomainStatus(ctx, id, status, actor); err != nil {
			return domain.Domain{}, err
		}
	}
	if patch.ExpiresAt != nil {
		exp := sources.CalendarDate(*patch.ExpiresAt, s.engine.Location())
		if _, err := s.engine.ApplyDomainExpiry(ctx, d, exp); err != nil {
			return domain.Domain{}, err
		}
	}
	return s.store.GetDomain(ctx, id)
}

func (s *Service) DeleteDomain(ctx context.Context, id string) error {
	if err := s.store.DeleteDomain(ctx, id); err != nil {
		return err
	}
	log.WithField("domain_id", id).Info("domain deleted")
	return nil
}

func (s *Service) GetDomain(ctx context.Context, id string) (domain.Domain, error) {
	return s.store.GetDomain(ctx, id)
}

// ListDomains pages through every domain.
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	const page = 200
	var out []domain.Domain
	after := ""
	for {
		batch, err := s.store.ListDomains(ctx, after, page)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
		if len(batch) < page {
			return out, nil
		}
		after = batch[len(batch)-1].ID
	}
}

func (s *Service) Technologies(ctx context.Context, domainID string) ([]domain.Technology, error) {
	if _, err := s.store.GetDomain(ctx, domainID); err != nil {
		return nil, err
	}
	return s.store.ListTechnologies(ctx, domainID)
}

func (s *Service) Certificate(ctx context.Context, domainID string) (domain.Certificate, error) {
	return s.store.GetCertificateByDomain(ctx, domainID)
}

// History lists entries newest first. An empty domainID lists every domain.
func (s *Service) History(ctx context.Context, domainID string, limit int) ([]domain.HistoryEntry, error) {
	if domainID != "" {
		if _, err := s.store.GetDomain(ctx, domainID); err != nil {
			return nil, err
		}
	}
	return s.store.ListHistory(ctx, domainID, limit)
}
