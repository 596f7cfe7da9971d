package portfolio

import (
	"context"
	"sort"
	"time"

	"domainwatch/internal/domain"
	"domainwatch/internal/reconcile"
)

type ExpiringCertificate struct {
	domain.Certificate
	DomainName string `json:"domain"`
}

// ExpiringReport lists what expires within a rolling window, soonest first.
type ExpiringReport struct {
	Window       time.Duration         `json:"-"`
	Until        time.Time             `json:"until"`
	Domains      []domain.Domain       `json:"domains"`
	Certificates []ExpiringCertificate `json:"certificates"`
}

// Expiring builds the report for a window; zero means the default 30 days.
func (s *Service) Expiring(ctx context.Context, window time.Duration) (ExpiringReport, error) {
	if window <= 0 {
		window = reconcile.ExpiringSoonWindow
	}
	now := s.engine.Clock()
	rep := ExpiringReport{Window: window, Until: now.Add(window), Domains: []domain.Domain{}, Certificates: []ExpiringCertificate{}}

	domains, err := s.ListDomains(ctx)
	if err != nil {
		return ExpiringReport{}, err
	}
	names := make(map[string]string, len(domains))
	for _, d := range domains {
		names[d.ID] = d.Name
		if reconcile.ExpiringSoon(d.ExpiresAt, now, window) {
			rep.Domains = append(rep.Domains, d)
		}
	}

	certs, err := s.store.ListCertificates(ctx)
	if err != nil {
		return ExpiringReport{}, err
	}
	for _, c := range certs {
		if reconcile.ExpiringSoon(c.ExpiresAt, now, window) {
			rep.Certificates = append(rep.Certificates, ExpiringCertificate{Certificate: c, DomainName: names[c.DomainID]})
		}
	}

	sort.SliceStable(rep.Domains, func(i, j int) bool { return rep.Domains[i].ExpiresAt.Before(*rep.Domains[j].ExpiresAt) })
	sort.SliceStable(rep.Certificates, func(i, j int) bool {
		return rep.Certificates[i].ExpiresAt.Before(*rep.Certificates[j].ExpiresAt)
	})
	return rep, nil
}
