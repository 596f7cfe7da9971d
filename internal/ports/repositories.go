package ports

import (
	"context"
	"time"

	"domainwatch/internal/domain"
)

// DomainRepository stores domains keyed by id, unique by name.
type DomainRepository interface {
	CreateDomain(ctx context.Context, d *domain.Domain) error
	GetDomain(ctx context.Context, id string) (domain.Domain, error)
	GetDomainByName(ctx context.Context, name string) (domain.Domain, error)
	// ListDomains returns up to limit domains ordered by id, strictly after afterID.
	ListDomains(ctx context.Context, afterID string, limit int) ([]domain.Domain, error)
	UpdateDomainStatus(ctx context.Context, id string, status domain.DomainStatus) error
	UpdateDomainExpiry(ctx context.Context, id string, expiresAt *time.Time) error
	// DeleteDomain removes the domain with its certificates, technologies and history.
	DeleteDomain(ctx context.Context, id string) error
}

// CertificateRepository tracks TLS certificates per domain.
type CertificateRepository interface {
	CreateCertificate(ctx context.Context, c *domain.Certificate) error
	GetCertificateByDomain(ctx context.Context, domainID string) (domain.Certificate, error)
	// ListCertificatesDue returns non-expired certificates whose expiry is unknown
	// or falls on or before threshold, ordered by id, strictly after afterID.
	ListCertificatesDue(ctx context.Context, threshold time.Time, afterID string, limit int) ([]domain.Certificate, error)
	ListCertificates(ctx context.Context) ([]domain.Certificate, error)
	UpdateCertificate(ctx context.Context, id string, expiresAt *time.Time, status domain.CertificateStatus) error
}

// TechnologyRepository stores detected technologies.
type TechnologyRepository interface {
	ListTechnologies(ctx context.Context, domainID string) ([]domain.Technology, error)
	GetTechnology(ctx context.Context, id string) (domain.Technology, error)
	CreateTechnology(ctx context.Context, t *domain.Technology) error
	UpdateTechnology(ctx context.Context, id, version, status string) error
	DeleteTechnology(ctx context.Context, id string) error
}

// HistoryRepository is append-only.
type HistoryRepository interface {
	AppendHistory(ctx context.Context, e *domain.HistoryEntry) error
	// ListHistory returns newest first; an empty domainID lists every domain.
	ListHistory(ctx context.Context, domainID string, limit int) ([]domain.HistoryEntry, error)
}

type ClientRepository interface {
	CreateClient(ctx context.Context, c *domain.Client) error
	GetClient(ctx context.Context, id string) (domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type ContractRepository interface {
	CreateContract(ctx context.Context, c *domain.Contract) error
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	ListContractsByStatus(ctx context.Context, status domain.ContractStatus, afterID string, limit int) ([]domain.Contract, error)
	UpdateContractStatus(ctx context.Context, id string, status domain.ContractStatus) error
}

// Repositories is the full set of record stores, either pooled or bound to a transaction.
type Repositories interface {
	DomainRepository
	CertificateRepository
	TechnologyRepository
	HistoryRepository
	ClientRepository
	ContractRepository
}
