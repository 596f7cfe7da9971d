package domain

import "time"

// Core entities of the portfolio. API payloads are shaped in
// internal/adapters/http; keep these decoupled from the wire format.

type DomainStatus string

const (
	DomainActive   DomainStatus = "active"
	DomainInactive DomainStatus = "inactive"
	DomainExpired  DomainStatus = "expired"
)

func (s DomainStatus) Valid() bool {
	switch s {
	case DomainActive, DomainInactive, DomainExpired:
		return true
	}
	return false
}

// Domain is a registrable name tracked on behalf of exactly one client.
type Domain struct {
	ID        string
	Name      string
	ClientID  string
	ExpiresAt *time.Time // registration expiry, nil until resolved
	Status    DomainStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CertificateStatus string

const (
	CertificateValid   CertificateStatus = "valid"
	CertificateToRenew CertificateStatus = "to-renew"
	CertificateExpired CertificateStatus = "expired"
	CertificateUnknown CertificateStatus = "unknown"
)

type Certificate struct {
	ID        string
	DomainID  string
	ExpiresAt *time.Time
	Status    CertificateStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	VersionUnknown     = "unknown"
	TechnologyUpToDate = "up to date"
)

// Technology is unique per (DomainID, Name); the reconciler enforces it.
type Technology struct {
	ID        string
	DomainID  string
	Name      string
	Version   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HistoryAction string

const (
	ActionCreation            HistoryAction = "creation"
	ActionStatusChange        HistoryAction = "status_change"
	ActionTechnologyDetection HistoryAction = "technology_detection"
	ActionTechnologyChange    HistoryAction = "technology_change"
	ActionTechnologyDeletion  HistoryAction = "technology_deletion"
)

// HistoryEntry is append-only. A nil UserID marks a system action.
type HistoryEntry struct {
	ID                   string
	DomainID             string
	Action               HistoryAction
	OldValue             *string
	NewValue             *string
	OldTechnologyName    *string
	OldTechnologyVersion *string
	TechnologyName       *string
	TechnologyVersion    *string
	UserID               *string
	CreatedAt            time.Time
}

type Client struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractInactive ContractStatus = "inactive"
	ContractExpired  ContractStatus = "expired"
)

// Contract is a maintenance agreement between the agency and a client.
type Contract struct {
	ID        string
	ClientID  string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    ContractStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StringPtr is a small helper for the nullable history columns.
func StringPtr(s string) *string { return &s }
