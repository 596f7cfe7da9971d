// Package reconcile turns freshly observed facts into the minimal set of
// writes against the store.
package reconcile

import (
	"time"

	"domainwatch/internal/domain"
)

const (
	// RenewalThreshold is how close to expiry a certificate becomes to-renew.
	RenewalThreshold = 7 * 24 * time.Hour
	// ExpiringSoonWindow is the rolling reporting window. It is not used for
	// domain status transitions.
	ExpiringSoonWindow = 30 * 24 * time.Hour
)

// StartOfNextMonth returns midnight of the first day of the month after now,
// in now's location.
func StartOfNextMonth(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, now.Location())
}

// EndsThisMonth reports whether t falls after now and before the next
// calendar month starts.
func EndsThisMonth(t, now time.Time) bool {
	return t.After(now) && t.Before(StartOfNextMonth(now))
}

// NextDomainStatus evaluates the registration expiry against now first and
// only then falls back to reachability. A nil expiry means unknown. The result
// does not depend on the stored status, so a renewed expired domain recovers.
func NextDomainStatus(expiresAt *time.Time, reachable bool, now time.Time) domain.DomainStatus {
	if expiresAt != nil {
		if !expiresAt.After(now) {
			return domain.DomainExpired
		}
		if EndsThisMonth(*expiresAt, now) {
			return domain.DomainInactive
		}
	}
	if reachable {
		return domain.DomainActive
	}
	return domain.DomainInactive
}

// CertificateStatusAt is a pure function of expiry and now.
func CertificateStatusAt(expiresAt *time.Time, now time.Time) domain.CertificateStatus {
	switch {
	case expiresAt == nil:
		return domain.CertificateUnknown
	case !expiresAt.After(now):
		return domain.CertificateExpired
	case !expiresAt.After(now.Add(RenewalThreshold)):
		return domain.CertificateToRenew
	default:
		return domain.CertificateValid
	}
}

// CertificateDue reports whether a certificate should be re-checked.
// Expired certificates are terminal.
func CertificateDue(c domain.Certificate, now time.Time) bool {
	if c.Status == domain.CertificateExpired {
		return false
	}
	return c.ExpiresAt == nil || !c.ExpiresAt.After(now.Add(RenewalThreshold))
}

// NextContractStatus only moves active contracts. Inactive and expired
// contracts are returned unchanged.
func NextContractStatus(c domain.Contract, now time.Time) domain.ContractStatus {
	if c.Status != domain.ContractActive {
		return c.Status
	}
	if !c.EndsAt.After(now) {
		return domain.ContractExpired
	}
	if EndsThisMonth(c.EndsAt, now) {
		return domain.ContractInactive
	}
	return c.Status
}

// ExpiringSoon reports whether t is in (now, now+window].
func ExpiringSoon(t *time.Time, now time.Time, window time.Duration) bool {
	if t == nil {
		return false
	}
	return t.After(now) && !t.After(now.Add(window))
}

// DefaultRegistrationExpiry is the fallback when no source knows the
// registration expiry: one year from now as a calendar date.
func DefaultRegistrationExpiry(now time.Time) time.Time {
	y, m, d := now.AddDate(1, 0, 0).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
