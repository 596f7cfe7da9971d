package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"domainwatch/internal/domain"
)

var now = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestStartOfNextMonth(t *testing.T) {
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), StartOfNextMonth(now))
	dec := time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), StartOfNextMonth(dec))
}

func TestNextDomainStatus(t *testing.T) {
	cases := []struct {
		name      string
		expiry    *time.Time
		reachable bool
		want      domain.DomainStatus
	}{
		{"expired yesterday", at(2026, time.October, 13), true, domain.DomainExpired},
		{"expired today at midnight", at(2026, time.October, 14), true, domain.DomainExpired},
		{"expired from inactive", at(2025, time.January, 1), false, domain.DomainExpired},
		{"expires later this month", at(2026, time.October, 31), true, domain.DomainInactive},
		{"expires next month within 30 days", at(2026, time.November, 2), true, domain.DomainActive},
		{"far expiry unreachable", at(2027, time.October, 14), false, domain.DomainInactive},
		{"far expiry reachable again", at(2027, time.October, 14), true, domain.DomainActive},
		{"unknown expiry reachable", nil, true, domain.DomainActive},
		{"renewed expired domain", at(2027, time.October, 14), true, domain.DomainActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextDomainStatus(tc.expiry, tc.reachable, now))
		})
	}
}

func TestNextDomainStatus_CalendarMonthNotRollingWindow(t *testing.T) {
	late := time.Date(2026, time.October, 28, 12, 0, 0, 0, time.UTC)
	// Four days away but next month.
	assert.Equal(t, domain.DomainActive, NextDomainStatus(at(2026, time.November, 1), true, late))
	assert.True(t, ExpiringSoon(at(2026, time.November, 1), late, ExpiringSoonWindow))
}

func TestCertificateStatusAt(t *testing.T) {
	assert.Equal(t, domain.CertificateUnknown, CertificateStatusAt(nil, now))
	assert.Equal(t, domain.CertificateExpired, CertificateStatusAt(at(2026, time.October, 1), now))
	assert.Equal(t, domain.CertificateToRenew, CertificateStatusAt(at(2026, time.October, 20), now))
	edge := now.Add(RenewalThreshold)
	assert.Equal(t, domain.CertificateToRenew, CertificateStatusAt(&edge, now))
	assert.Equal(t, domain.CertificateValid, CertificateStatusAt(at(2026, time.October, 22), now))
}

func TestCertificateDue(t *testing.T) {
	assert.False(t, CertificateDue(domain.Certificate{Status: domain.CertificateExpired}, now))
	assert.True(t, CertificateDue(domain.Certificate{Status: domain.CertificateUnknown}, now))
	assert.True(t, CertificateDue(domain.Certificate{Status: domain.CertificateValid, ExpiresAt: at(2026, time.October, 18)}, now))
	assert.False(t, CertificateDue(domain.Certificate{Status: domain.CertificateValid, ExpiresAt: at(2027, time.January, 1)}, now))
}

func TestNextContractStatus(t *testing.T) {
	c := domain.Contract{Status: domain.ContractActive, EndsAt: *at(2026, time.October, 1)}
	assert.Equal(t, domain.ContractExpired, NextContractStatus(c, now))

	c.EndsAt = *at(2026, time.October, 30)
	assert.Equal(t, domain.ContractInactive, NextContractStatus(c, now))

	c.EndsAt = *at(2027, time.March, 1)
	assert.Equal(t, domain.ContractActive, NextContractStatus(c, now))

	c = domain.Contract{Status: domain.ContractInactive, EndsAt: *at(2026, time.October, 1)}
	assert.Equal(t, domain.ContractInactive, NextContractStatus(c, now))
}

func TestDefaultRegistrationExpiry(t *testing.T) {
	assert.Equal(t, *at(2027, time.October, 14), DefaultRegistrationExpiry(now))
}
