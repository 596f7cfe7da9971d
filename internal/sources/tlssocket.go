package sources

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
)

// TLSSocket reads the leaf certificate expiry straight from a TLS handshake
// on port 443. Peer verification is off: an expired or self-signed
// certificate still has an expiry date worth reporting.
type TLSSocket struct {
	Port        string
	DialTimeout time.Duration
	Location    *time.Location
}

func NewTLSSocket(timeout time.Duration, loc *time.Location) *TLSSocket {
	return &TLSSocket{Port: "443", DialTimeout: timeout, Location: loc}
}

func (s *TLSSocket) Name() string { return "tls-socket" }

func (s *TLSSocket) Lookup(ctx context.Context, domain string) (time.Time, bool) {
	logger := log.WithFields(log.Fields{"source": s.Name(), "domain": domain})
	host := NormalizeName(domain)
	port := s.Port
	if port == "" {
		port = "443"
	}
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: s.DialTimeout},
		Config: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true, //nolint:gosec
		},
	}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		logger.Warnf("tls handshake failed: %v", err)
		return time.Time{}, false
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		logger.Warn("no peer certificate presented")
		return time.Time{}, false
	}
	return CalendarDate(state.PeerCertificates[0].NotAfter, s.Location), true
}
