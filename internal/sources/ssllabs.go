package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultSSLLabsURL = "https://api.ssllabs.com/api/v3/analyze"

// SSLLabs reads the certificate "not after" date from the SSL Labs analysis
// API. Assessments run asynchronously on their side, so a pending answer is
// polled a bounded number of times.
type SSLLabs struct {
	Endpoint     string
	Client       *http.Client
	PollAttempts int
	PollInterval time.Duration
	Location     *time.Location
}

// NewSSLLabs builds the API source. The client skips TLS verification of the
// API call itself.
// TODO: verify the api.ssllabs.com chain once deployments ship a CA bundle.
func NewSSLLabs(endpoint string, timeout time.Duration, attempts int, interval time.Duration, loc *time.Location) *SSLLabs {
	if endpoint == "" {
		endpoint = DefaultSSLLabsURL
	}
	if attempts < 1 {
		attempts = 1
	}
	return &SSLLabs{
		Endpoint:     endpoint,
		Client:       NewInsecureClient(timeout),
		PollAttempts: attempts,
		PollInterval: interval,
		Location:     loc,
	}
}

func (s *SSLLabs) Name() string { return "ssllabs" }

type sslLabsReport struct {
	Status        string `json:"status"`
	StatusMessage string `json:"statusMessage"`
	Endpoints     []struct {
		Details struct {
			Cert struct {
				NotAfter json.RawMessage `json:"notAfter"`
			} `json:"cert"`
		} `json:"details"`
	} `json:"endpoints"`
	Certs []struct {
		NotAfter json.RawMessage `json:"notAfter"`
	} `json:"certs"`
}

func (s *SSLLabs) Lookup(ctx context.Context, domain string) (time.Time, bool) {
	logger := log.WithFields(log.Fields{"source": s.Name(), "domain": domain})
	host := NormalizeName(domain)
	for attempt := 1; attempt <= s.PollAttempts; attempt++ {
		report, err := s.analyze(ctx, host, attempt == 1)
		if err != nil {
			logger.Warnf("ssl labs request failed: %v", err)
			return time.Time{}, false
		}
		if t, ok := report.notAfter(s.Location); ok {
			return t, true
		}
		switch report.Status {
		case "DNS", "IN_PROGRESS":
		case "ERROR":
			logger.Warnf("ssl labs assessment error: %s", report.StatusMessage)
			return time.Time{}, false
		default:
			logger.Warnf("no certificate expiry in ssl labs response (status %q)", report.Status)
			return time.Time{}, false
		}
		if attempt == s.PollAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return time.Time{}, false
		case <-time.After(s.PollInterval):
		}
	}
	logger.Warn("ssl labs assessment still pending")
	return time.Time{}, false
}

func (s *SSLLabs) analyze(ctx context.Context, host string, first bool) (*sslLabsReport, error) {
	q := url.Values{}
	q.Set("host", host)
	q.Set("all", "done")
	q.Set("publish", "off")
	if first {
		q.Set("fromCache", "on")
		q.Set("maxAge", "24")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var report sslLabsReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &report, nil
}

func (r *sslLabsReport) notAfter(loc *time.Location) (time.Time, bool) {
	if len(r.Endpoints) > 0 {
		if t, ok := parseNotAfter(r.Endpoints[0].Details.Cert.NotAfter, loc); ok {
			return t, true
		}
	}
	if len(r.Certs) > 0 {
		return parseNotAfter(r.Certs[0].NotAfter, loc)
	}
	return time.Time{}, false
}

// parseNotAfter accepts both the millisecond epoch the API documents and a
// date string.
func parseNotAfter(raw json.RawMessage, loc *time.Location) (time.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, false
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil && ms > 0 {
		return CalendarDate(time.UnixMilli(ms), loc), true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return ParseDate(str, loc)
	}
	return time.Time{}, false
}

// NormalizeName lowercases a user supplied domain and strips any scheme,
// leading "www." and path.
func NormalizeName(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	return d
}
