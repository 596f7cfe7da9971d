package sources

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// BrowserUserAgent is sent when fetching pages, some hosts refuse bare clients.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const maxRedirects = 10

// maxBodyBytes caps how much of a page is read for fingerprinting.
const maxBodyBytes = 5 << 20

// NewInsecureClient returns an HTTP client that follows redirects and does not
// verify the peer certificate chain. The targets are checked for reachability,
// not for CA trust.
func NewInsecureClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// Liveness reports whether https://<domain>/ answers with a 2xx response.
// A non-2xx answer is a result (false); a transport failure is no result.
type Liveness struct {
	Client *http.Client
	// Scheme defaults to https.
	Scheme string
}

func NewLiveness(timeout time.Duration) *Liveness {
	return &Liveness{Client: NewInsecureClient(timeout)}
}

func (l *Liveness) Name() string { return "https-liveness" }

func (l *Liveness) Lookup(ctx context.Context, domain string) (bool, bool) {
	logger := log.WithFields(log.Fields{"source": l.Name(), "domain": domain})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL(l.Scheme, domain), nil)
	if err != nil {
		logger.Warnf("building request: %v", err)
		return false, false
	}
	req.Header.Set("User-Agent", BrowserUserAgent)
	resp, err := l.Client.Do(req)
	if err != nil {
		logger.Warnf("liveness check failed: %v", err)
		return false, false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return resp.StatusCode >= 200 && resp.StatusCode < 300, true
}

// HTMLFetcher downloads the homepage of a domain.
type HTMLFetcher struct {
	Client *http.Client
	Scheme string
}

func NewHTMLFetcher(timeout time.Duration) *HTMLFetcher {
	return &HTMLFetcher{Client: NewInsecureClient(timeout)}
}

func (f *HTMLFetcher) Name() string { return "homepage" }

func (f *HTMLFetcher) Lookup(ctx context.Context, domain string) (string, bool) {
	logger := log.WithFields(log.Fields{"source": f.Name(), "domain": domain})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL(f.Scheme, domain), nil)
	if err != nil {
		logger.Warnf("building request: %v", err)
		return "", false
	}
	req.Header.Set("User-Agent", BrowserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	resp, err := f.Client.Do(req)
	if err != nil {
		logger.Warnf("fetching page: %v", err)
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusForbidden {
		logger.Warn("access denied (403): the server blocked the request")
		return "", false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warnf("unexpected status %d", resp.StatusCode)
		return "", false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Warnf("reading body: %v", err)
		return "", false
	}
	return string(body), true
}

func baseURL(scheme, domain string) string {
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + domain + "/"
}
