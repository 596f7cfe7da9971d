package sources

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostOf(srv *httptest.Server) string {
	return strings.TrimPrefix(strings.TrimPrefix(srv.URL, "https://"), "http://")
}

func TestLiveness(t *testing.T) {
	ok := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()
	down := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	l := NewLiveness(2 * time.Second)

	reachable, got := l.Lookup(context.Background(), hostOf(ok))
	require.True(t, got)
	assert.True(t, reachable)

	reachable, got = l.Lookup(context.Background(), hostOf(down))
	require.True(t, got)
	assert.False(t, reachable)
}

func TestLiveness_FollowsRedirects(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, srv.URL+"/home", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reachable, got := NewLiveness(2*time.Second).Lookup(context.Background(), hostOf(srv))
	require.True(t, got)
	assert.True(t, reachable)
}

func TestLiveness_TimeoutIsNoResult(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, got := NewLiveness(100*time.Millisecond).Lookup(context.Background(), hostOf(srv))
	assert.False(t, got)
}

func TestHTMLFetcher(t *testing.T) {
	var ua atomic.Value
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua.Store(r.UserAgent())
		_, _ = w.Write([]byte("<html>wp-content</html>"))
	}))
	defer srv.Close()

	body, ok := NewHTMLFetcher(2*time.Second).Lookup(context.Background(), hostOf(srv))
	require.True(t, ok)
	assert.Equal(t, "<html>wp-content</html>", body)
	assert.Equal(t, BrowserUserAgent, ua.Load())
}

func TestHTMLFetcher_ForbiddenIsNoResult(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, ok := NewHTMLFetcher(2*time.Second).Lookup(context.Background(), hostOf(srv))
	assert.False(t, ok)
}

func TestSSLLabs_ReadsEndpointCertificate(t *testing.T) {
	notAfter := time.Date(2026, time.December, 3, 12, 0, 0, 0, time.UTC)
	var host string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host = r.URL.Query().Get("host")
		_, _ = w.Write([]byte(`{"status":"READY","endpoints":[{"details":{"cert":{"notAfter":` +
			jsonInt(notAfter.UnixMilli()) + `}}}]}`))
	}))
	defer srv.Close()

	s := NewSSLLabs(srv.URL, time.Second, 1, 0, time.UTC)
	got, ok := s.Lookup(context.Background(), "https://www.Example.com/path")
	require.True(t, ok)
	assert.Equal(t, date(2026, time.December, 3), got)
	assert.Equal(t, "example.com", host)
}

func TestSSLLabs_PollsPendingAssessment(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			_, _ = w.Write([]byte(`{"status":"IN_PROGRESS"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"READY","certs":[{"notAfter":"2027-01-15T00:00:00Z"}]}`))
	}))
	defer srv.Close()

	got, ok := NewSSLLabs(srv.URL, time.Second, 3, time.Millisecond, time.UTC).Lookup(context.Background(), "example.com")
	require.True(t, ok)
	assert.Equal(t, date(2027, time.January, 15), got)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSSLLabs_ErrorsAreNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("host") {
		case "broken.com":
			_, _ = w.Write([]byte(`not json`))
		case "errored.com":
			_, _ = w.Write([]byte(`{"status":"ERROR","statusMessage":"Unable to resolve domain name"}`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer srv.Close()

	s := NewSSLLabs(srv.URL, time.Second, 2, time.Millisecond, time.UTC)
	for _, d := range []string{"broken.com", "errored.com", "limited.com"} {
		_, ok := s.Lookup(context.Background(), d)
		assert.False(t, ok, d)
	}
}

func TestTLSSocket_ReadsPeerCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	host, port, err := net.SplitHostPort(hostOf(srv))
	require.NoError(t, err)

	s := NewTLSSocket(2*time.Second, time.UTC)
	s.Port = port
	got, ok := s.Lookup(context.Background(), host)
	require.True(t, ok)
	assert.Equal(t, CalendarDate(srv.Certificate().NotAfter, time.UTC), got)
}

func TestTLSSocket_RefusedIsNoResult(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, port, _ := net.SplitHostPort(l.Addr().String())
	require.NoError(t, l.Close())

	s := NewTLSSocket(time.Second, time.UTC)
	s.Port = port
	_, ok := s.Lookup(context.Background(), "127.0.0.1")
	assert.False(t, ok)
}

func TestWhoisAPI_TriesFieldNamesInOrder(t *testing.T) {
	cases := map[string]struct {
		body string
		want time.Time
		ok   bool
	}{
		"expiry_date":          {`{"expiry_date":"2026-05-01"}`, date(2026, time.May, 1), true},
		"whois domain field":   {`{"whois_domain_expiry_date":"2026-06-02T10:00:00Z"}`, date(2026, time.June, 2), true},
		"first populated wins": {`{"expiry_date":"","registry_expiry_date":"2026-07-03","expires":"2030-01-01"}`, date(2026, time.July, 3), true},
		"expires":              {`{"expires":"03-Aug-2026"}`, date(2026, time.August, 3), true},
		"none":                 {`{"domain_name":"example.com"}`, time.Time{}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "example.com", r.URL.Query().Get("domainName"))
				assert.Equal(t, "key", r.URL.Query().Get("apiKey"))
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			got, ok := NewWhoisAPI(srv.URL, "key", time.Second, time.UTC).Lookup(context.Background(), "blog.example.com")
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWhoisAPI_NoKeySkipsCall(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	_, ok := NewWhoisAPI(srv.URL, "", time.Second, time.UTC).Lookup(context.Background(), "example.com")
	assert.False(t, ok)
	assert.False(t, called)
}

func TestWhoisCommand_ParsesOutput(t *testing.T) {
	w := NewWhoisCommand("whois", time.Second, time.UTC)
	var gotArgs []string
	w.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotArgs = append([]string{name}, args...)
		return []byte("Domain Name: EXAMPLE.COM\r\nRegistry Expiry Date: 2026-05-01T04:00:00Z\r\nRegistrar: X\r\n"), nil
	}

	got, ok := w.Lookup(context.Background(), "www.shop.example.com")
	require.True(t, ok)
	assert.Equal(t, date(2026, time.May, 1), got)
	assert.Equal(t, []string{"whois", "example.com"}, gotArgs)
}

func TestWhoisCommand_FailureIsNoResult(t *testing.T) {
	w := NewWhoisCommand("whois", time.Second, time.UTC)
	w.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("exec: \"whois\": executable file not found in $PATH")
	}

	_, ok := w.Lookup(context.Background(), "example.com")
	assert.False(t, ok)
}

func TestExpiryFromWhoisText_Patterns(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"Registrar Registration Expiration Date: 2026-09-10T00:00:00Z", date(2026, time.September, 10)},
		{"expires: 2026-10-11", date(2026, time.October, 11)},
		{"Record will expire on: 12-Nov-2026", date(2026, time.November, 12)},
		{"paid-till:     2026-12-13T21:00:00Z", date(2026, time.December, 13)},
		{"EXPIRATION DATE: 2026.01.14", date(2026, time.January, 14)},
		{"Expiry date:  14-Feb-2027 23:59:59 UTC\n x", date(2027, time.February, 14)},
	}
	for _, tc := range cases {
		got, ok := ExpiryFromWhoisText(tc.text, time.UTC)
		require.True(t, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}

	_, ok := ExpiryFromWhoisText("No match for domain", time.UTC)
	assert.False(t, ok)
}

func TestNormalizeAndRegistrable(t *testing.T) {
	assert.Equal(t, "example.com", NormalizeName(" HTTPS://www.Example.com/about?x=1 "))
	assert.Equal(t, "blog.example.co.uk", NormalizeName("http://blog.example.co.uk"))
	assert.Equal(t, "example.co.uk", RegistrableName("blog.example.co.uk"))
}

func TestParseDate_LocationDay(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	got, ok := ParseDate("2026-05-01", paris)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, paris), got)

	_, ok = ParseDate("soon", paris)
	assert.False(t, ok)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
