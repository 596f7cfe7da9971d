package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os/exec"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"
)

const DefaultWhoisAPIURL = "https://api.whoisfreaks.com/v1.0/whois"

// whoisExpiryKeys are the response fields that carry the registration expiry,
// in the order they are trusted. Registries disagree on the name.
var whoisExpiryKeys = []string{
	"expiry_date",
	"whois_domain_expiry_date",
	"expiration_date",
	"registry_expiry_date",
	"expires",
}

// WhoisAPI queries a WHOIS-as-a-service endpoint.
type WhoisAPI struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
	Location *time.Location
}

func NewWhoisAPI(endpoint, apiKey string, timeout time.Duration, loc *time.Location) *WhoisAPI {
	if endpoint == "" {
		endpoint = DefaultWhoisAPIURL
	}
	return &WhoisAPI{Endpoint: endpoint, APIKey: apiKey, Client: NewInsecureClient(timeout), Location: loc}
}

func (w *WhoisAPI) Name() string { return "whois-api" }

func (w *WhoisAPI) Lookup(ctx context.Context, domain string) (time.Time, bool) {
	logger := log.WithFields(log.Fields{"source": w.Name(), "domain": domain})
	if w.APIKey == "" {
		logger.Debug("no api key configured, skipping")
		return time.Time{}, false
	}
	q := url.Values{}
	q.Set("whois", "live")
	q.Set("domainName", RegistrableName(domain))
	q.Set("apiKey", w.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		logger.Warnf("building request: %v", err)
		return time.Time{}, false
	}
	resp, err := w.Client.Do(req)
	if err != nil {
		logger.Warnf("whois api request failed: %v", err)
		return time.Time{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logger.Warnf("whois api returned status %d", resp.StatusCode)
		return time.Time{}, false
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warnf("decoding whois api response: %v", err)
		return time.Time{}, false
	}
	if t, ok := ExpiryFromFields(payload, w.Location); ok {
		return t, true
	}
	logger.Warn("no expiration date found in whois api response")
	return time.Time{}, false
}

// ExpiryFromFields returns the first populated, parseable expiry field.
func ExpiryFromFields(payload map[string]any, loc *time.Location) (time.Time, bool) {
	for _, key := range whoisExpiryKeys {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		if t, ok := ParseDate(s, loc); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// whoisExpiryPatterns match expiry phrasing across registrars. The date is
// always the last capture group.
var whoisExpiryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)expir(?:y|ation) date:\s*(.+)`),
	regexp.MustCompile(`(?i)registrar registration expiration date:\s*(.+)`),
	regexp.MustCompile(`(?i)expires:\s*(.+)`),
	regexp.MustCompile(`(?i)expire on:\s*(.+)`),
	regexp.MustCompile(`(?i)paid-till:\s*(.+)`),
}

// CommandRunner runs an external program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands on the local machine.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// whois exits non-zero on some registries while still printing a record
		if stdout.Len() > 0 {
			return stdout.Bytes(), nil
		}
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// WhoisCommand shells out to the local whois client.
type WhoisCommand struct {
	Command  string
	Timeout  time.Duration
	Run      CommandRunner
	Location *time.Location
}

func NewWhoisCommand(command string, timeout time.Duration, loc *time.Location) *WhoisCommand {
	if command == "" {
		command = "whois"
	}
	return &WhoisCommand{Command: command, Timeout: timeout, Run: ExecRunner, Location: loc}
}

func (w *WhoisCommand) Name() string { return "whois-command" }

func (w *WhoisCommand) Lookup(ctx context.Context, domain string) (time.Time, bool) {
	logger := log.WithFields(log.Fields{"source": w.Name(), "domain": domain})
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}
	out, err := w.Run(ctx, w.Command, RegistrableName(domain))
	if err != nil {
		logger.Warnf("whois command failed: %v", err)
		return time.Time{}, false
	}
	if t, ok := ExpiryFromWhoisText(string(out), w.Location); ok {
		return t, true
	}
	logger.Warn("no expiration date found in whois output")
	return time.Time{}, false
}

// ExpiryFromWhoisText scans raw WHOIS output with each pattern in turn and
// parses the first match.
func ExpiryFromWhoisText(text string, loc *time.Location) (time.Time, bool) {
	for _, re := range whoisExpiryPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, ok := ParseDate(m[len(m)-1], loc); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// RegistrableName reduces a host to its registrable domain (eTLD+1), which is
// what registries answer WHOIS queries for.
func RegistrableName(domain string) string {
	host := NormalizeName(domain)
	if r, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return r
	}
	return host
}
