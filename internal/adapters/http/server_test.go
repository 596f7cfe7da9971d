package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"domainwatch/internal/adapters/memory"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/services/monitor"
	"domainwatch/internal/services/portfolio"
	"domainwatch/internal/sources"
	"domainwatch/internal/telemetry"
	"domainwatch/internal/workers/jobrunner"
)

var now = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

type env struct {
	srv    *httptest.Server
	store  *memory.Store
	runner *jobrunner.Runner
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.New()
	store.SetClock(func() time.Time { return now })
	engine := reconcile.New(store, time.UTC, false)
	engine.Now = func() time.Time { return now }

	noExpiry := sources.NewChain[time.Time]("expiry", nil)
	html := sources.NewChain[string]("html", nil, sources.Func("homepage", func(ctx context.Context, name string) (string, bool) {
		return `<meta name="generator" content="WordPress 6.4.2" /><link href="/wp-content/a.css">`, true
	}))
	live := sources.NewChain[bool]("liveness", nil, sources.Func("https", func(ctx context.Context, name string) (bool, bool) {
		return true, true
	}))

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)
	mon := monitor.New(store, engine, monitor.Sources{Liveness: live, CertificateExpiry: noExpiry, RegistrationExpiry: noExpiry, HTML: html}, nil, monitor.Options{})
	runner := jobrunner.New(metrics, store)
	mon.Register(runner)
	pf := portfolio.New(store, engine, noExpiry, noExpiry)

	s := New(pf, runner, mon, store, Options{Metrics: metrics, Gatherer: reg, CORSOrigins: []string{"https://dash.example"}})
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)
	return &env{srv: srv, store: store, runner: runner}
}

func (e *env) do(t *testing.T, method, path string, body any, headers ...string) (*http.Response, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw := new(bytes.Buffer)
	_, _ = raw.ReadFrom(resp.Body)
	if strings.HasPrefix(strings.TrimSpace(raw.String()), "{") {
		require.NoError(t, json.Unmarshal(raw.Bytes(), &out))
	} else if raw.Len() > 0 {
		out = map[string]any{"_raw": raw.String()}
	}
	return resp, out
}

func (e *env) client(t *testing.T) string {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/clients", map[string]string{"name": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)
	resp, body := e.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateDomain_ReportsDefaultExpirationSource(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)

	resp, body := e.do(t, http.MethodPost, "/domains", map[string]string{"domain": "https://www.Example.com", "client_id": cid})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	d := body["domain"].(map[string]any)
	assert.Equal(t, "example.com", d["domain"])
	assert.Equal(t, "2027-10-14", d["expires_at"])
	assert.Equal(t, "default", body["meta"].(map[string]any)["expiration_source"])
	assert.Equal(t, "unknown", body["certificate"].(map[string]any)["status"])

	resp, _ = e.do(t, http.MethodPost, "/domains", map[string]string{"domain": "example.com", "client_id": cid})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = e.do(t, http.MethodPost, "/domains", map[string]string{"domain": "nope", "client_id": cid})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.NotEmpty(t, body["fields"])
}

func TestImport_StatusCodes(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)

	resp, _ := e.do(t, http.MethodPost, "/domains/import", []map[string]string{{"domain": "a.com", "client_id": cid}, {"domain": "b.com", "client_id": cid}})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := e.do(t, http.MethodPost, "/domains/import", []map[string]string{{"domain": "a.com", "client_id": cid}, {"domain": "c.com", "client_id": cid}})
	assert.Equal(t, http.StatusMultiStatus, resp.StatusCode)
	assert.Len(t, body["imported"], 1)
	assert.Len(t, body["failed"], 1)

	resp, _ = e.do(t, http.MethodPost, "/domains/import", []map[string]string{{"domain": "", "client_id": cid}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestImport_Spreadsheet(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"domain", "client_id"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"sheet.com", cid}))
	xlsx, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "domains.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(e.srv.URL+"/domains/import", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	_, body := e.do(t, http.MethodGet, "/reports/expiring?days=400", nil)
	assert.Len(t, body["domains"], 1)
}

func TestPatchDomain_RecordsActingUser(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)
	_, body := e.do(t, http.MethodPost, "/domains", map[string]string{"domain": "example.com", "client_id": cid})
	id := body["domain"].(map[string]any)["id"].(string)

	resp, body := e.do(t, http.MethodPatch, "/domains/"+id, map[string]string{"status": "inactive", "expires_at": "2027-01-31"}, "X-User-ID", "u-42")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "inactive", body["status"])
	assert.Equal(t, "2027-01-31", body["expires_at"])

	hist, err := e.store.ListHistory(context.Background(), id, 1)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "u-42", *hist[0].UserID)

	resp, _ = e.do(t, http.MethodPatch, "/domains/ghost", map[string]string{"status": "inactive"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = e.do(t, http.MethodDelete, "/domains/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = e.do(t, http.MethodGet, "/domains/"+id+"/history", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTriggerJobs(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)
	_, body := e.do(t, http.MethodPost, "/domains", map[string]string{"domain": "example.com", "client_id": cid})
	id := body["domain"].(map[string]any)["id"].(string)

	resp, body := e.do(t, http.MethodPost, "/jobs/technologies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["succeeded"])
	assert.NotEmpty(t, body["output"])

	resp, body = e.do(t, http.MethodPost, "/jobs/technologies/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = e.do(t, http.MethodPost, "/jobs/technologies/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "not found")

	resp, body = e.do(t, http.MethodPost, "/jobs/bogus", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	resp, _ = e.do(t, http.MethodGet, "/domains/"+id+"/technologies", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	runs, err := e.store.ListJobRuns(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestTriggerJob_AlreadyRunning(t *testing.T) {
	e := newEnv(t)
	started := make(chan struct{})
	release := make(chan struct{})
	e.runner.Register("slow", func(ctx context.Context, run *jobrunner.Run) error {
		close(started)
		<-release
		return nil
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = e.runner.Trigger(context.Background(), "slow")
	}()
	<-started

	resp, body := e.do(t, http.MethodPost, "/jobs/slow", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	close(release)
	<-done
}

func TestTriggerJob_FailureIs500(t *testing.T) {
	e := newEnv(t)
	e.runner.Register("broken", func(ctx context.Context, run *jobrunner.Run) error {
		run.Infof("listing domains")
		return assert.AnError
	})

	resp, body := e.do(t, http.MethodPost, "/jobs/broken", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], assert.AnError.Error())
	assert.NotEmpty(t, body["output"])
}

func TestMetricsAndCORS(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodGet, "/healthz", nil)

	resp, body := e.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["_raw"], "domainwatch_http_requests_total")

	req, err := http.NewRequest(http.MethodOptions, e.srv.URL+"/domains", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://dash.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	pre, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer pre.Body.Close()
	assert.Equal(t, "https://dash.example", pre.Header.Get("Access-Control-Allow-Origin"))
}

func TestGeneratedRoutes_RejectMalformedInput(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)

	resp, body := e.do(t, http.MethodPost, "/domains", `{"domain": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "can't decode JSON body")

	resp, body = e.do(t, http.MethodGet, "/history?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "limit")

	resp, body = e.do(t, http.MethodGet, "/history?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "limit must be a non-negative integer", body["error"])

	resp, _ = e.do(t, http.MethodGet, "/reports/expiring?days=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = e.do(t, http.MethodPost, "/contracts", map[string]string{"client_id": cid, "starts_at": "soon", "ends_at": "2027-01-31"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	fields := body["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "starts_at", fields[0].(map[string]any)["field"])

	resp, body = e.do(t, http.MethodGet, "/domains/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestGeneratedRoutes_ListingsAndDates(t *testing.T) {
	e := newEnv(t)
	cid := e.client(t)

	resp, body := e.do(t, http.MethodPost, "/contracts", map[string]string{"client_id": cid, "starts_at": "2026-01-01", "ends_at": "31/12/2027"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "2026-01-01", body["starts_at"])
	assert.Equal(t, "2027-12-31", body["ends_at"])
	assert.Equal(t, "active", body["status"])

	_, body = e.do(t, http.MethodPost, "/domains", map[string]string{"domain": "example.com", "client_id": cid})
	id := body["domain"].(map[string]any)["id"].(string)

	_, body = e.do(t, http.MethodGet, "/domains/"+id+"/certificate", nil)
	assert.Equal(t, id, body["domain_id"])
	assert.Nil(t, body["expires_at"])

	resp, body = e.do(t, http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["jobs"], "technologies")

	e.do(t, http.MethodPost, "/jobs/technologies", nil)
	req, err := http.NewRequest(http.MethodGet, e.srv.URL+"/jobs/runs?job=technologies&limit=5", nil)
	require.NoError(t, err)
	runs, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer runs.Body.Close()
	require.Equal(t, http.StatusOK, runs.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(runs.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "technologies", list[0]["job"])
	assert.Equal(t, true, list[0]["success"])
}
