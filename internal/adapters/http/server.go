package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"domainwatch/internal/api"
	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
	"domainwatch/internal/services/portfolio"
	"domainwatch/internal/telemetry"
	"domainwatch/internal/workers/jobrunner"
)

// Portfolio is the domain management surface.
type Portfolio interface {
	CreateDomain(ctx context.Context, in portfolio.NewDomain, actor *string) (portfolio.Created, error)
	Import(ctx context.Context, rows []portfolio.NewDomain, actor *string) (portfolio.ImportResult, error)
	UpdateDomain(ctx context.Context, id string, patch portfolio.DomainPatch, actor *string) (domain.Domain, error)
	DeleteDomain(ctx context.Context, id string) error
	GetDomain(ctx context.Context, id string) (domain.Domain, error)
	ListDomains(ctx context.Context) ([]domain.Domain, error)
	Technologies(ctx context.Context, domainID string) ([]domain.Technology, error)
	Certificate(ctx context.Context, domainID string) (domain.Certificate, error)
	History(ctx context.Context, domainID string, limit int) ([]domain.HistoryEntry, error)
	Expiring(ctx context.Context, window time.Duration) (portfolio.ExpiringReport, error)
	CreateClient(ctx context.Context, in portfolio.NewClient) (domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateContract(ctx context.Context, in portfolio.NewContract) (domain.Contract, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)
}

// Jobs runs named jobs on demand.
type Jobs interface {
	Trigger(ctx context.Context, name string) (jobrunner.Report, error)
	Execute(ctx context.Context, key string, job jobrunner.Job) (jobrunner.Report, error)
	Names() []string
}

// DomainJobs builds per-domain jobs.
type DomainJobs interface {
	DomainTechnologies(domainID string) jobrunner.Job
}

type Options struct {
	Location    *time.Location
	CORSOrigins []string
	Metrics     *telemetry.Metrics
	Gatherer    prometheus.Gatherer
}

// Server implements the generated StrictServerInterface.
type Server struct {
	portfolio  Portfolio
	jobs       Jobs
	domainJobs DomainJobs
	runs       ports.JobRunRepository
	opts       Options
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(p Portfolio, jobs Jobs, domainJobs DomainJobs, runs ports.JobRunRepository, opts Options) *Server {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	return &Server{portfolio: p, jobs: jobs, domainJobs: domainJobs, runs: runs, opts: opts}
}

// Routes returns the API router: the generated handlers plus the spreadsheet
// import and the metrics endpoint, which the document does not describe.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxImportBytes))
	r.Use(s.opts.Metrics.Middleware)

	// Generated handler wiring
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: requestError,
	})

	r.Post("/domains/import", s.importDomains)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))

	if len(s.opts.CORSOrigins) == 0 {
		return r
	}
	return cors.New(cors.Options{
		AllowedOrigins:   s.opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-ID"},
		AllowCredentials: true,
	}).Handler(r)
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

// actor is the acting user from the X-User-ID header, nil for anonymous
// callers.
func actor(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }
