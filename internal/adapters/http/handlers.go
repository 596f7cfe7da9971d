package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"domainwatch/internal/api"
	"domainwatch/internal/ports"
	"domainwatch/internal/services/portfolio"
	"domainwatch/internal/sources"
	"domainwatch/internal/workers/jobrunner"
)

const maxImportBytes = 10 << 20

func (s *Server) parseDate(raw string) (time.Time, bool) {
	return sources.ParseDate(raw, s.opts.Location)
}

// limitParam resolves an optional non-negative count.
func limitParam(name string, v *int, def int) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v < 0 {
		return 0, &runtimeError{code: http.StatusBadRequest, msg: name + " must be a non-negative integer"}
	}
	return *v, nil
}

func missingBody() error {
	return &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
}

// Clients and contracts

func (s *Server) ListClients(ctx context.Context, _ api.ListClientsRequestObject) (api.ListClientsResponseObject, error) {
	cs, err := s.portfolio.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListClients200JSONResponse, len(cs))
	for i, c := range cs {
		out[i] = toClient(c)
	}
	return out, nil
}

func (s *Server) CreateClient(ctx context.Context, req api.CreateClientRequestObject) (api.CreateClientResponseObject, error) {
	if req.Body == nil {
		return nil, missingBody()
	}
	in := portfolio.NewClient{Name: req.Body.Name}
	if req.Body.Email != nil {
		in.Email = *req.Body.Email
	}
	c, err := s.portfolio.CreateClient(ctx, in)
	if err != nil {
		return nil, err
	}
	return api.CreateClient201JSONResponse(toClient(c)), nil
}

func (s *Server) ListContracts(ctx context.Context, _ api.ListContractsRequestObject) (api.ListContractsResponseObject, error) {
	cs, err := s.portfolio.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListContracts200JSONResponse, len(cs))
	for i, c := range cs {
		out[i] = toContract(c)
	}
	return out, nil
}

func (s *Server) CreateContract(ctx context.Context, req api.CreateContractRequestObject) (api.CreateContractResponseObject, error) {
	if req.Body == nil {
		return nil, missingBody()
	}
	in := portfolio.NewContract{ClientID: req.Body.ClientId}
	var fields []portfolio.FieldError
	var ok bool
	if in.StartsAt, ok = s.parseDate(req.Body.StartsAt); !ok {
		fields = append(fields, portfolio.FieldError{Field: "starts_at", Message: "is not a date"})
	}
	if in.EndsAt, ok = s.parseDate(req.Body.EndsAt); !ok {
		fields = append(fields, portfolio.FieldError{Field: "ends_at", Message: "is not a date"})
	}
	if len(fields) > 0 {
		return nil, &portfolio.ValidationError{Errors: fields}
	}
	c, err := s.portfolio.CreateContract(ctx, in)
	if err != nil {
		return nil, err
	}
	return api.CreateContract201JSONResponse(toContract(c)), nil
}

// Domains

func (s *Server) ListDomains(ctx context.Context, _ api.ListDomainsRequestObject) (api.ListDomainsResponseObject, error) {
	ds, err := s.portfolio.ListDomains(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListDomains200JSONResponse, len(ds))
	for i, d := range ds {
		out[i] = toDomain(d)
	}
	return out, nil
}

func (s *Server) CreateDomain(ctx context.Context, req api.CreateDomainRequestObject) (api.CreateDomainResponseObject, error) {
	if req.Body == nil {
		return nil, missingBody()
	}
	in := portfolio.NewDomain{Name: req.Body.Domain, ClientID: req.Body.ClientId}
	if req.Body.Status != nil {
		in.Status = *req.Body.Status
	}
	created, err := s.portfolio.CreateDomain(ctx, in, actor(req.Params.XUserID))
	if err != nil {
		return nil, err
	}
	return api.CreateDomain201JSONResponse(toCreated(created)), nil
}

// importDomains accepts a JSON array or a multipart spreadsheet upload in the
// "file" field. 201 when every row was created, 207 when some failed.
func (s *Server) importDomains(w http.ResponseWriter, r *http.Request) {
	var rows []portfolio.NewDomain
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			badRequest(w, "multipart upload needs a file field")
			return
		}
		defer file.Close()
		rows, err = portfolio.ReadSpreadsheet(file)
		if err != nil {
			writeError(w, r, &portfolio.ValidationError{Errors: []portfolio.FieldError{{Field: "file", Message: err.Error()}}})
			return
		}
	} else {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rows); err != nil {
			badRequest(w, fmt.Sprintf("invalid JSON body: %v", err))
			return
		}
	}

	user := r.Header.Get("X-User-ID")
	res, err := s.portfolio.Import(r.Context(), rows, actor(&user))
	if err != nil {
		writeError(w, r, err)
		return
	}
	imported := make([]api.CreatedDomain, len(res.Imported))
	for i, c := range res.Imported {
		imported[i] = toCreated(c)
	}
	status := http.StatusCreated
	if res.Partial() {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, map[string]any{"imported": imported, "failed": res.Failed})
}

func (s *Server) GetDomain(ctx context.Context, req api.GetDomainRequestObject) (api.GetDomainResponseObject, error) {
	d, err := s.portfolio.GetDomain(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetDomain200JSONResponse(toDomain(d)), nil
}

func (s *Server) UpdateDomain(ctx context.Context, req api.UpdateDomainRequestObject) (api.UpdateDomainResponseObject, error) {
	if req.Body == nil {
		return nil, missingBody()
	}
	patch := portfolio.DomainPatch{Status: req.Body.Status}
	if req.Body.ExpiresAt != nil {
		t, ok := s.parseDate(*req.Body.ExpiresAt)
		if !ok {
			return nil, &portfolio.ValidationError{Errors: []portfolio.FieldError{{Field: "expires_at", Message: "is not a date"}}}
		}
		patch.ExpiresAt = &t
	}
	d, err := s.portfolio.UpdateDomain(ctx, req.Id, patch, actor(req.Params.XUserID))
	if err != nil {
		return nil, err
	}
	return api.UpdateDomain200JSONResponse(toDomain(d)), nil
}

func (s *Server) DeleteDomain(ctx context.Context, req api.DeleteDomainRequestObject) (api.DeleteDomainResponseObject, error) {
	if err := s.portfolio.DeleteDomain(ctx, req.Id); err != nil {
		return nil, err
	}
	return api.DeleteDomain204Response{}, nil
}

func (s *Server) ListDomainTechnologies(ctx context.Context, req api.ListDomainTechnologiesRequestObject) (api.ListDomainTechnologiesResponseObject, error) {
	ts, err := s.portfolio.Technologies(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.ListDomainTechnologies200JSONResponse(toTechnologies(ts)), nil
}

func (s *Server) GetDomainCertificate(ctx context.Context, req api.GetDomainCertificateRequestObject) (api.GetDomainCertificateResponseObject, error) {
	c, err := s.portfolio.Certificate(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetDomainCertificate200JSONResponse(toCertificate(c)), nil
}

func (s *Server) ListDomainHistory(ctx context.Context, req api.ListDomainHistoryRequestObject) (api.ListDomainHistoryResponseObject, error) {
	es, err := s.history(ctx, req.Id, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	return api.ListDomainHistory200JSONResponse(es), nil
}

func (s *Server) ListHistory(ctx context.Context, req api.ListHistoryRequestObject) (api.ListHistoryResponseObject, error) {
	es, err := s.history(ctx, "", req.Params.Limit)
	if err != nil {
		return nil, err
	}
	return api.ListHistory200JSONResponse(es), nil
}

func (s *Server) history(ctx context.Context, domainID string, limit *int) ([]api.HistoryEntry, error) {
	n, err := limitParam("limit", limit, 100)
	if err != nil {
		return nil, err
	}
	es, err := s.portfolio.History(ctx, domainID, n)
	if err != nil {
		return nil, err
	}
	return toHistory(es), nil
}

func (s *Server) GetExpiringReport(ctx context.Context, req api.GetExpiringReportRequestObject) (api.GetExpiringReportResponseObject, error) {
	days := 30
	if req.Params.Days != nil {
		days = *req.Params.Days
	}
	if days <= 0 {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "days must be a positive integer"}
	}
	rep, err := s.portfolio.Expiring(ctx, time.Duration(days)*24*time.Hour)
	if err != nil {
		return nil, err
	}
	out := api.GetExpiringReport200JSONResponse{
		Days:         days,
		Until:        toDate(rep.Until),
		Domains:      make([]api.Domain, len(rep.Domains)),
		Certificates: make([]api.Certificate, len(rep.Certificates)),
	}
	for i, d := range rep.Domains {
		out.Domains[i] = toDomain(d)
	}
	for i, c := range rep.Certificates {
		out.Certificates[i] = toCertificate(c.Certificate)
		name := c.DomainName
		out.Certificates[i].Domain = &name
	}
	return out, nil
}

// Jobs

func (s *Server) ListJobs(ctx context.Context, _ api.ListJobsRequestObject) (api.ListJobsResponseObject, error) {
	names := s.jobs.Names()
	if names == nil {
		names = []string{}
	}
	return api.ListJobs200JSONResponse{Jobs: names}, nil
}

func (s *Server) ListJobRuns(ctx context.Context, req api.ListJobRunsRequestObject) (api.ListJobRunsResponseObject, error) {
	limit, err := limitParam("limit", req.Params.Limit, 20)
	if err != nil {
		return nil, err
	}
	var job string
	if req.Params.Job != nil {
		job = *req.Params.Job
	}
	runs, err := s.runs.ListJobRuns(ctx, job, limit)
	if err != nil {
		return nil, err
	}
	return api.ListJobRuns200JSONResponse(toJobRuns(runs)), nil
}

func (s *Server) TriggerJob(ctx context.Context, req api.TriggerJobRequestObject) (api.TriggerJobResponseObject, error) {
	rep, err := s.jobs.Trigger(ctx, req.Job)
	out := toTrigger(rep, err)
	switch triggerStatus(err) {
	case http.StatusNotFound:
		return api.TriggerJob404JSONResponse(out), nil
	case http.StatusConflict:
		return api.TriggerJob409JSONResponse(out), nil
	case http.StatusInternalServerError:
		return api.TriggerJob500JSONResponse(out), nil
	}
	return api.TriggerJob200JSONResponse(out), nil
}

func (s *Server) TriggerDomainTechnologies(ctx context.Context, req api.TriggerDomainTechnologiesRequestObject) (api.TriggerDomainTechnologiesResponseObject, error) {
	rep, err := s.jobs.Execute(ctx, "technologies:"+req.DomainId, s.domainJobs.DomainTechnologies(req.DomainId))
	out := toTrigger(rep, err)
	switch triggerStatus(err) {
	case http.StatusNotFound:
		return api.TriggerDomainTechnologies404JSONResponse(out), nil
	case http.StatusConflict:
		return api.TriggerDomainTechnologies409JSONResponse(out), nil
	case http.StatusInternalServerError:
		return api.TriggerDomainTechnologies500JSONResponse(out), nil
	}
	return api.TriggerDomainTechnologies200JSONResponse(out), nil
}

// triggerStatus picks the status of a trigger response. The body is the same
// report either way.
func triggerStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, jobrunner.ErrUnknownJob), errors.Is(err, ports.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, jobrunner.ErrAlreadyRunning):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
