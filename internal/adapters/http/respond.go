package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	openapi_types "github.com/oapi-codegen/runtime/types"
	log "github.com/sirupsen/logrus"

	"domainwatch/internal/api"
	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
	"domainwatch/internal/services/portfolio"
	"domainwatch/internal/workers/jobrunner"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encode response")
	}
}

type errorBody struct {
	Error  string                 `json:"error"`
	Fields []portfolio.FieldError `json:"fields,omitempty"`
}

// writeError maps service errors onto status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *portfolio.ValidationError
	var re *runtimeError
	switch {
	case errors.As(err, &re):
		writeJSON(w, re.code, errorBody{Error: re.msg})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Fields: ve.Errors})
	case errors.Is(err, ports.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, ports.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		log.WithField("request_id", middleware.GetReqID(r.Context())).WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// requestError answers malformed parameters and bodies rejected before a
// handler runs.
func requestError(w http.ResponseWriter, r *http.Request, err error) {
	badRequest(w, err.Error())
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("http request")
	})
}

// Wire shapes.

func toDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func datePtr(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomain(d domain.Domain) api.Domain {
	return api.Domain{
		Id:        d.ID,
		Domain:    d.Name,
		ClientId:  d.ClientID,
		Status:    string(d.Status),
		ExpiresAt: datePtr(d.ExpiresAt),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toCertificate(c domain.Certificate) api.Certificate {
	return api.Certificate{
		Id:        c.ID,
		DomainId:  c.DomainID,
		Status:    string(c.Status),
		ExpiresAt: datePtr(c.ExpiresAt),
		UpdatedAt: c.UpdatedAt,
	}
}

func toTechnologies(ts []domain.Technology) []api.Technology {
	out := make([]api.Technology, len(ts))
	for i, t := range ts {
		out[i] = api.Technology{Id: t.ID, Name: t.Name, Version: t.Version, Status: t.Status, UpdatedAt: t.UpdatedAt}
	}
	return out
}

func toHistory(es []domain.HistoryEntry) []api.HistoryEntry {
	out := make([]api.HistoryEntry, len(es))
	for i, e := range es {
		out[i] = api.HistoryEntry{
			Id:                   e.ID,
			DomainId:             e.DomainID,
			Action:               string(e.Action),
			OldValue:             e.OldValue,
			NewValue:             e.NewValue,
			OldTechnologyName:    e.OldTechnologyName,
			OldTechnologyVersion: e.OldTechnologyVersion,
			TechnologyName:       e.TechnologyName,
			TechnologyVersion:    e.TechnologyVersion,
			UserId:               e.UserID,
			CreatedAt:            e.CreatedAt,
		}
	}
	return out
}

func toClient(c domain.Client) api.Client {
	return api.Client{Id: c.ID, Name: c.Name, Email: optional(c.Email), CreatedAt: c.CreatedAt}
}

func toContract(c domain.Contract) api.Contract {
	return api.Contract{
		Id:       c.ID,
		ClientId: c.ClientID,
		StartsAt: toDate(c.StartsAt),
		EndsAt:   toDate(c.EndsAt),
		Status:   string(c.Status),
	}
}

func toCreated(c portfolio.Created) api.CreatedDomain {
	return api.CreatedDomain{
		Domain:      toDomain(c.Domain),
		Certificate: toCertificate(c.Certificate),
		Meta:        api.CreatedMeta{ExpirationSource: c.ExpirationSource, CertificateSource: optional(c.CertificateSource)},
	}
}

// toTrigger is the payload of every job trigger, success or not.
func toTrigger(rep jobrunner.Report, err error) api.TriggerResult {
	failed := make([]api.JobFailure, len(rep.Failed))
	for i, f := range rep.Failed {
		failed[i] = api.JobFailure{Id: f.ID, Name: optional(f.Name), Error: f.Error}
	}
	output := rep.Output
	if output == nil {
		output = []string{}
	}
	return api.TriggerResult{
		Success:   err == nil,
		Message:   jobrunner.Message(rep, err),
		Job:       rep.Job,
		Processed: rep.Processed,
		Succeeded: rep.Succeeded,
		Skipped:   rep.Skipped,
		Failed:    failed,
		Output:    output,
	}
}

func toJobRuns(runs []ports.JobRun) []api.JobRun {
	out := make([]api.JobRun, len(runs))
	for i, r := range runs {
		output := r.Output
		if output == nil {
			output = []string{}
		}
		out[i] = api.JobRun{
			Id: r.ID, Job: r.Job, Success: r.Success, Message: r.Message,
			StartedAt: r.StartedAt, FinishedAt: r.FinishedAt,
			Processed: r.Processed, Succeeded: r.Succeeded, Skipped: r.Skipped, Failed: r.Failed,
			Output: output,
		}
	}
	return out
}
