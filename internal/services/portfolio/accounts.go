package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
	"domainwatch/internal/reconcile"
	"domainwatch/internal/sources"
)

type NewClient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Service) CreateClient(ctx context.Context, in NewClient) (domain.Client, error) {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "is not an email address"})
		}
	}
	if len(errs) > 0 {
		return domain.Client{}, &ValidationError{Errors: errs}
	}
	c := domain.Client{Name: strings.TrimSpace(in.Name), Email: in.Email}
	if err := s.store.CreateClient(ctx, &c); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.store.ListClients(ctx)
}

type NewContract struct {
	ClientID string    `json:"client_id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// CreateContract stores a maintenance contract with the status its end date
// implies today.
func (s *Service) CreateContract(ctx context.Context, in NewContract) (domain.Contract, error) {
	var errs []FieldError
	if in.ClientID == "" {
		errs = append(errs, FieldError{Field: "client_id", Message: "is required"})
	}
	if in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		errs = append(errs, FieldError{Field: "ends_at", Message: "starts_at and ends_at are required"})
	} else if !in.EndsAt.After(in.StartsAt) {
		errs = append(errs, FieldError{Field: "ends_at", Message: "must be after starts_at"})
	}
	if len(errs) > 0 {
		return domain.Contract{}, &ValidationError{Errors: errs}
	}
	if _, err := s.store.GetClient(ctx, in.ClientID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return domain.Contract{}, &ValidationError{Errors: []FieldError{{Field: "client_id", Message: "unknown client"}}}
		}
		return domain.Contract{}, err
	}
	loc := s.engine.Location()
	c := domain.Contract{
		ClientID: in.ClientID,
		StartsAt: sources.CalendarDate(in.StartsAt, loc),
		EndsAt:   sources.CalendarDate(in.EndsAt, loc),
		Status:   domain.ContractActive,
	}
	c.Status = reconcile.NextContractStatus(c, s.engine.Clock())
	if err := s.store.CreateContract(ctx, &c); err != nil {
		return domain.Contract{}, fmt.Errorf("create contract: %w", err)
	}
	return c, nil
}

func (s *Service) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return s.store.ListContracts(ctx)
}
