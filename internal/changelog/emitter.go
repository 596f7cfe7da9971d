// Package changelog appends history entries as a side effect of domain status
// and technology mutations.
//
// Observe wraps a transaction-bound ports.Repositories so every observed write
// and its history entry land in the same unit of work. Certificate writes pass
// through unobserved.
package changelog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
)

type observed struct {
	ports.Repositories
	actor *string
	now   func() time.Time
}

// Observe returns repos with history emission on domain creation, domain
// status updates and technology create/update/delete. A nil actor records a
// system action.
func Observe(repos ports.Repositories, actor *string, now func() time.Time) ports.Repositories {
	if now == nil {
		now = time.Now
	}
	return &observed{Repositories: repos, actor: actor, now: now}
}

func (o *observed) append(ctx context.Context, e domain.HistoryEntry) error {
	e.ID = uuid.NewString()
	e.UserID = o.actor
	e.CreatedAt = o.now()
	if err := o.Repositories.AppendHistory(ctx, &e); err != nil {
		return fmt.Errorf("append %s history: %w", e.Action, err)
	}
	return nil
}

func (o *observed) CreateDomain(ctx context.Context, d *domain.Domain) error {
	if err := o.Repositories.CreateDomain(ctx, d); err != nil {
		return err
	}
	return o.append(ctx, domain.HistoryEntry{
		DomainID: d.ID,
		Action:   domain.ActionCreation,
		NewValue: domain.StringPtr(string(d.Status)),
	})
}

// UpdateDomainStatus is a no-op when the status does not change.
func (o *observed) UpdateDomainStatus(ctx context.Context, id string, status domain.DomainStatus) error {
	current, err := o.Repositories.GetDomain(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == status {
		return nil
	}
	if err := o.Repositories.UpdateDomainStatus(ctx, id, status); err != nil {
		return err
	}
	return o.append(ctx, domain.HistoryEntry{
		DomainID: id,
		Action:   domain.ActionStatusChange,
		OldValue: domain.StringPtr(string(current.Status)),
		NewValue: domain.StringPtr(string(status)),
	})
}

func (o *observed) CreateTechnology(ctx context.Context, t *domain.Technology) error {
	if err := o.Repositories.CreateTechnology(ctx, t); err != nil {
		return err
	}
	return o.append(ctx, domain.HistoryEntry{
		DomainID:          t.DomainID,
		Action:            domain.ActionTechnologyDetection,
		TechnologyName:    domain.StringPtr(t.Name),
		TechnologyVersion: domain.StringPtr(t.Version),
	})
}

// UpdateTechnology logs every write it stores. A status-only write is logged
// as a change whose old and new versions are equal.
func (o *observed) UpdateTechnology(ctx context.Context, id, version, status string) error {
	current, err := o.Repositories.GetTechnology(ctx, id)
	if err != nil {
		return err
	}
	if current.Version == version && current.Status == status {
		return nil
	}
	if err := o.Repositories.UpdateTechnology(ctx, id, version, status); err != nil {
		return err
	}
	return o.append(ctx, domain.HistoryEntry{
		DomainID:             current.DomainID,
		Action:               domain.ActionTechnologyChange,
		OldTechnologyName:    domain.StringPtr(current.Name),
		OldTechnologyVersion: domain.StringPtr(current.Version),
		TechnologyName:       domain.StringPtr(current.Name),
		TechnologyVersion:    domain.StringPtr(version),
	})
}

func (o *observed) DeleteTechnology(ctx context.Context, id string) error {
	current, err := o.Repositories.GetTechnology(ctx, id)
	if err != nil {
		return err
	}
	if err := o.Repositories.DeleteTechnology(ctx, id); err != nil {
		return err
	}
	return o.append(ctx, domain.HistoryEntry{
		DomainID:             current.DomainID,
		Action:               domain.ActionTechnologyDeletion,
		OldTechnologyName:    domain.StringPtr(current.Name),
		OldTechnologyVersion: domain.StringPtr(current.Version),
	})
}
