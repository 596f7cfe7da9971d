package reconcile

import (
	"domainwatch/internal/domain"
	"domainwatch/internal/fingerprint"
)

type TechnologyUpdate struct {
	ID         string
	Name       string
	OldVersion string
	Version    string
}

// TechnologyPlan lists the writes needed to bring a domain's stored
// technologies in line with a fresh detection.
type TechnologyPlan struct {
	Create []domain.Technology
	Update []TechnologyUpdate
	Delete []domain.Technology
}

func (p TechnologyPlan) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// PlanTechnologies compares detections against the stored set keyed by name.
// Duplicate detections collapse to the first occurrence. Stored rows that were
// not detected are only scheduled for deletion when prune is set.
func PlanTechnologies(domainID string, existing []domain.Technology, detected []fingerprint.Detection, prune bool) TechnologyPlan {
	stored := make(map[string]domain.Technology, len(existing))
	for _, t := range existing {
		if _, dup := stored[t.Name]; !dup {
			stored[t.Name] = t
		}
	}

	var plan TechnologyPlan
	seen := make(map[string]bool, len(detected))
	for _, d := range detected {
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true

		version := d.Version
		if version == "" {
			version = domain.VersionUnknown
		}
		cur, ok := stored[d.Name]
		switch {
		case !ok:
			plan.Create = append(plan.Create, domain.Technology{
				DomainID: domainID,
				Name:     d.Name,
				Version:  version,
				Status:   domain.TechnologyUpToDate,
			})
		case cur.Version != version || cur.Status != domain.TechnologyUpToDate:
			plan.Update = append(plan.Update, TechnologyUpdate{
				ID:         cur.ID,
				Name:       cur.Name,
				OldVersion: cur.Version,
				Version:    version,
			})
		}
	}

	if prune {
		for _, t := range existing {
			if !seen[t.Name] {
				plan.Delete = append(plan.Delete, t)
			}
		}
	}
	return plan
}
