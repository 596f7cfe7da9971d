package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
)

// calendar reads a DATE column back as midnight in q.loc.
func (q *queries) calendar(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	out := time.Date(y, m, d, 0, 0, 0, 0, q.loc)
	return &out
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// DomainRepository

const domainColumns = `id, name, client_id, expires_at, status, created_at, updated_at`

func (q *queries) scanDomain(row pgx.CollectableRow) (domain.Domain, error) {
	var d domain.Domain
	var status string
	err := row.Scan(&d.ID, &d.Name, &d.ClientID, &d.ExpiresAt, &status, &d.CreatedAt, &d.UpdatedAt)
	d.Status = domain.DomainStatus(status)
	d.ExpiresAt = q.calendar(d.ExpiresAt)
	return d, err
}

func (q *queries) CreateDomain(ctx context.Context, d *domain.Domain) error {
	newID(&d.ID)
	err := q.db.QueryRow(ctx, `
        INSERT INTO domains (id, name, client_id, expires_at, status)
        VALUES ($1, lower($2), $3, $4, $5)
        RETURNING created_at, updated_at
    `, d.ID, d.Name, d.ClientID, d.ExpiresAt, string(d.Status)).Scan(&d.CreatedAt, &d.UpdatedAt)
	return mapErr(err)
}

func (q *queries) getDomain(ctx context.Context, where string, arg any) (domain.Domain, error) {
	rows, err := q.db.Query(ctx, `SELECT `+domainColumns+` FROM domains WHERE `+where, arg)
	if err != nil {
		return domain.Domain{}, err
	}
	d, err := pgx.CollectExactlyOneRow(rows, q.scanDomain)
	return d, mapErr(err)
}

func (q *queries) GetDomain(ctx context.Context, id string) (domain.Domain, error) {
	return q.getDomain(ctx, `id = $1`, id)
}

func (q *queries) GetDomainByName(ctx context.Context, name string) (domain.Domain, error) {
	return q.getDomain(ctx, `name = lower($1)`, strings.TrimSpace(name))
}

func (q *queries) ListDomains(ctx context.Context, afterID string, limit int) ([]domain.Domain, error) {
	rows, err := q.db.Query(ctx, `
        SELECT `+domainColumns+` FROM domains
        WHERE id > $1
        ORDER BY id
        LIMIT NULLIF($2::int, 0)
    `, afterID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, q.scanDomain)
}

func (q *queries) UpdateDomainStatus(ctx context.Context, id string, status domain.DomainStatus) error {
	return affected(q.db.Exec(ctx, `UPDATE domains SET status = $2, updated_at = now() WHERE id = $1`, id, string(status)))
}

func (q *queries) UpdateDomainExpiry(ctx context.Context, id string, expiresAt *time.Time) error {
	return affected(q.db.Exec(ctx, `UPDATE domains SET expires_at = $2, updated_at = now() WHERE id = $1`, id, expiresAt))
}

// DeleteDomain relies on ON DELETE CASCADE for dependent rows.
func (q *queries) DeleteDomain(ctx context.Context, id string) error {
	return affected(q.db.Exec(ctx, `DELETE FROM domains WHERE id = $1`, id))
}

// CertificateRepository

const certificateColumns = `id, domain_id, expires_at, status, created_at, updated_at`

func (q *queries) scanCertificate(row pgx.CollectableRow) (domain.Certificate, error) {
	var c domain.Certificate
	var status string
	err := row.Scan(&c.ID, &c.DomainID, &c.ExpiresAt, &status, &c.CreatedAt, &c.UpdatedAt)
	c.Status = domain.CertificateStatus(status)
	c.ExpiresAt = q.calendar(c.ExpiresAt)
	return c, err
}

func (q *queries) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	newID(&c.ID)
	err := q.db.QueryRow(ctx, `
        INSERT INTO certificates (id, domain_id, expires_at, status)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at
    `, c.ID, c.DomainID, c.ExpiresAt, string(c.Status)).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapErr(err)
}

func (q *queries) GetCertificateByDomain(ctx context.Context, domainID string) (domain.Certificate, error) {
	rows, err := q.db.Query(ctx, `
        SELECT `+certificateColumns+` FROM certificates
        WHERE domain_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `, domainID)
	if err != nil {
		return domain.Certificate{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, q.scanCertificate)
	return c, mapErr(err)
}

func (q *queries) ListCertificatesDue(ctx context.Context, threshold time.Time, afterID string, limit int) ([]domain.Certificate, error) {
	rows, err := q.db.Query(ctx, `
        SELECT `+certificateColumns+` FROM certificates
        WHERE status <> 'expired'
          AND (expires_at IS NULL OR expires_at <= $1::date)
          AND id > $2
        ORDER BY id
        LIMIT NULLIF($3::int, 0)
    `, threshold, afterID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, q.scanCertificate)
}

func (q *queries) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	rows, err := q.db.Query(ctx, `SELECT `+certificateColumns+` FROM certificates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, q.scanCertificate)
}

func (q *queries) UpdateCertificate(ctx context.Context, id string, expiresAt *time.Time, status domain.CertificateStatus) error {
	return affected(q.db.Exec(ctx, `
        UPDATE certificates SET expires_at = $2, status = $3, updated_at = now() WHERE id = $1
    `, id, expiresAt, string(status)))
}

// TechnologyRepository

const technologyColumns = `id, domain_id, name, version, status, created_at, updated_at`

func scanTechnology(row pgx.CollectableRow) (domain.Technology, error) {
	var t domain.Technology
	err := row.Scan(&t.ID, &t.DomainID, &t.Name, &t.Version, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *queries) ListTechnologies(ctx context.Context, domainID string) ([]domain.Technology, error) {
	rows, err := q.db.Query(ctx, `
        SELECT `+technologyColumns+` FROM technologies
        WHERE domain_id = $1
        ORDER BY created_at, id
    `, domainID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTechnology)
}

func (q *queries) GetTechnology(ctx context.Context, id string) (domain.Technology, error) {
	rows, err := q.db.Query(ctx, `SELECT `+technologyColumns+` FROM technologies WHERE id = $1`, id)
	if err != nil {
		return domain.Technology{}, err
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanTechnology)
	return t, mapErr(err)
}

func (q *queries) CreateTechnology(ctx context.Context, t *domain.Technology) error {
	newID(&t.ID)
	err := q.db.QueryRow(ctx, `
        INSERT INTO technologies (id, domain_id, name, version, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `, t.ID, t.DomainID, t.Name, t.Version, t.Status).Scan(&t.CreatedAt, &t.UpdatedAt)
	return mapErr(err)
}

func (q *queries) UpdateTechnology(ctx context.Context, id, version, status string) error {
	return affected(q.db.Exec(ctx, `
        UPDATE technologies SET version = $2, status = $3, updated_at = now() WHERE id = $1
    `, id, version, status))
}

func (q *queries) DeleteTechnology(ctx context.Context, id string) error {
	return affected(q.db.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id))
}

// HistoryRepository

func (q *queries) AppendHistory(ctx context.Context, e *domain.HistoryEntry) error {
	newID(&e.ID)
	var createdAt *time.Time
	if !e.CreatedAt.IsZero() {
		createdAt = &e.CreatedAt
	}
	err := q.db.QueryRow(ctx, `
        INSERT INTO history (id, domain_id, action, old_value, new_value,
            old_technology_name, old_technology_version, technology_name, technology_version,
            user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, now()))
        RETURNING created_at
    `, e.ID, e.DomainID, string(e.Action), e.OldValue, e.NewValue,
		e.OldTechnologyName, e.OldTechnologyVersion, e.TechnologyName, e.TechnologyVersion,
		e.UserID, createdAt).Scan(&e.CreatedAt)
	return mapErr(err)
}

func (q *queries) ListHistory(ctx context.Context, domainID string, limit int) ([]domain.HistoryEntry, error) {
	rows, err := q.db.Query(ctx, `
        SELECT id, domain_id, action, old_value, new_value,
            old_technology_name, old_technology_version, technology_name, technology_version,
            user_id, created_at
        FROM history
        WHERE $1 = '' OR domain_id = $1
        ORDER BY created_at DESC, seq DESC
        LIMIT NULLIF($2::int, 0)
    `, domainID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoryEntry, error) {
		var e domain.HistoryEntry
		var action string
		err := row.Scan(&e.ID, &e.DomainID, &action, &e.OldValue, &e.NewValue,
			&e.OldTechnologyName, &e.OldTechnologyVersion, &e.TechnologyName, &e.TechnologyVersion,
			&e.UserID, &e.CreatedAt)
		e.Action = domain.HistoryAction(action)
		return e, err
	})
}

// ClientRepository

func scanClient(row pgx.CollectableRow) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt)
	return c, err
}

func (q *queries) CreateClient(ctx context.Context, c *domain.Client) error {
	newID(&c.ID)
	err := q.db.QueryRow(ctx, `
        INSERT INTO clients (id, name, email) VALUES ($1, $2, $3) RETURNING created_at
    `, c.ID, c.Name, c.Email).Scan(&c.CreatedAt)
	return mapErr(err)
}

func (q *queries) GetClient(ctx context.Context, id string) (domain.Client, error) {
	rows, err := q.db.Query(ctx, `SELECT id, name, email, created_at FROM clients WHERE id = $1`, id)
	if err != nil {
		return domain.Client{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanClient)
	return c, mapErr(err)
}

func (q *queries) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := q.db.Query(ctx, `SELECT id, name, email, created_at FROM clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanClient)
}

// ContractRepository

const contractColumns = `id, client_id, starts_at, ends_at, status, created_at, updated_at`

func (q *queries) scanContract(row pgx.CollectableRow) (domain.Contract, error) {
	var c domain.Contract
	var status string
	err := row.Scan(&c.ID, &c.ClientID, &c.StartsAt, &c.EndsAt, &status, &c.CreatedAt, &c.UpdatedAt)
	c.Status = domain.ContractStatus(status)
	c.StartsAt = *q.calendar(&c.StartsAt)
	c.EndsAt = *q.calendar(&c.EndsAt)
	return c, err
}

func (q *queries) CreateContract(ctx context.Context, c *domain.Contract) error {
	newID(&c.ID)
	err := q.db.QueryRow(ctx, `
        INSERT INTO contracts (id, client_id, starts_at, ends_at, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `, c.ID, c.ClientID, c.StartsAt, c.EndsAt, string(c.Status)).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapErr(err)
}

func (q *queries) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	rows, err := q.db.Query(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, q.scanContract)
}

func (q *queries) ListContractsByStatus(ctx context.Context, status domain.ContractStatus, afterID string, limit int) ([]domain.Contract, error) {
	rows, err := q.db.Query(ctx, `
        SELECT `+contractColumns+` FROM contracts
        WHERE status = $1 AND id > $2
        ORDER BY id
        LIMIT NULLIF($3::int, 0)
    `, string(status), afterID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, q.scanContract)
}

func (q *queries) UpdateContractStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	return affected(q.db.Exec(ctx, `UPDATE contracts SET status = $2, updated_at = now() WHERE id = $1`, id, string(status)))
}

var _ ports.Repositories = (*queries)(nil)
