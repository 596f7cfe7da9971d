// Package memory is an in-process implementation of ports.Store for tests and
// local runs without Postgres. Data is lost on exit.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"domainwatch/internal/domain"
	"domainwatch/internal/ports"
)

// Store is a handle on shared state. Handles passed to WithTx callbacks are
// bound to the open transaction.
type Store struct {
	*state
	inTx bool
}

type state struct {
	mu           sync.RWMutex
	// txMu is held for the whole of a transaction and around every write made
	// outside one.
	txMu         sync.Mutex
	now          func() time.Time
	domains      map[string]domain.Domain
	certificates map[string]domain.Certificate
	technologies map[string]domain.Technology
	history      []domain.HistoryEntry
	clients      map[string]domain.Client
	contracts    map[string]domain.Contract
	jobRuns      []ports.JobRun
}

var _ ports.Store = (*Store)(nil)

func New() *Store {
	return &Store{state: &state{
		now:          time.Now,
		domains:      map[string]domain.Domain{},
		certificates: map[string]domain.Certificate{},
		technologies: map[string]domain.Technology{},
		clients:      map[string]domain.Client{},
		contracts:    map[string]domain.Contract{},
	}}
}

// SetClock replaces the clock used for created/updated timestamps.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// WithTx serialises units of work and restores the previous state when fn
// fails or panics. Writes made outside the transaction wait for it to end, so
// a rollback only ever discards fn's own writes. Nested calls join the open
// transaction.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	done := false
	defer func() {
		if !done {
			s.restore(snap)
		}
	}()
	if err := fn(ctx, &Store{state: s.state, inTx: true}); err != nil {
		return err
	}
	done = true
	return nil
}

// lock takes the write lock and returns its release.
func (s *Store) lock() func() {
	if !s.inTx {
		s.txMu.Lock()
	}
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		if !s.inTx {
			s.txMu.Unlock()
		}
	}
}

type snapshot struct {
	domains      map[string]domain.Domain
	certificates map[string]domain.Certificate
	technologies map[string]domain.Technology
	history      []domain.HistoryEntry
	clients      map[string]domain.Client
	contracts    map[string]domain.Contract
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		domains:      cloneMap(s.domains),
		certificates: cloneMap(s.certificates),
		technologies: cloneMap(s.technologies),
		history:      append([]domain.HistoryEntry(nil), s.history...),
		clients:      cloneMap(s.clients),
		contracts:    cloneMap(s.contracts),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domains = snap.domains
	s.certificates = snap.certificates
	s.technologies = snap.technologies
	s.history = snap.history
	s.clients = snap.clients
	s.contracts = snap.contracts
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// page sorts by id and returns up to limit items after afterID.
func page[V any](items []V, id func(V) string, afterID string, limit int) []V {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	out := make([]V, 0, limit)
	for _, it := range items {
		if id(it) <= afterID {
			continue
		}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Domains

func (s *Store) CreateDomain(ctx context.Context, d *domain.Domain) error {
	defer s.lock()()
	for _, existing := range s.domains {
		if strings.EqualFold(existing.Name, d.Name) {
			return ports.ErrConflict
		}
	}
	ensureID(&d.ID)
	now := s.now()
	d.CreatedAt, d.UpdatedAt = now, now
	s.domains[d.ID] = *d
	return nil
}

func (s *Store) GetDomain(ctx context.Context, id string) (domain.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.domains[id]
	if !ok {
		return domain.Domain{}, ports.ErrNotFound
	}
	return d, nil
}

func (s *Store) GetDomainByName(ctx context.Context, name string) (domain.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.domains {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return domain.Domain{}, ports.ErrNotFound
}

func (s *Store) ListDomains(ctx context.Context, afterID string, limit int) ([]domain.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Domain, 0, len(s.domains))
	for _, d := range s.domains {
		items = append(items, d)
	}
	return page(items, func(d domain.Domain) string { return d.ID }, afterID, limit), nil
}

func (s *Store) UpdateDomainStatus(ctx context.Context, id string, status domain.DomainStatus) error {
	defer s.lock()()
	d, ok := s.domains[id]
	if !ok {
		return ports.ErrNotFound
	}
	d.Status = status
	d.UpdatedAt = s.now()
	s.domains[id] = d
	return nil
}

func (s *Store) UpdateDomainExpiry(ctx context.Context, id string, expiresAt *time.Time) error {
	defer s.lock()()
	d, ok := s.domains[id]
	if !ok {
		return ports.ErrNotFound
	}
	d.ExpiresAt = expiresAt
	d.UpdatedAt = s.now()
	s.domains[id] = d
	return nil
}

func (s *Store) DeleteDomain(ctx context.Context, id string) error {
	defer s.lock()()
	if _, ok := s.domains[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.domains, id)
	for k, c := range s.certificates {
		if c.DomainID == id {
			delete(s.certificates, k)
		}
	}
	for k, t := range s.technologies {
		if t.DomainID == id {
			delete(s.technologies, k)
		}
	}
	kept := s.history[:0]
	for _, e := range s.history {
		if e.DomainID != id {
			kept = append(kept, e)
		}
	}
	s.history = kept
	return nil
}

// Certificates

func (s *Store) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	defer s.lock()()
	if _, ok := s.domains[c.DomainID]; !ok {
		return ports.ErrNotFound
	}
	ensureID(&c.ID)
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.certificates[c.ID] = *c
	return nil
}

// GetCertificateByDomain returns the most recently created row.
func (s *Store) GetCertificateByDomain(ctx context.Context, domainID string) (domain.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.Certificate
	for _, c := range s.certificates {
		if c.DomainID != domainID {
			continue
		}
		if found == nil || c.CreatedAt.After(found.CreatedAt) {
			c := c
			found = &c
		}
	}
	if found == nil {
		return domain.Certificate{}, ports.ErrNotFound
	}
	return *found, nil
}

func (s *Store) ListCertificatesDue(ctx context.Context, threshold time.Time, afterID string, limit int) ([]domain.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []domain.Certificate
	for _, c := range s.certificates {
		if c.Status == domain.CertificateExpired {
			continue
		}
		if c.ExpiresAt != nil && c.ExpiresAt.After(threshold) {
			continue
		}
		items = append(items, c)
	}
	return page(items, func(c domain.Certificate) string { return c.ID }, afterID, limit), nil
}

func (s *Store) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Certificate, 0, len(s.certificates))
	for _, c := range s.certificates {
		items = append(items, c)
	}
	return page(items, func(c domain.Certificate) string { return c.ID }, "", 0), nil
}

func (s *Store) UpdateCertificate(ctx context.Context, id string, expiresAt *time.Time, status domain.CertificateStatus) error {
	defer s.lock()()
	c, ok := s.certificates[id]
	if !ok {
		return ports.ErrNotFound
	}
	c.ExpiresAt = expiresAt
	c.Status = status
	c.UpdatedAt = s.now()
	s.certificates[id] = c
	return nil
}

// Technologies

func (s *Store) ListTechnologies(ctx context.Context, domainID string) ([]domain.Technology, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []domain.Technology
	for _, t := range s.technologies {
		if t.DomainID == domainID {
			items = append(items, t)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetTechnology(ctx context.Context, id string) (domain.Technology, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.technologies[id]
	if !ok {
		return domain.Technology{}, ports.ErrNotFound
	}
	return t, nil
}

func (s *Store) CreateTechnology(ctx context.Context, t *domain.Technology) error {
	defer s.lock()()
	if _, ok := s.domains[t.DomainID]; !ok {
		return ports.ErrNotFound
	}
	ensureID(&t.ID)
	now := s.now()
	t.CreatedAt, t.UpdatedAt = now, now
	s.technologies[t.ID] = *t
	return nil
}

func (s *Store) UpdateTechnology(ctx context.Context, id, version, status string) error {
	defer s.lock()()
	t, ok := s.technologies[id]
	if !ok {
		return ports.ErrNotFound
	}
	t.Version = version
	t.Status = status
	t.UpdatedAt = s.now()
	s.technologies[id] = t
	return nil
}

func (s *Store) DeleteTechnology(ctx context.Context, id string) error {
	defer s.lock()()
	if _, ok := s.technologies[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.technologies, id)
	return nil
}

// History

func (s *Store) AppendHistory(ctx context.Context, e *domain.HistoryEntry) error {
	defer s.lock()()
	ensureID(&e.ID)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	s.history = append(s.history, *e)
	return nil
}

func (s *Store) ListHistory(ctx context.Context, domainID string, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.HistoryEntry
	for i := len(s.history) - 1; i >= 0; i-- {
		e := s.history[i]
		if domainID != "" && e.DomainID != domainID {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Clients

func (s *Store) CreateClient(ctx context.Context, c *domain.Client) error {
	defer s.lock()()
	ensureID(&c.ID)
	c.CreatedAt = s.now()
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) GetClient(ctx context.Context, id string) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return domain.Client{}, ports.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		items = append(items, c)
	}
	return page(items, func(c domain.Client) string { return c.ID }, "", 0), nil
}

// Contracts

func (s *Store) CreateContract(ctx context.Context, c *domain.Contract) error {
	defer s.lock()()
	if _, ok := s.clients[c.ClientID]; !ok {
		return ports.ErrNotFound
	}
	ensureID(&c.ID)
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.contracts[c.ID] = *c
	return nil
}

func (s *Store) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		items = append(items, c)
	}
	return page(items, func(c domain.Contract) string { return c.ID }, "", 0), nil
}

func (s *Store) ListContractsByStatus(ctx context.Context, status domain.ContractStatus, afterID string, limit int) ([]domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []domain.Contract
	for _, c := range s.contracts {
		if c.Status == status {
			items = append(items, c)
		}
	}
	return page(items, func(c domain.Contract) string { return c.ID }, afterID, limit), nil
}

func (s *Store) UpdateContractStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	defer s.lock()()
	c, ok := s.contracts[id]
	if !ok {
		return ports.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = s.now()
	s.contracts[id] = c
	return nil
}

// Job runs

func (s *Store) RecordJobRun(ctx context.Context, run *ports.JobRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&run.ID)
	r := *run
	r.Output = append([]string(nil), run.Output...)
	s.jobRuns = append(s.jobRuns, r)
	return nil
}

func (s *Store) ListJobRuns(ctx context.Context, job string, limit int) ([]ports.JobRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ports.JobRun
	for i := len(s.jobRuns) - 1; i >= 0; i-- {
		r := s.jobRuns[i]
		if job != "" && r.Job != job {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// HistoryLen reports the number of stored history entries.
func (s *Store) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
