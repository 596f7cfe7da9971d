package ports

import "context"

// Store adds transactional units of work and the job run log on top of
// Repositories.
type Store interface {
	Repositories
	JobRunRepository
	// WithTx runs fn against repositories bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

var (
	ErrNotFound = errString("not found")
	ErrConflict = errString("already exists")
)

type errString string

func (e errString) Error() string { return string(e) }
