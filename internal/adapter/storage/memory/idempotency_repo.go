package memory

import (
	"context"
	"fmt"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

type IdempotencyRepo struct{ s *Store }

func (r *IdempotencyRepo) Create(_ context.Context, _ pgx.Tx, log *domain.IdempotencyLog) error {
	return r.s.write(func(d *state) error {
		if _, ok := d.idempotency[log.Key]; ok {
			return fmt.Errorf("insert idempotency log: duplicate key %s", log.Key)
		}
		entry := *log
		entry.ResponseJSON = append([]byte(nil), log.ResponseJSON...)
		d.idempotency[log.Key] = entry
		return nil
	})
}

func (r *IdempotencyRepo) Get(_ context.Context, key string) (*domain.IdempotencyLog, error) {
	var out *domain.IdempotencyLog
	r.s.read(func(d *state) {
		if log, ok := d.idempotency[key]; ok {
			out = &log
		}
	})
	return out, nil
}

// AuditRepo keeps audit rows outside transactional state, like the
// autocommitted inserts of the postgres adapter.
type AuditRepo struct{ s *Store }

func (r *AuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.s.auditMu.Lock()
	defer r.s.auditMu.Unlock()
	r.s.audit = append(r.s.audit, *log)
	return nil
}

// List returns a copy of every audit row in insertion order.
func (r *AuditRepo) List() []domain.AuditLog {
	r.s.auditMu.Lock()
	defer r.s.auditMu.Unlock()
	return append([]domain.AuditLog(nil), r.s.audit...)
}

var (
	_ ports.IdempotencyRepository = (*IdempotencyRepo)(nil)
	_ ports.AuditRepository       = (*AuditRepo)(nil)
)
