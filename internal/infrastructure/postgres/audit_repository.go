package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implements the append-only AuditRepository port over PostgreSQL.
// Metadata is stored as jsonb; rows are never updated or deleted here.
type AuditRepo struct {
	pool *pgxpool.Pool
}

// NewAuditRepository builds the persistence adapter for audit events.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Insert appends one event.
func (r *AuditRepo) Insert(ctx context.Context, e *entity.AuditEvent) error {
	meta, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("marshal audit metadata: %w", err)
	}
	query := `
		INSERT INTO audit_logs (id, user_id, event_type, description, metadata,
			ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.pool.Exec(ctx, query,
		e.ID, e.UserID, e.EventType, e.Description, meta,
		e.IPAddress, e.UserAgent, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// Query returns events newest first, honoring the optional filters.
func (r *AuditRepo) Query(ctx context.Context, f repository.AuditFilter) ([]*entity.AuditEvent, error) {
	query := `
		SELECT id, user_id, event_type, description, metadata, ip_address, user_agent, created_at
		FROM audit_logs`
	args := []any{}
	where := ""
	if f.UserID != "" {
		args = append(args, f.UserID)
		where = fmt.Sprintf(" WHERE user_id = $%d", len(args))
	}
	if f.EventType != "" {
		args = append(args, f.EventType)
		if where == "" {
			where = fmt.Sprintf(" WHERE event_type = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND event_type = $%d", len(args))
		}
	}
	args = append(args, f.Limit)
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditEvent
	for rows.Next() {
		var e entity.AuditEvent
		var meta []byte
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.EventType, &e.Description, &meta,
			&e.IPAddress, &e.UserAgent, &e.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &e.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal audit metadata: %w", err)
			}
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
