package repository

import (
	"context"

	"github.com/jayvico/ams-api/internal/domain/entity"
)

// AuditFilter narrows audit queries. Zero values mean "no filter".
type AuditFilter struct {
	UserID    string
	EventType string
	Limit     int
}

// AuditRepository is the append-only persistence port for audit events.
type AuditRepository interface {
	Insert(ctx context.Context, e *entity.AuditEvent) error
	Query(ctx context.Context, f AuditFilter) ([]*entity.AuditEvent, error)
}
