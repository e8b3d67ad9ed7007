package dto

import (
	"time"

	"github.com/jayvico/ams-api/internal/domain/entity"
)

// AuditEventResponse output shape for GET /api/audit-logs.
type AuditEventResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	EventType   string         `json:"eventType"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	IPAddress   string         `json:"ipAddress,omitempty"`
	UserAgent   string         `json:"userAgent,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// ToAuditEventResponse maps an audit event to its response shape.
func ToAuditEventResponse(e *entity.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		EventType:   e.EventType,
		Description: e.Description,
		Metadata:    e.Metadata,
		IPAddress:   e.IPAddress,
		UserAgent:   e.UserAgent,
		Timestamp:   e.Timestamp,
	}
}
