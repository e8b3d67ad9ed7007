package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jayvico/ams-api/internal/application/audit"
	"github.com/jayvico/ams-api/internal/application/dto"
	"github.com/jayvico/ams-api/internal/domain/repository"
)

// AuditHandler exposes the audit trail read path (admin only).
type AuditHandler struct {
	recorder *audit.Recorder
}

// NewAuditHandler builds the handler.
func NewAuditHandler(recorder *audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// List GET /api/audit-logs?userId=&eventType=&limit=
//
// Store errors degrade to an empty list inside the recorder; this endpoint
// never reports an audit read failure.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	events := h.recorder.Query(c.UserContext(), repository.AuditFilter{
		UserID:    c.Query("userId"),
		EventType: c.Query("eventType"),
		Limit:     limit,
	})
	out := make([]dto.AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToAuditEventResponse(e))
	}
	return c.JSON(out)
}
