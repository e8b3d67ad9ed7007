package entity

import "time"

// Audit event types. Closed enumeration; new types require a schema note.
const (
	AuditLogin          = "login"
	AuditLogout         = "logout"
	AuditRegister       = "register"
	AuditProfileUpdate  = "profile_update"
	AuditUserCreate     = "user_create"
	AuditUserUpdate     = "user_update"
	AuditUserDeactivate = "user_deactivate"
	AuditTokenRefresh   = "token_refresh"
	AuditLoginFailed    = "login_failed"
)

// AuditActorAnonymous is the actor recorded for failed logins, where no
// authenticated user exists.
const AuditActorAnonymous = "anonymous"

// AuditEvent is an immutable record of a security-relevant action.
// Events are append-only; nothing in this system mutates or deletes them.
type AuditEvent struct {
	ID          string
	UserID      string // actor id, or AuditActorAnonymous
	EventType   string
	Description string
	Metadata    map[string]any
	IPAddress   string
	UserAgent   string
	Timestamp   time.Time
}
