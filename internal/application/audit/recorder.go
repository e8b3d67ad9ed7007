// Package audit appends security-relevant events without ever becoming a
// point of failure for the operation that triggered them. Writes are handed
// to a background worker over a buffered channel; every error on that path is
// logged and swallowed.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
	"github.com/jayvico/ams-api/pkg/logger"
)

const (
	defaultBuffer   = 256
	defaultQueryCap = 100
	insertTimeout   = 5 * time.Second
)

// ClientContext carries request metadata worth keeping in the trail.
type ClientContext struct {
	IPAddress string
	UserAgent string
}

// Recorder dispatches audit events to the store asynchronously.
type Recorder struct {
	repo   repository.AuditRepository
	log    *logger.Logger
	events chan *entity.AuditEvent
	done   chan struct{}
	once   sync.Once
}

// NewRecorder starts the background worker. Call Close on shutdown to drain.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	r := &Recorder{
		repo:   repo,
		log:    log,
		events: make(chan *entity.AuditEvent, defaultBuffer),
		done:   make(chan struct{}),
	}
	go r.worker()
	return r
}

func (r *Recorder) worker() {
	defer close(r.done)
	for e := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		if err := r.repo.Insert(ctx, e); err != nil {
			r.log.Warn().Err(err).
				Str("event_type", e.EventType).
				Str("user_id", e.UserID).
				Msg("audit event dropped: store write failed")
		}
		cancel()
	}
}

// Record queues an event. It never blocks: when the buffer is full the event
// is dropped with a warning, because losing an audit line must not stall a
// login.
func (r *Recorder) Record(e *entity.AuditEvent) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	select {
	case r.events <- e:
	default:
		r.log.Warn().
			Str("event_type", e.EventType).
			Msg("audit event dropped: buffer full")
	}
}

// Close stops accepting events and waits for the worker to drain the buffer.
// Safe to call more than once; Record must not be called afterwards.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.events)
	})
	<-r.done
}

// Query returns events newest first. Store errors are logged and reported as
// an empty trail; availability of the endpoint wins over strict error
// reporting here.
func (r *Recorder) Query(ctx context.Context, f repository.AuditFilter) []*entity.AuditEvent {
	if f.Limit <= 0 || f.Limit > defaultQueryCap {
		f.Limit = defaultQueryCap
	}
	events, err := r.repo.Query(ctx, f)
	if err != nil {
		r.log.Error().Err(err).Msg("audit query failed")
		return []*entity.AuditEvent{}
	}
	return events
}

// Event constructors mirror the actions the orchestrator reports.

// LoginEvent successful authentication by userID.
func LoginEvent(userID string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      userID,
		EventType:   entity.AuditLogin,
		Description: "User logged in successfully",
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// LogoutEvent client-initiated logout (token discard happens client-side).
func LogoutEvent(userID string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      userID,
		EventType:   entity.AuditLogout,
		Description: "User logged out",
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// LoginFailedEvent failed authentication attempt. The attempted email is kept
// in metadata; the password never is.
func LoginFailedEvent(email string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      entity.AuditActorAnonymous,
		EventType:   entity.AuditLoginFailed,
		Description: "Failed login attempt for email: " + email,
		Metadata:    map[string]any{"email": email},
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// RegisterEvent self-registration of a new user.
func RegisterEvent(userID, email, role string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      userID,
		EventType:   entity.AuditRegister,
		Description: "New user registered",
		Metadata:    map[string]any{"email": email, "role": role},
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// ProfileUpdateEvent self-service profile or password change.
func ProfileUpdateEvent(userID string, changes map[string]any, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      userID,
		EventType:   entity.AuditProfileUpdate,
		Description: "User profile updated",
		Metadata:    map[string]any{"changes": changes},
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// UserCreateEvent admin created a user; attributed to the admin, not the target.
func UserCreateEvent(adminID, newUserID, newUserEmail, role string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      adminID,
		EventType:   entity.AuditUserCreate,
		Description: "Admin created new user",
		Metadata:    map[string]any{"newUserId": newUserID, "newUserEmail": newUserEmail, "role": role},
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// UserUpdateEvent admin updated a user; attributed to the admin.
func UserUpdateEvent(adminID, targetID string, changes map[string]any, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      adminID,
		EventType:   entity.AuditUserUpdate,
		Description: "Admin updated user",
		Metadata:    map[string]any{"targetUserId": targetID, "changes": changes},
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// UserDeactivateEvent admin deactivated a user; attributed to the admin.
func UserDeactivateEvent(adminID, targetID string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      adminID,
		EventType:   entity.AuditUserDeactivate,
		Description: "Admin deactivated user",
		Metadata:    map[string]any{"targetUserId": targetID},
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}

// TokenRefreshEvent access token minted from a refresh token.
func TokenRefreshEvent(userID string, cc ClientContext) *entity.AuditEvent {
	return &entity.AuditEvent{
		UserID:      userID,
		EventType:   entity.AuditTokenRefresh,
		Description: "User refreshed access token",
		IPAddress:   cc.IPAddress,
		UserAgent:   cc.UserAgent,
	}
}
