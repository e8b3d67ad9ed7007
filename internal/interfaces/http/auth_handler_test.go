package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jayvico/ams-api/internal/application/audit"
	"github.com/jayvico/ams-api/internal/application/auth"
	"github.com/jayvico/ams-api/internal/application/dto"
	"github.com/jayvico/ams-api/internal/application/usecase"
	"github.com/jayvico/ams-api/internal/domain"
	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
	"github.com/jayvico/ams-api/pkg/logger"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		now := time.Now().UTC()
		u.LastLoginAt = &now
	}
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type memAuditRepo struct {
	mu     sync.Mutex
	events []*entity.AuditEvent
}

func (r *memAuditRepo) Insert(_ context.Context, e *entity.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *memAuditRepo) Query(_ context.Context, _ repository.AuditFilter) ([]*entity.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events, nil
}

type testServer struct {
	app   *fiber.App
	users *memUserRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	users := newMemUserRepo()
	recorder := audit.NewRecorder(&memAuditRepo{}, log)
	t.Cleanup(recorder.Close)

	authUC := auth.NewUseCase(users, recorder, auth.TokenConfig{
		Secret:     testSecret,
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
		Issuer:     "jayvico-ams",
	}, log)

	app := fiber.New()
	Router(app, RouterDeps{
		AuthUC:     authUC,
		VehicleUC:  usecase.NewVehicleUseCase(nil),
		SheetUC:    usecase.NewVehicleSheetUseCase(nil, nil, nil),
		CustomerUC: usecase.NewCustomerUseCase(nil),
		AuditRec:   recorder,
		JWTSecret:  testSecret,
	})
	return &testServer{app: app, users: users}
}

func (s *testServer) seedUser(t *testing.T, email, password, role string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestLoginEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "ana@jayvico.com", "secret-password", entity.RoleFinance, true)

	status, body := s.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "ana@jayvico.com",
		Password: "secret-password",
	})
	require.Equal(t, fiber.StatusOK, status)

	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "ana@jayvico.com", out.User.Email)
	assert.NotContains(t, string(body), "passwordHash")
}

func TestLoginEndpointGenericFailureBody(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "ana@jayvico.com", "secret-password", entity.RoleFinance, true)
	s.seedUser(t, "gone@jayvico.com", "secret-password", entity.RoleFinance, false)

	// Unknown email, wrong password and inactive account must be
	// indistinguishable from the outside.
	var bodies []string
	for _, in := range []dto.LoginRequest{
		{Email: "nobody@jayvico.com", Password: "secret-password"},
		{Email: "ana@jayvico.com", Password: "wrong-password"},
		{Email: "gone@jayvico.com", Password: "secret-password"},
	} {
		status, body := s.do(t, "POST", "/api/auth/login", "", in)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		bodies = append(bodies, string(body))
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestRegisterEndpointConflict(t *testing.T) {
	s := newTestServer(t)

	in := dto.RegisterRequest{
		Email:     "new@jayvico.com",
		Password:  "secret-password",
		FirstName: "New",
		LastName:  "User",
		Role:      entity.RoleCustomerService,
	}
	status, _ := s.do(t, "POST", "/api/auth/register", "", in)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := s.do(t, "POST", "/api/auth/register", "", in)
	assert.Equal(t, fiber.StatusConflict, status)

	var errOut dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errOut))
	assert.Equal(t, "EMAIL_EXISTS", errOut.Code)
}

func TestRefreshEndpointRejectsAccessToken(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "ana@jayvico.com", "secret-password", entity.RoleFinance, true)

	status, body := s.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "ana@jayvico.com",
		Password: "secret-password",
	})
	require.Equal(t, fiber.StatusOK, status)
	var login dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &login))

	status, _ = s.do(t, "POST", "/api/auth/refresh", "", dto.RefreshRequest{RefreshToken: login.AccessToken})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = s.do(t, "POST", "/api/auth/refresh", "", dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.Equal(t, fiber.StatusOK, status)
	var refreshed dto.RefreshResponse
	require.NoError(t, json.Unmarshal(body, &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestProfileEndpointsRequireToken(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, "GET", "/api/auth/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "ana@jayvico.com", "secret-password", entity.RoleFinance, true)

	status, body := s.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "ana@jayvico.com",
		Password: "secret-password",
	})
	require.Equal(t, fiber.StatusOK, status)
	var login dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &login))

	status, body = s.do(t, "GET", "/api/auth/profile", login.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	var profile dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "ana@jayvico.com", profile.Email)

	first := "Renamed"
	status, body = s.do(t, "PUT", "/api/auth/profile", login.AccessToken, dto.UpdateProfileRequest{FirstName: &first})
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "Renamed", profile.FirstName)
}

func TestAdminSurfaceRequiresAdminRole(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "staff@jayvico.com", "secret-password", entity.RoleFieldStaff, true)
	s.seedUser(t, "root@jayvico.com", "secret-password", entity.RoleAdmin, true)

	login := func(email string) string {
		status, body := s.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{
			Email:    email,
			Password: "secret-password",
		})
		require.Equal(t, fiber.StatusOK, status)
		var out dto.AuthResponse
		require.NoError(t, json.Unmarshal(body, &out))
		return out.AccessToken
	}

	staffToken := login("staff@jayvico.com")
	adminToken := login("root@jayvico.com")

	status, _ := s.do(t, "GET", "/api/users", staffToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = s.do(t, "GET", "/api/users", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = s.do(t, "GET", "/api/audit-logs", staffToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = s.do(t, "GET", "/api/audit-logs", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAdminCreateUserIssuesTemporaryPassword(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "root@jayvico.com", "secret-password", entity.RoleAdmin, true)

	status, body := s.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    "root@jayvico.com",
		Password: "secret-password",
	})
	require.Equal(t, fiber.StatusOK, status)
	var login dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &login))

	status, body = s.do(t, "POST", "/api/users", login.AccessToken, dto.CreateUserRequest{
		Email:     "staff@jayvico.com",
		FirstName: "Field",
		LastName:  "Staff",
		Role:      entity.RoleFieldStaff,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var out dto.CreateUserResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.TemporaryPassword)
	assert.True(t, out.User.MustChangePassword)
}
