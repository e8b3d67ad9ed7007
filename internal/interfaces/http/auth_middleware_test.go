package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayvico/ams-api/internal/domain/entity"
	pkgjwt "github.com/jayvico/ams-api/pkg/jwt"
)

const testSecret = "middleware-test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": GetUserID(c),
			"email":  GetEmail(c),
			"role":   GetRole(c),
		})
	})
	app.Get("/admin", AuthMiddleware(testSecret), RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func accessToken(t *testing.T, role string) string {
	t.Helper()
	token, err := pkgjwt.Generate(testSecret, "user-1", "ana@jayvico.com", role, pkgjwt.UseAccess, "jayvico-ams", time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := newTestApp()

	token, err := pkgjwt.Generate(testSecret, "user-1", "ana@jayvico.com", entity.RoleFinance, pkgjwt.UseAccess, "jayvico-ams", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	app := newTestApp()

	token, err := pkgjwt.Generate(testSecret, "user-1", "ana@jayvico.com", entity.RoleAdmin, pkgjwt.UseRefresh, "jayvico-ams", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, entity.RoleFinance))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	app := newTestApp()

	for _, role := range []string{
		entity.RoleOperationsManager,
		entity.RoleCustomerService,
		entity.RoleFinance,
		entity.RoleFieldStaff,
	} {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken(t, role))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "role %s", role)
	}
}
