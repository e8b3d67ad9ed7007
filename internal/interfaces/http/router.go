package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jayvico/ams-api/internal/application/audit"
	"github.com/jayvico/ams-api/internal/application/auth"
	"github.com/jayvico/ams-api/internal/application/usecase"
	"github.com/jayvico/ams-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	VehicleUC  *usecase.VehicleUseCase
	SheetUC    *usecase.VehicleSheetUseCase
	CustomerUC *usecase.CustomerUseCase
	AuditRec   *audit.Recorder
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Protected routes (Bearer access token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authGroup = protected.Group("/auth")
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/profile", authHandler.GetProfile)
	authGroup.Put("/profile", authHandler.UpdateProfile)
	authGroup.Post("/change-password", authHandler.ChangePassword)

	// Vehicles (protected)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC, deps.SheetUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)
	vehicles.Get("/:id/sheet", vehicleHandler.Sheet)

	// Customers (protected)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Admin surface (protected + Admin role)
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.AuthUC)
	users := admin.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/deactivate", userHandler.Deactivate)

	auditHandler := NewAuditHandler(deps.AuditRec)
	admin.Get("/audit-logs", auditHandler.List)
}
