package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planfin-api/internal/application/auth"
	"github.com/jhoicas/Planfin-api/internal/application/report"
	"github.com/jhoicas/Planfin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PlanUC       *usecase.PlanUseCase
	ProjectionUC *usecase.ProjectionUseCase
	ReportUC     *report.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Plan + proyección (protegido)
	plan := protected.Group("/plan")
	planHandler := NewPlanHandler(deps.PlanUC)
	plan.Get("/", planHandler.Get)
	plan.Put("/", planHandler.Save)

	projectionHandler := NewProjectionHandler(deps.ProjectionUC, deps.ReportUC)
	plan.Get("/projection", projectionHandler.Get)
	plan.Get("/projection/report", projectionHandler.Report)
}
