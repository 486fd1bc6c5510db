package health

import (
	"walkroute/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleLiveness)
	group.Get("/ready", h.HandleReadiness)
}

// HandleLiveness reports that the server is up.
// @Summary Liveness
// @Description Reports the running environment and whether auto-reload is active.
// @Tags health
// @Produce json
// @Success 200 {object} health.Liveness "Liveness"
// @Router /health [get]
func (h *Handler) HandleLiveness(c *fiber.Ctx) error {
	return c.JSON(h.service.Liveness())
}

// HandleReadiness probes the configured dependencies.
// @Summary Readiness
// @Description Pings the database and checks the storage bucket when they are configured.
// @Tags health
// @Produce json
// @Success 200 {object} health.Readiness "All dependencies reachable"
// @Failure 503 {object} health.Readiness "At least one dependency failed"
// @Router /health/ready [get]
func (h *Handler) HandleReadiness(c *fiber.Ctx) error {
	report := h.service.Ready(c.UserContext())

	if report.Status != StatusReady {
		l := logger.WithRayID(h.service.logger, c)
		for name, check := range report.Checks {
			if check.Status != StatusOK {
				l.Warn("Dependency check failed", zap.String("dependency", name), zap.String("error", check.Error))
			}
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}

	return c.JSON(report)
}
