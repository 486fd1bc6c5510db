package settings

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the settings snapshot.
type Handler struct {
	snapshot Snapshot
}

// NewHandler creates a new HTTP handler.
func NewHandler(snapshot Snapshot) *Handler {
	return &Handler{snapshot: snapshot}
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/settings", h.HandleGetSettings)
}

// HandleGetSettings returns the resolved settings.
// @Summary Get Settings
// @Description Returns the resolved configuration with secrets masked and the derived launch options.
// @Tags settings
// @Produce json
// @Param X-API-Key header string false "API key"
// @Success 200 {object} settings.Snapshot "Settings"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.snapshot)
}
