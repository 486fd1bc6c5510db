package requestlog

import (
	"time"

	"walkroute/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// New logs every request with its ray id, status and latency.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		log := logger.WithRayID(l, c)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler runs after the middleware chain, so derive the status here.
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			log.Error("Request error", zap.Error(err))
		}

		log.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", utils.CopyString(c.Path())),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
