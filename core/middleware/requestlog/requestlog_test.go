package requestlog

import (
	"net/http/httptest"
	"testing"

	"walkroute/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(rayid.Header, "ray-1")
	_, err := app.Test(req)
	require.NoError(t, err)

	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	completed := logs.FilterMessage("Request completed").All()
	require.Len(t, completed, 2)

	first := completed[0].ContextMap()
	assert.Equal(t, "ray-1", first["ray_id"])
	assert.Equal(t, "/ok", first["path"])
	assert.EqualValues(t, 200, first["status"])

	assert.EqualValues(t, 404, completed[1].ContextMap()["status"])
	assert.Equal(t, 1, logs.FilterMessage("Request error").Len())
}
