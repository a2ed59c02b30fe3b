package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedApp(secret string, hit *bool) *fiber.App {
	app := fiber.New()
	app.Post("/guarded", TriggerToken(secret), func(c *fiber.Ctx) error {
		*hit = true
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestTriggerTokenMissingHeader(t *testing.T) {
	hit := false
	app := gatedApp("sekret", &hit)

	req := httptest.NewRequest("POST", "/guarded", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hit, "handler must not run without a token")
}

func TestTriggerTokenWrongToken(t *testing.T) {
	hit := false
	app := gatedApp("sekret", &hit)

	req := httptest.NewRequest("POST", "/guarded", nil)
	req.Header.Set(TriggerHeader, "not-the-secret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hit)
}

func TestTriggerTokenCorrectToken(t *testing.T) {
	hit := false
	app := gatedApp("sekret", &hit)

	req := httptest.NewRequest("POST", "/guarded", nil)
	req.Header.Set(TriggerHeader, "sekret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, hit)
}

// An unset secret is misconfiguration and must fail closed, even when the
// caller sends an empty token that would otherwise compare equal.
func TestTriggerTokenEmptySecretNeverAuthorizes(t *testing.T) {
	hit := false
	app := gatedApp("", &hit)

	req := httptest.NewRequest("POST", "/guarded", nil)
	req.Header.Set(TriggerHeader, "")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hit)

	req = httptest.NewRequest("POST", "/guarded", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hit)
}
