package clientip

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolve(t *testing.T, forwarded string) string {
	t.Helper()

	var got string
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = FromRequest(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return got
}

func TestFromRequestForwardedFirstEntry(t *testing.T) {
	if got := resolve(t, "1.2.3.4, 10.0.0.1, 10.0.0.2"); got != "1.2.3.4" {
		t.Errorf("expected first forwarded entry, got %q", got)
	}
}

func TestFromRequestForwardedSingle(t *testing.T) {
	if got := resolve(t, " 5.6.7.8 "); got != "5.6.7.8" {
		t.Errorf("expected trimmed entry, got %q", got)
	}
}

func TestFromRequestFallsBackToRemoteAddr(t *testing.T) {
	if got := resolve(t, ""); got == "" {
		t.Error("expected the connection address as fallback")
	}
}
