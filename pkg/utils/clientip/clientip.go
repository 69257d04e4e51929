// Package clientip resolves the submitting client's network address.
//
// The X-Forwarded-For header is client-controlled unless an upstream
// proxy sanitizes it, so the resolved address is an abuse deterrent,
// not a security boundary.
package clientip

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FromRequest prefers the first X-Forwarded-For entry and falls back
// to the connection's remote address.
func FromRequest(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.IP()
}
