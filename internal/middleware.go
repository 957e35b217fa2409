package internal

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Authorize accepts the token from the "token" cookie or a bearer header.
func (h *Handlers) Authorize(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if token == "" {
		auth := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	claims, err := h.Service.ParseToken(token)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	c.Locals(localUserID, claims.UserID)
	c.Locals(localRole, claims.Role)
	return c.Next()
}

func (h *Handlers) RequireCapability(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !h.caps.Can(userRole(c), resource, action) {
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.Next()
	}
}
