package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityLocalsKey = "identity"

// Middleware resolves the request's identity from the Authorization
// header and stores it in the request locals. It never rejects: routes
// decide through the access policy whether Anonymous is acceptable.
func Middleware(provider *TokenProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := Anonymous

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				identity = provider.Resolve(parts[1])
			}
		}

		c.Locals(identityLocalsKey, identity)
		return c.Next()
	}
}

// FromContext returns the identity stored by Middleware, or Anonymous
// when the middleware did not run.
func FromContext(c *fiber.Ctx) Identity {
	if identity, ok := c.Locals(identityLocalsKey).(Identity); ok {
		return identity
	}
	return Anonymous
}
