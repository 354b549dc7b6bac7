package middleware

import (
	"strings"

	"go-glassfloor-ws/internal/auth"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequireAuth validates the JWT, enforces the single-session token version
// against the DB, and sets user info in the request context.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}

		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_uuid", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("user_name", claims.FullName)

		return c.Next()
	}
}

// RequirePermission gates a route on one permission key. The decision comes
// from the server-side permission cache, not from token claims, so a grant
// change or a deactivation takes effect on the next request. A Master user
// passes every key; an inactive user passes none.
func RequirePermission(permCache *auth.PermissionCache, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_uuid").(uuid.UUID)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No authenticated user"})
		}

		if !permCache.Check(userID, key) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + key + "' permission",
			})
		}

		return c.Next()
	}
}

// RequireAnyPermission passes when the user holds at least one of the keys.
func RequireAnyPermission(permCache *auth.PermissionCache, keys ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_uuid").(uuid.UUID)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No authenticated user"})
		}

		for _, key := range keys {
			if permCache.Check(userID, key) {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(keys, ", ") + " permissions",
		})
	}
}
