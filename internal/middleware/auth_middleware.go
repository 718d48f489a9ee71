package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	jwtPkg "github.com/danhluom/thiepcuoi-backend/pkg/jwt"
)

// AuthMiddleware validates the Bearer token and stores userID, userEmail
// and role in the request locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user ID in token"))
		}

		userEmail, ok := claims["email"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email in token"))
		}

		role, _ := claims["role"].(string)

		c.Locals("userID", uint(userIDFloat))
		c.Locals("userEmail", userEmail)
		c.Locals("role", role)

		return c.Next()
	}
}

// RequireRole gates a route group to the listed roles. Must run after
// AuthMiddleware.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, _ := c.Locals("role").(string)
		for _, r := range roles {
			if current == string(r) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Insufficient permissions"))
	}
}
