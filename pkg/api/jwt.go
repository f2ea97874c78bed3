package api

import (
	"strings"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const principalLocalsKey = "principal"

type principalClaims struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// EnsureValidToken resolves the authenticated principal from a Bearer HMAC
// JWT. Token issuance is handled by a separate auth service sharing the
// same signing secret.
func EnsureValidToken(signingSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.SendStatus(fiber.StatusUnauthorized)
			return c.JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		jwtToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &principalClaims{}
		token, err := jwt.ParseWithClaims(jwtToken, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return signingSecret, nil
		})

		if err != nil || !token.Valid {
			c.SendStatus(fiber.StatusUnauthorized)
			return c.JSON(fiber.Map{
				"error": "Invalid auth token",
			})
		}

		c.Locals(principalLocalsKey, fleet.Principal{
			Identity: claims.ID,
			Role:     claims.Role,
		})

		return c.Next()
	}
}
