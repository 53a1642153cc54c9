package exts

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	"github.com/driftwood-social/interactive/pkg/internal/models"
	"github.com/driftwood-social/interactive/pkg/internal/services"
)

const PrincipalKey = "principal"

// Authenticate pulls the bearer token apart and, when it checks out, leaves
// the principal's username in the request locals. It never rejects on its
// own; guarded routes call EnsureAuthenticated.
func Authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(viper.GetString("security.jwt_secret")), nil
		})
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if username, ok := claims["username"].(string); ok {
					c.Locals(PrincipalKey, username)
				}
			}
		}
	}

	return c.Next()
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals(PrincipalKey).(string); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	return nil
}

// CurrentMember resolves the authenticated principal to its member row.
func CurrentMember(c *fiber.Ctx) (models.Member, error) {
	name, ok := c.Locals(PrincipalKey).(string)
	if !ok {
		return models.Member{}, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	member, err := services.GetMemberByUsername(name)
	if err != nil {
		return member, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to resolve member for %s: %v", name, err))
	}

	return member, nil
}
