package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func parseClaims(ctx *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
	}
	return claims, nil
}

// JwtMiddleware authenticates any logged-in user and stores user_id and
// role in the request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, err := parseClaims(ctx)
	if claims == nil {
		return err
	}

	ctx.Locals("user_id", claims["user_id"])
	if role, ok := claims["role"].(string); ok {
		ctx.Locals("role", role)
	}
	return ctx.Next()
}

// RequireRoles authenticates and additionally demands one of the given
// roles. SUPERADMIN passes every check that accepts ADMIN.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles)+1)
	for _, r := range roles {
		allowed[r] = true
		if r == "ADMIN" {
			allowed["SUPERADMIN"] = true
		}
	}

	return func(ctx *fiber.Ctx) error {
		claims, err := parseClaims(ctx)
		if claims == nil {
			return err
		}

		role, ok := claims["role"].(string)
		if !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Role missing"))
		}
		if !allowed[role] {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied"))
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("role", role)
		return ctx.Next()
	}
}
