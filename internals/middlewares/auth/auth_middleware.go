// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/configs"
)

// AuthJWT verifies the bearer token issued by the external auth service and
// stores the tutor's user_id in locals. Identity itself (signup, sessions,
// password reset) lives entirely outside this API.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if userID, err := verifyHMAC(tokenString); err == nil {
			c.Locals("user_id", userID.String())
			return c.Next()
		}

		// Fallback: a raw Google ID token (mobile clients send these directly)
		if configs.GoogleClientID != "" {
			if userID, err := verifyGoogleIDToken(tokenString); err == nil {
				c.Locals("user_id", userID.String())
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", fiber.ErrUnauthorized
	}
	if ck := strings.TrimSpace(c.Cookies("access_token")); ck != "" {
		return ck, nil
	}
	return "", fiber.ErrUnauthorized
}

func verifyHMAC(tokenString string) (uuid.UUID, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, err
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return uuid.Nil, err
	}
	return extractUserID(claims)
}

func verifyGoogleIDToken(tokenString string) (uuid.UUID, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(tokenString, []string{configs.GoogleClientID}); err != nil {
		return uuid.Nil, err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	// Google subs are opaque numeric strings, not UUIDs; derive a stable one.
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("google:"+claimSet.Sub)), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Token has no exp claim")
	}
	var exp time.Time
	switch t := expRaw.(type) {
	case float64:
		exp = time.Unix(int64(t), 0)
	case int64:
		exp = time.Unix(t, 0)
	default:
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid exp claim")
	}
	if time.Now().After(exp.Add(leeway)) {
		return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"user_id", "sub"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID")
}
