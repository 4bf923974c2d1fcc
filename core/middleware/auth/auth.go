package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"asteroids-backend/core/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Config holds configuration for token issuing and validation.
type Config struct {
	// Secret is the HS256 signing key for access tokens.
	Secret string `mapstructure:"secret" default:""`
	// TokenTTLHours is the access token lifetime in hours (25 weeks by
	// default, so installed game clients stay logged in).
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"4200"`
}

const userLocal = "user"

// IssueToken signs a new access token for the given user.
func IssueToken(cfg Config, userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.TokenTTLHours) * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// New returns a middleware that requires a valid bearer token and resolves
// the token subject to a stored user. The resolved user is stored in the
// request locals for handlers to pick up via CurrentUser.
//
// Failure modes are distinguished for the client: a missing or malformed
// header is 401 Unauthorized, an expired token is 401, any other invalid
// token is 422, and a valid token whose user no longer exists is 401.
func New(cfg Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Expired token"})
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid token"})
		}

		id, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid token"})
		}

		var user model.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Cannot find user. Do you need to logout?"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}

		c.Locals(userLocal, &user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user resolved by the middleware,
// or nil on routes where the middleware did not run.
func CurrentUser(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(userLocal).(*model.User)
	return u
}
