package middleware

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/content-planner/configs"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/maheshrc27/content-planner/pkg/utils"
)

type AuthMiddleware struct {
	s   service.ApiKeyService
	u   service.UserService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, keys service.ApiKeyService, users service.UserService) *AuthMiddleware {
	return &AuthMiddleware{s: keys, u: users, cfg: cfg}
}

// AuthMiddleware resolves the caller from the api_key query parameter or the
// session cookie and stores the user under the "user" local.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		apiKey := c.Query("api_key")

		if tokenString == "" && apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Keys or cookies",
			})
		}

		var userID int64
		if apiKey != "" {
			id, err := m.s.GetUserID(c.Context(), apiKey)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			userID = id
		} else {
			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err == nil {
				userID, err = strconv.ParseInt(claims.UserID, 10, 64)
			}
			if err != nil {
				m.clearCookie(c)
				slog.Info("token validation failed", "error", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}
		}

		user, err := m.u.GetUserInfo(c.Context(), userID)
		if errors.Is(err, service.ErrUserNotFound) {
			m.clearCookie(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Account no longer exists",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("user_id", strconv.FormatInt(user.ID, 10))
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := c.Locals("user").(*models.User)
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) clearCookie(c *fiber.Ctx) {
	if c.Cookies(m.cfg.CookieName) == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:   m.cfg.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
