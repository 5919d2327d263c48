package middleware

import (
	"net/http"
	"strings"

	"github.com/vitos-sk/MOST/internal/services"
	"github.com/vitos-sk/MOST/internal/telegram"

	"github.com/gin-gonic/gin"
)

// AdminAuth validates the Bearer token and re-checks the allow-list, so a
// token issued before an admin was removed stops working immediately.
func AdminAuth(adminService *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		email, err := adminService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if !adminService.IsAdmin(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}

// TelegramAuth verifies the WebApp init data passed by the Mini App client
// and puts the verified Telegram user into the request context.
func TelegramAuth(botToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader("X-Telegram-Init-Data")
		if initData == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "telegram init data required"})
			return
		}

		user, err := telegram.VerifyInitData(initData, botToken, telegram.MaxAge)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid telegram init data"})
			return
		}

		c.Set("telegram_user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}
