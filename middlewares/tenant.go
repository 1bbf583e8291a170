package middlewares

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/pkg/messenger"
)

var hotelIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// TenantMiddleware resolves the hotel identity from the hotel_id query
// parameter. A missing or malformed id is fatal for the request; there is no
// fallback property.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID := c.Query("hotel_id")
		if hotelID == "" || !hotelIDPattern.MatchString(hotelID) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid hotel id"})
			c.Abort()
			return
		}
		c.Set("hotelId", hotelID)

		// Guest display name forwarded by the mini-app from host init data.
		if name := c.GetHeader("X-Guest-Name"); name != "" {
			c.Request = c.Request.WithContext(messenger.WithGuestName(c.Request.Context(), name))
		}

		c.Next()
	}
}
