package utils

import "github.com/gin-gonic/gin"

func CurrentHotelID(c *gin.Context) string {
	if v, ok := c.Get("hotelId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
