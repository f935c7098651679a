package middleware

import (
	"github.com/farmlink/internal/models"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// FarmerOnly gates a route on the farmer role. A failed check is not a hard
// HTTP failure: the user is warned and sent back to the dashboard.
func FarmerOnly(warning string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil || user.AccountType != models.AccountTypeFarmer {
			response.FlashRedirect(c, "/dashboard", warning)
			c.Abort()
			return
		}
		c.Next()
	}
}
