package api

import (
	"net/http"

	"spg-be/internal/product"
	"spg-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, key string) (int64, bool) {
	id, err := utils.ParseInt64(c.Param(key))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return id, true
}

func pathYearWeek(c *gin.Context, weekKey string) (int, int, bool) {
	year, week, ok := utils.ParseYearWeek(c.Param("year"), c.Param(weekKey))
	if !ok {
		writeError(c, product.ErrInvalidWeek)
		return 0, 0, false
	}
	return year, week, true
}

// sessionProvider returns the provider behind the logged-in farmer.
func sessionProvider(c *gin.Context) (int64, bool) {
	id, ok := utils.ProviderIDFrom(c.Request.Context())
	if !ok {
		writeError(c, errUnauthorized)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errBadRequest)
		return false
	}
	return true
}
