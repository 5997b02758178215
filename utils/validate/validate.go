package validate

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampIntQuery 解析整數 query 參數並夾在 [min, max]；缺少或解析失敗回傳 def
func ClampIntQuery(c *gin.Context, key string, def, min, max int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
