package middleware

import (
	"time"

	"partydeck/logger"

	"github.com/gin-gonic/gin"
)

func LogHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		source := sourceWithCtx(c)
		source["latency_ms"] = time.Since(begin).Milliseconds()
		if len(c.Errors) > 0 {
			logger.Error("middle_ware_errors", source, c.Errors.Last())
			return
		}
		logger.Debug("middle_ware", source)
	}
}
