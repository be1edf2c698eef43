package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"partydeck/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrHandler turns a panic inside a handler into a logged 500.
func ErrHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				source := sourceWithCtx(c)
				source["stack_info"] = string(debug.Stack())
				logger.Error("un_handled_error", source, fmt.Errorf("%v", err))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

func sourceWithCtx(c *gin.Context) logrus.Fields {
	var statusCode int
	var path, method, params string
	if c.Request != nil {
		params = c.Request.URL.RawQuery
		path = c.Request.URL.Path
		method = c.Request.Method
	}
	if c.Writer != nil {
		statusCode = c.Writer.Status()
	}
	return logrus.Fields{
		"method":      method,
		"path":        path,
		"params":      params,
		"status_code": statusCode,
	}
}
