package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"partydeck/logger"

	"github.com/gin-gonic/gin"
)

func TestErrHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name     string
		handler  gin.HandlerFunc
		wantCode int
		wantLog  string
	}{
		{
			name:     "panic becomes 500",
			handler:  func(c *gin.Context) { panic("nil guard") },
			wantCode: http.StatusInternalServerError,
			wantLog:  "un_handled_error",
		},
		{
			name:     "ordinary request passes",
			handler:  func(c *gin.Context) { c.Status(http.StatusNoContent) },
			wantCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.SetOutput(&buf)
			engine := gin.New()
			engine.Use(LogHandler(), ErrHandler())
			engine.GET("/", tt.handler)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantLog != "" && !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log %q does not mention %s", buf.String(), tt.wantLog)
			}
		})
	}
}
