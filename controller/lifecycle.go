package controller

import (
	"net/http"

	"partydeck/process_chan"
	"partydeck/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// LifecycleCtrl lets the game side end the control server.
type LifecycleCtrl struct {
}

func (impl LifecycleCtrl) Setup(r *gin.RouterGroup) {
	v1 := r.Group("/v1")
	v1.POST("/shutdown", impl.ShutdownHandler)
}

func (impl LifecycleCtrl) ShutdownHandler(c *gin.Context) {
	if !process_chan.SendShutdown() {
		response.ResponseError(c, http.StatusTooManyRequests, errors.New("shutdown already pending"))
		return
	}
	response.Response(c, nil)
}
