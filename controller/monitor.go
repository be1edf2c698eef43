package controller

import (
	"net/http"

	"partydeck/logger"
	"partydeck/monitor"
	"partydeck/response"

	"github.com/gin-gonic/gin"
)

type MonitorCtrl struct {
	Provider monitor.Provider
}

func (impl MonitorCtrl) Setup(r *gin.RouterGroup) {
	v1 := r.Group("/v1")
	v1.GET("/monitors", impl.ListHandler)
}

func (impl MonitorCtrl) ListHandler(c *gin.Context) {
	monitors, err := impl.Provider.Monitors()
	if err != nil {
		logger.Error("list_monitors", nil, err)
		response.ResponseError(c, http.StatusServiceUnavailable, err)
		return
	}
	response.Response(c, monitors)
}
