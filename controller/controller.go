package controller

import (
	"partydeck/middleware"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	Setup(r *gin.RouterGroup)
}

// NewEngine builds the control API served inside a compositor session.
func NewEngine(controllers ...Controller) *gin.Engine {
	engine := gin.New()
	// ErrHandler is the only panic recovery; LogHandler sits outside it to
	// log the resulting 500.
	engine.Use(middleware.LogHandler(), middleware.ErrHandler())
	group := engine.Group("/api")
	for _, value := range controllers {
		value.Setup(group)
	}
	return engine
}
