package controller

import (
	"io"
	"net/http"

	"partydeck/conf"
	"partydeck/kwin"
	"partydeck/logger"
	"partydeck/response"
	"partydeck/session"
	"partydeck/splitscreen"
	"partydeck/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type SplitscreenCtrl struct {
	Guard *splitscreen.Guard
	Conf  conf.Configure
	// Running defaults to tools.ProcessExists.
	Running func(name string) (int, bool)
}

func (impl SplitscreenCtrl) Setup(r *gin.RouterGroup) {
	v1 := r.Group("/v1")
	v1.GET("/splitscreen", impl.StateHandler)
	v1.POST("/splitscreen/load", impl.LoadHandler)
	v1.POST("/splitscreen/unload", impl.UnloadHandler)
}

type SplitscreenState struct {
	State             splitscreen.State
	Busy              bool
	Compositor        string
	CompositorRunning bool
	Nested            bool
}

type LoadRequest struct {
	Path string
}

func (impl SplitscreenCtrl) StateHandler(c *gin.Context) {
	running := impl.Running
	if running == nil {
		running = tools.ProcessExists
	}
	_, exist := running(impl.Conf.Session.Compositor)
	response.Response(c, SplitscreenState{
		State:             impl.Guard.State(),
		Busy:              impl.Guard.Busy(),
		Compositor:        impl.Conf.Session.Compositor,
		CompositorRunning: exist,
		Nested:            session.Inside(),
	})
}

func (impl SplitscreenCtrl) LoadHandler(c *gin.Context) {
	var request LoadRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		response.ResponseParamterError(c, err)
		return
	}
	if len(request.Path) == 0 {
		request.Path = impl.Conf.Script.Path
	}
	if len(request.Path) == 0 {
		response.ResponseParamterError(c, errors.New("no script path given and none configured"))
		return
	}
	if err := impl.Guard.LoadAndStart(request.Path); err != nil {
		logger.Error("load_handler", request.Path, err)
		response.ResponseError(c, statusOf(err), err)
		return
	}
	response.Response(c, SplitscreenState{State: impl.Guard.State()})
}

func (impl SplitscreenCtrl) UnloadHandler(c *gin.Context) {
	if err := impl.Guard.Unload(); err != nil {
		logger.Error("unload_handler", nil, err)
		response.ResponseError(c, statusOf(err), err)
		return
	}
	response.Response(c, SplitscreenState{State: impl.Guard.State()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, kwin.ErrScriptMissing):
		return http.StatusBadRequest
	case errors.Is(err, splitscreen.ErrAlreadyActive), errors.Is(err, splitscreen.ErrNotActive),
		errors.Is(err, splitscreen.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
