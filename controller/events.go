package controller

import (
	"partydeck/splitscreen"
	"partydeck/websocket"

	"github.com/gin-gonic/gin"
)

// EventsCtrl streams splitscreen state changes over a websocket.
type EventsCtrl struct {
	Hub *websocket.Hub
}

type StateEvent struct {
	State splitscreen.State
}

func (impl EventsCtrl) Setup(r *gin.RouterGroup) {
	r.GET("/ws", impl.Hub.Handle)
}

// Observe is meant for splitscreen.Guard.OnChange.
func (impl EventsCtrl) Observe(state splitscreen.State) {
	impl.Hub.Broadcast(StateEvent{State: state})
}
