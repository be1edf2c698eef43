package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"partydeck/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans state events out to every connected websocket client.
type Hub struct {
	connections map[*connection]bool
	broadcast   chan []byte
	register    chan *connection
	unregister  chan *connection
	done        chan struct{}
	once        sync.Once
}

type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*connection]bool),
		broadcast:   make(chan []byte, 16),
		register:    make(chan *connection),
		unregister:  make(chan *connection),
		done:        make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for conn := range h.connections {
				close(conn.send)
				delete(h.connections, conn)
			}
			return
		case conn := <-h.register:
			h.connections[conn] = true
		case conn := <-h.unregister:
			if _, ok := h.connections[conn]; ok {
				close(conn.send)
				delete(h.connections, conn)
			}
		case message := <-h.broadcast:
			for conn := range h.connections {
				select {
				case conn.send <- message:
				default:
					close(conn.send)
					delete(h.connections, conn)
				}
			}
		}
	}
}

func (h *Hub) Stop() {
	h.once.Do(func() { close(h.done) })
}

// Broadcast marshals v and queues it for every client. It never blocks; an
// event is dropped when the queue is full.
func (h *Hub) Broadcast(v interface{}) {
	message, err := json.Marshal(v)
	if err != nil {
		logger.Error("marshal_broadcast", nil, err)
		return
	}
	select {
	case h.broadcast <- message:
	default:
		logger.Warn("broadcast_dropped", string(message))
	}
}

func (h *Hub) Handle(c *gin.Context) {
	h.ServeHTTP(c.Writer, c.Request)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("upgrade_websocket", nil, err)
		return
	}
	c := &connection{ws: ws, send: make(chan []byte, 256)}
	select {
	case h.register <- c:
	case <-h.done:
		ws.Close()
		return
	}
	go c.writePump()
	c.readPump(h)
}

// readPump only watches for the client going away.
func (c *connection) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.ws.Close()
	}()
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway) {
				logger.Error("read_websocket", nil, err)
			}
			return
		}
	}
}

func (c *connection) writePump() {
	defer c.ws.Close()
	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("write_websocket", nil, err)
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}
