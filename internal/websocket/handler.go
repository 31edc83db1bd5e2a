package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Guard decides whether a connection from origin may join at all.
type Guard interface {
	Allowed(ctx context.Context, origin string) bool
}

// GET /ws (guest JWT required, middleware injects "cid")
func ServeWS(hub *Hub, guard Guard, maxPayload int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetString("cid")
		origin := c.ClientIP()

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		// Ban check happens before any registration: a banned origin gets
		// the reason and a hard close, never a participant slot.
		if guard != nil && !guard.Allowed(c.Request.Context(), origin) {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteJSON(OutgoingMessage{Event: EventBanned, Data: "You are banned."})
			_ = conn.Close()
			return
		}

		client := &Client{
			ID:     cid,
			Origin: origin,
			Conn:   conn,
			Send:   make(chan OutgoingMessage, 32),
			Hub:    hub,
		}

		hub.register <- client

		go client.writePump()
		go client.readPump(maxPayload)
	}
}
