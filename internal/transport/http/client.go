package http

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period.
	pingPeriod = (pongWait * 9) / 10

	sendBuffer = 32
)

// client is one websocket connection. Binding (session, role, team) is set
// when the connection issues create-session, attach-host, or join-session.
type client struct {
	conn *websocket.Conn
	send chan Envelope

	closeOnce sync.Once

	// set on bind, read by the hub
	joinCode string
	role     clientRole
	teamID   string
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan Envelope, sendBuffer),
	}
}

func (c *client) bound() bool { return c.joinCode != "" }

// trySend queues an event without blocking; a client that cannot drain its
// buffer loses the event rather than stalling the broadcast.
func (c *client) trySend(event Envelope) {
	select {
	case c.send <- event:
	default:
		log.Printf("dropping event %s for slow client in session %s", event.Type, c.joinCode)
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// writePump serializes all writes to the connection and keeps it alive with
// pings. It exits when the send channel closes or a write fails.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
