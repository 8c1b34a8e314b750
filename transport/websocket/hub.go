package websocket

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans training events out to every connected client. Clients only listen; anything they
// send is read and dropped.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "websocket"),
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP - upgrades the request and keeps the client registered until it disconnects.
func (that *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	current := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	that.mu.Lock()
	that.clients[current] = struct{}{}
	that.mu.Unlock()

	log.Info("client connected", "remote", r.RemoteAddr)

	go that.writePump(current)
	that.readPump(current)
}

// Broadcast - sends an event to every client. Slow clients whose buffer is full miss the event.
func (that *Hub) Broadcast(action string, payload any) {
	log := that.logger.With("method", "Broadcast")

	message, err := newMessage(action, payload)
	if err != nil {
		log.Error("failed to marshal message", "action", action, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for current := range that.clients {
		select {
		case current.send <- message:
		default:
			log.Warn("client buffer full, dropping message", "action", action)
		}
	}
}

// Clients returns how many clients are connected.
func (that *Hub) Clients() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

// Close disconnects every client.
func (that *Hub) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for current := range that.clients {
		delete(that.clients, current)
		close(current.send)
	}
}

func (that *Hub) remove(current *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[current]; ok {
		delete(that.clients, current)
		close(current.send)
	}
}

func (that *Hub) readPump(current *client) {
	defer func() {
		that.remove(current)
		_ = current.conn.Close()
	}()

	_ = current.conn.SetReadDeadline(time.Now().Add(pongWait))
	current.conn.SetPongHandler(func(string) error {
		return current.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := current.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.With("method", "readPump").Warn("unexpected close", "error", err)
			}
			return
		}
	}
}

func (that *Hub) writePump(current *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = current.conn.Close()
	}()

	for {
		select {
		case message, ok := <-current.send:
			_ = current.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = current.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := current.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = current.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := current.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
