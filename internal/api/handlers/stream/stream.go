package stream

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"Scoops/internal/core/engine"
	"Scoops/internal/core/updates"
)

// sendBuffer bounds how far a slow client may fall behind before the
// connection is dropped.
const sendBuffer = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamHandler pushes vote and reply-count updates to connected clients
type StreamHandler struct {
	api engine.API
}

// NewStreamHandler creates a new update stream handler
func NewStreamHandler(api engine.API) *StreamHandler {
	return &StreamHandler{api: api}
}

// HandleStream upgrades the connection and forwards every update published
// on the notifier until the client disconnects
// GET /api/stream
func (h *StreamHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// The notifier calls handlers synchronously under its own lock, so the
	// handler only enqueues. A full buffer means the client cannot keep up;
	// closing the channel ends the writer loop below.
	send := make(chan updates.Update, sendBuffer)
	done := make(chan struct{})
	var closeOnce sync.Once
	finish := func() { closeOnce.Do(func() { close(done) }) }

	unsubscribe := h.api.SubscribeToUpdates(func(entityID string, patch updates.Patch) {
		select {
		case send <- updates.Update{EntityID: entityID, Patch: patch}:
		case <-done:
		default:
			log.Printf("Dropping slow update stream client: %s", conn.RemoteAddr())
			finish()
		}
	})
	defer unsubscribe()

	// Reader loop: the client sends nothing meaningful, but reading is how
	// close frames and dead connections are detected.
	go func() {
		defer finish()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case u := <-send:
			if err := conn.WriteJSON(u); err != nil {
				log.Printf("Update stream write error: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
