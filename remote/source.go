// Package remote accepts gesture events over WebSocket, so the wheel can
// be driven by an external touch surface (a phone browser, a test rig)
// instead of the local terminal. Messages are normalized onto the same
// event queue the terminal tracker uses; the engine cannot tell the
// difference.
package remote

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/stepwheel/event"
)

// Message is the wire format for one gesture event.
//
//	{"type":"changed","translation":-36.5,"velocity":-410}
//
// translation and velocity are in the engine's pixel units and are ignored
// for "began" and "interrupted".
type Message struct {
	Type             string  `json:"type"`
	TranslationPx    float64 `json:"translation"`
	VelocityPxPerSec float64 `json:"velocity"`
}

// Source is a WebSocket server feeding the gesture queue. One controller
// is active at a time; a newer connection supersedes the current one.
type Source struct {
	addr  string
	queue *event.Queue

	upgrader websocket.Upgrader
	server   *http.Server

	mu     sync.Mutex
	active *websocket.Conn
}

// NewSource creates a source listening on addr (e.g. ":8137").
func NewSource(addr string, queue *event.Queue) *Source {
	return &Source{
		addr:  addr,
		queue: queue,
		upgrader: websocket.Upgrader{
			// The demo is a local tool; accept any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start binds the listener and serves in the background. Bind failures are
// returned synchronously.
func (s *Source) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/gesture", s.handleGesture)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("remote source listen on %s: %w", s.addr, err)
	}

	s.server = &http.Server{Handler: mux}
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("remote source server stopped: %v", err)
		}
	}()
	return nil
}

// Close drops the active controller and stops the server.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.active != nil {
		s.active.Close()
		s.active = nil
	}
	s.mu.Unlock()

	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func (s *Source) handleGesture(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("remote source upgrade failed: %v", err)
		return
	}

	// Supersede the previous controller, if any.
	s.mu.Lock()
	if s.active != nil {
		s.active.Close()
	}
	s.active = conn
	s.mu.Unlock()

	go s.readLoop(conn)
}

func (s *Source) readLoop(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		if s.active == conn {
			s.active = nil
		}
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("remote controller dropped: %v", err)
			}
			return
		}

		ev, ok := translate(msg)
		if !ok {
			log.Printf("remote source: dropping message with unknown type %q", msg.Type)
			continue
		}
		s.queue.Push(ev)
	}
}

// translate maps a wire message to a queue event.
func translate(msg Message) (event.GestureEvent, bool) {
	switch msg.Type {
	case "began":
		return event.GestureEvent{Type: event.GestureBegan}, true
	case "changed":
		return event.GestureEvent{
			Type:             event.GestureChanged,
			TranslationPx:    msg.TranslationPx,
			VelocityPxPerSec: msg.VelocityPxPerSec,
		}, true
	case "ended":
		return event.GestureEvent{
			Type:             event.GestureEnded,
			VelocityPxPerSec: msg.VelocityPxPerSec,
		}, true
	case "interrupted":
		return event.GestureEvent{Type: event.GestureInterrupted}, true
	}
	return event.GestureEvent{}, false
}
