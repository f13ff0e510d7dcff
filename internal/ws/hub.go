// Package ws pushes direct-send progress to connected dashboards.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	EventSendProgress = "send_progress"
	EventSendFinished = "send_finished"
)

type subscriber struct {
	hub    *Hub
	conn   *websocket.Conn
	outbox chan []byte
}

// Hub fans send-run events out to every subscriber. A subscriber whose
// outbox is full is dropped rather than slowing the send loop down.
type Hub struct {
	upgrader websocket.Upgrader

	subscribers map[*subscriber]bool
	events      chan []byte
	join        chan *subscriber
	leave       chan *subscriber
	mu          sync.Mutex
}

// NewHub accepts connections from allowedOrigins only. With no origins
// configured every origin is accepted; the mobile app sends none.
func NewHub(allowedOrigins ...string) *Hub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
		subscribers: make(map[*subscriber]bool),
		events:      make(chan []byte, 64),
		join:        make(chan *subscriber),
		leave:       make(chan *subscriber),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case s := <-h.join:
			h.mu.Lock()
			h.subscribers[s] = true
			h.mu.Unlock()
			log.WithField("remote", s.conn.RemoteAddr().String()).Debug("Progress subscriber joined")
		case s := <-h.leave:
			h.mu.Lock()
			h.drop(s)
			h.mu.Unlock()
		case payload := <-h.events:
			h.mu.Lock()
			for s := range h.subscribers {
				select {
				case s.outbox <- payload:
				default:
					log.Warn("Dropping slow progress subscriber")
					h.drop(s)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(s *subscriber) {
	if h.subscribers[s] {
		delete(h.subscribers, s)
		close(s.outbox)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

type WSEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func (h *Hub) publish(eventType string, data interface{}) {
	payload, err := json.Marshal(WSEvent{Type: eventType, Data: data})
	if err != nil {
		log.WithError(err).WithField("type", eventType).Error("Cannot encode progress event")
		return
	}
	h.events <- payload
}

func (h *Hub) NotifySendProgress(data interface{}) {
	h.publish(EventSendProgress, data)
}

func (h *Hub) NotifySendFinished(data interface{}) {
	h.publish(EventSendFinished, data)
}

// ServeWs upgrades the request and subscribes the connection to progress
// events.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("Progress websocket upgrade failed")
		return
	}
	s := &subscriber{hub: h, conn: conn, outbox: make(chan []byte, 256)}
	h.join <- s

	go s.forward()
	go s.awaitClose()
}

// awaitClose discards anything the dashboard sends and unsubscribes once the
// connection goes away.
func (s *subscriber) awaitClose() {
	defer func() {
		s.hub.leave <- s
		s.conn.Close()
	}()
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *subscriber) forward() {
	defer s.conn.Close()
	for payload := range s.outbox {
		if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	s.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
