package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"digital.vasic.artifacts/pkg/logging"
)

const (
	writeWait  = 10 * time.Second
	clientSend = 64
)

// Message is the envelope written to websocket clients. The first
// message on a connection is a snapshot; every later one carries an
// event.
type Message struct {
	Type     string             `json:"type"`
	Snapshot *DashboardSnapshot `json:"snapshot,omitempty"`
	Event    *ArtifactEvent     `json:"event,omitempty"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Server streams artifact events to websocket clients at /ws and
// serves the dashboard snapshot at /stats.
type Server struct {
	mu        sync.RWMutex
	collector *EventCollector
	dashboard *Dashboard
	clients   map[*wsClient]struct{}
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
	logger    logging.Logger
}

// NewServer creates a server fed by collector.
func NewServer(
	addr string,
	collector *EventCollector,
	dashboard *Dashboard,
	logger logging.Logger,
) *Server {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	s := &Server{
		addr:      addr,
		collector: collector,
		dashboard: dashboard,
		clients:   make(map[*wsClient]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
	collector.OnEvent(s.dispatch)
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := s.server
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 5*time.Second,
		)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("monitor listening", logging.StringField("addr", s.addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server and disconnects clients.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	for c := range s.clients {
		_ = c.conn.Close()
	}
	s.mu.Unlock()

	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) dispatch(event ArtifactEvent) {
	s.dashboard.Update(event)
	data, err := json.Marshal(Message{Type: "event", Event: &event})
	if err != nil {
		return
	}
	s.broadcast(data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", logging.ErrorField(err))
		return
	}

	snap := s.dashboard.Snapshot()
	first, err := json.Marshal(Message{Type: "snapshot", Snapshot: &snap})
	if err != nil {
		_ = conn.Close()
		return
	}

	c := &wsClient{conn: conn, send: make(chan []byte, clientSend)}
	c.send <- first

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.writeLoop(c)

	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		close(c.send)
		s.mu.Unlock()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writeLoop(c *wsClient) {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Stats     CollectorStats    `json:"stats"`
		Dashboard DashboardSnapshot `json:"dashboard"`
	}{
		Stats:     s.collector.Stats(),
		Dashboard: s.dashboard.Snapshot(),
	})
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Client too slow, skip
		}
	}
}
