// Package preview serves an interactive WebSocket walkthrough of the
// generated world. Each connection carries its own position; moving between
// tiles feeds the previous room back into generation as arrival context, so
// return-path and reciprocity behavior can be inspected end to end.
package preview

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/everwildmud/everwild/internal/atlas"
	"github.com/everwildmud/everwild/internal/config"
	"github.com/everwildmud/everwild/internal/logger"
)

// Server is the preview daemon. The atlas is optional; when present every
// room a client visits is persisted.
type Server struct {
	cfg   *config.ServerConfig
	store *atlas.Atlas
}

// NewServer creates a preview server. store may be nil to run without
// persistence.
func NewServer(cfg *config.ServerConfig, store *atlas.Atlas) *Server {
	return &Server{cfg: cfg, store: store}
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)
	return mux
}

// ListenAndServe starts the preview server on the configured address.
func (s *Server) ListenAndServe() error {
	logger.Info("Preview server listening", "address", s.cfg.Listen)
	return http.ListenAndServe(s.cfg.Listen, s.Handler())
}

func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("WebSocket connection rejected, origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		return
	}

	go s.handleConnection(wsConn)
}

func (s *Server) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	if s.cfg.WebSocket.MaxMessageSize > 0 {
		conn.SetReadLimit(s.cfg.WebSocket.MaxMessageSize)
	}

	session := newSession(s.store)
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		response := session.handle(message)
		if err := conn.WriteJSON(response); err != nil {
			logger.Error("Failed to write preview response", "error", err)
			return
		}
	}
}
