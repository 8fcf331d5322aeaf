package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The API serves local tooling and dashboards; origin checks are
	// left to whatever fronts it in a deployment.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleTaskStream pushes task snapshots over a WebSocket until the
// task reaches a terminal state or the client goes away.
func (s *Server) handleTaskStream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	updates, cancel, err := s.tracker.Subscribe(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "task_id", id, "error", err)
		return
	}
	defer conn.Close()

	// Read pump: only to detect the client closing.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	base := s.baseContext()
	for {
		select {
		case snap := <-updates:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
			if snap.Status.Terminal() {
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
		case <-clientGone:
			return
		case <-base.Done():
			return
		}
	}
}
