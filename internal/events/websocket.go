package events

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"carexpress-dispatch/internal/platform/obs"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 20 * time.Second
)

// The API only listens on localhost; any origin may connect.
var upgrader = websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }}

// ServeWS streams changes to a websocket client as JSON text frames until
// the client disconnects. Client messages are read and discarded.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		obs.Logger.WithError(err).WithField("req_id", obs.RequestID(r.Context())).Warn("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	log := obs.Logger.WithFields(logrus.Fields{"req_id": obs.RequestID(r.Context()), "remote": r.RemoteAddr})
	log.Debug("event stream opened")

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(1 << 10)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error { return conn.SetReadDeadline(time.Now().Add(pongWait)) })
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			log.Debug("event stream closed")
			return
		case c, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(c); err != nil {
				log.WithError(err).Debug("event stream write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
