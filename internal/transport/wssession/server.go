package wssession

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/taeho-gwon/mahjong-shanten/internal/transport/natsworker"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler returns an http.HandlerFunc that upgrades every request to a
// websocket and hands it off to a new Session.
func Handler(handle natsworker.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		New(conn, handle)
	}
}
