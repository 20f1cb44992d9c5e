// Package wssession runs one gorilla/websocket connection per analysis
// client: a read goroutine and a write goroutine per session, ping/pong
// keepalive, and a buffered write channel so a slow client can't block the
// analysis handler.
package wssession

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
	"github.com/taeho-gwon/mahjong-shanten/internal/transport/natsworker"
)

const (
	pongWait       = 30 * time.Second
	pingInterval   = (pongWait * 9) / 10
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	writeChanSize  = 16
)

// Session is one live websocket connection.
type Session struct {
	id        string
	conn      *websocket.Conn
	handle    natsworker.Handler
	writeChan chan []byte
	closeChan chan struct{}
	closeOnce sync.Once
}

// New wraps conn and starts its read and write goroutines. handle computes
// the response for each request read off the connection. Each session gets
// a random ID so its log lines can be told apart.
func New(conn *websocket.Conn, handle natsworker.Handler) *Session {
	s := &Session{
		id:        uuid.NewString(),
		conn:      conn,
		handle:    handle,
		writeChan: make(chan []byte, writeChanSize),
		closeChan: make(chan struct{}),
	}
	conn.SetReadLimit(maxMessageSize)
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	logx.Info("wssession: %s opened", s.id)
	go s.readLoop()
	go s.writeLoop()
	return s
}

func (s *Session) readLoop() {
	defer s.Close()

	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logx.Warn("wssession: %s unexpected close: %v", s.id, err)
			}
			return
		}

		var req natsworker.AnalyzeRequest
		resp := natsworker.AnalyzeResponse{}
		if err := json.Unmarshal(message, &req); err != nil {
			resp.Error = "invalid request"
		} else {
			resp = s.handle(req)
		}

		data, err := json.Marshal(resp)
		if err != nil {
			continue
		}
		select {
		case s.writeChan <- data:
		case <-s.closeChan:
			return
		}
	}
}

func (s *Session) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case message, ok := <-s.writeChan:
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logx.Error("wssession: %s write failed: %v", s.id, err)
				return
			}
		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.closeChan:
			return
		}
	}
}

// Close shuts the session down at most once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closeChan)
		_ = s.conn.Close()
		logx.Info("wssession: %s closed", s.id)
	})
}
