// Package natsworker exposes hand analysis over a nats request/reply
// subject, the same transport the rest of the stack uses for inter-service
// calls, simplified here to a direct request -> handler -> Respond flow
// since a single stateless calculator has no need for the teacher's
// channel-relay indirection between nodes.
package natsworker

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
)

// AnalyzeRequest is the wire shape of a request on the analyze subject.
type AnalyzeRequest struct {
	HandCode string `json:"handCode"`
}

// AnalyzeResponse is the wire shape of a reply. Error is set instead of the
// analysis fields when the hand code failed to parse or validate.
type AnalyzeResponse struct {
	Shanten     int      `json:"shanten,omitempty"`
	Discards    []string `json:"discards,omitempty"`
	UkeireCount []int    `json:"ukeireCount,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Handler computes an AnalyzeResponse for a request. Kept as a function
// type so the worker doesn't need to know about hand parsing or the
// deficiency search.
type Handler func(AnalyzeRequest) AnalyzeResponse

// Worker subscribes to one subject and answers every request with Handler.
type Worker struct {
	conn    *nats.Conn
	sub     *nats.Subscription
	subject string
	handle  Handler
}

// Run connects to url and subscribes to subject, dispatching every request
// to handle in its own goroutine.
func Run(url, subject string, handle Handler) (*Worker, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("natsworker: connecting to %s: %w", url, err)
	}

	w := &Worker{conn: conn, subject: subject, handle: handle}
	sub, err := conn.Subscribe(subject, w.onMessage)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("natsworker: subscribing to %s: %w", subject, err)
	}
	w.sub = sub
	return w, nil
}

func (w *Worker) onMessage(msg *nats.Msg) {
	go func() {
		var req AnalyzeRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			w.reply(msg, AnalyzeResponse{Error: fmt.Sprintf("invalid request: %v", err)})
			return
		}
		w.reply(msg, w.handle(req))
	}()
}

func (w *Worker) reply(msg *nats.Msg, resp AnalyzeResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		logx.Error("natsworker: encoding response: %v", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		logx.Error("natsworker: replying on %s: %v", w.subject, err)
	}
}

// Close unsubscribes and closes the connection.
func (w *Worker) Close() {
	if w.sub != nil {
		_ = w.sub.Unsubscribe()
	}
	if w.conn != nil {
		w.conn.Close()
	}
}
