// Package metrics exposes the statsviz live dashboard and a periodic
// CPU/memory sampler, the same monitoring surface the rest of the stack's
// node processes run.
package metrics

import (
	"net/http"

	"github.com/arl/statsviz"

	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
)

// Serve mounts the statsviz dashboard at /debug/statsviz/ and blocks
// serving addr. Intended to run in its own goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}
	logx.Info("metrics: dashboard at http://%s/debug/statsviz/", addr)
	return http.ListenAndServe(addr, mux)
}
