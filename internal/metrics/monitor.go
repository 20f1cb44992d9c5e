package metrics

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
)

// Monitor periodically samples CPU and memory usage and logs it. It has
// nothing to report load to (there's no service registry to balance
// against, unlike a node in a game cluster) so it just keeps the operator
// informed.
type Monitor struct {
	interval time.Duration
	stopCh   chan struct{}
}

func NewMonitor(interval time.Duration) *Monitor {
	return &Monitor{interval: interval, stopCh: make(chan struct{})}
}

// Run samples on a ticker until ctx is done or Stop is called.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.sample()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) sample() {
	cpuPct, err := cpu.Percent(200*time.Millisecond, false)
	if err != nil || len(cpuPct) == 0 {
		logx.Warn("metrics: reading cpu usage: %v", err)
		return
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		logx.Warn("metrics: reading memory usage: %v", err)
		return
	}
	logx.Debug("metrics: cpu=%.2f%% mem=%.2f%%", cpuPct[0], vm.UsedPercent)
}
