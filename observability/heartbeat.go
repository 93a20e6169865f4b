package observability

import (
	"context"
	"log/slog"
	"time"
)

// Heartbeat journalise périodiquement l'état du pipeline. Le serveur
// HTTP le lance en tâche de fond, l'arrêt passe par le contexte.
type Heartbeat struct {
	log      *slog.Logger
	monitor  *Monitor
	interval time.Duration
}

func NewHeartbeat(log *slog.Logger, monitor *Monitor, interval time.Duration) *Heartbeat {
	return &Heartbeat{log: log, monitor: monitor, interval: interval}
}

// Run emits the pipeline counters every interval until ctx is done.
func (h *Heartbeat) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats := h.monitor.Snapshot()
			h.log.Info("pipeline heartbeat",
				"requests", stats.Requests,
				"canned", stats.CannedHits,
				"specific", stats.SpecificHits,
				"generated", stats.Generated,
				"fallbacks", stats.Fallbacks,
				"rejected", stats.Rejected,
				"backend_errors", stats.BackendErrors,
				"rss_mb", stats.ProcessRSSMb,
				"cpu_pct", stats.ProcessCPUPct,
			)
		}
	}
}
