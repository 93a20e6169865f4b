package observability

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// PipelineStats agrège les compteurs du pipeline pour /health et le testeur.
type PipelineStats struct {
	Requests      uint64  `json:"requests"`
	CannedHits    uint64  `json:"canned_hits"`
	SpecificHits  uint64  `json:"specific_hits"`
	Generated     uint64  `json:"generated"`
	Fallbacks     uint64  `json:"fallbacks"`
	Rejected      uint64  `json:"rejected_candidates"`
	BackendErrors uint64  `json:"backend_errors"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	AllocMemMb    uint64  `json:"alloc_mem_mb"`
	ProcessRSSMb  uint64  `json:"process_rss_mb"`
	ProcessCPUPct float64 `json:"process_cpu_pct"`
	NumGC         uint32  `json:"num_gc"`
}

// Monitor collecte la télémétrie du pipeline de réponse.
// Tous les compteurs sont atomiques, utilisable depuis les handlers.
type Monitor struct {
	started time.Time
	proc    *process.Process

	requests      uint64
	cannedHits    uint64
	specificHits  uint64
	generated     uint64
	fallbacks     uint64
	rejected      uint64
	backendErrors uint64
}

func NewMonitor() *Monitor {
	m := &Monitor{started: time.Now()}
	// Un échec ici laisse proc nil, les stats process restent à zéro.
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.proc = p
	}
	return m
}

func (m *Monitor) IncrRequests()      { atomic.AddUint64(&m.requests, 1) }
func (m *Monitor) IncrCannedHits()    { atomic.AddUint64(&m.cannedHits, 1) }
func (m *Monitor) IncrSpecificHits()  { atomic.AddUint64(&m.specificHits, 1) }
func (m *Monitor) IncrGenerated()     { atomic.AddUint64(&m.generated, 1) }
func (m *Monitor) IncrFallbacks()     { atomic.AddUint64(&m.fallbacks, 1) }
func (m *Monitor) IncrRejected()      { atomic.AddUint64(&m.rejected, 1) }
func (m *Monitor) IncrBackendErrors() { atomic.AddUint64(&m.backendErrors, 1) }

// Snapshot lit les compteurs et les métriques système du moment.
func (m *Monitor) Snapshot() PipelineStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := PipelineStats{
		Requests:      atomic.LoadUint64(&m.requests),
		CannedHits:    atomic.LoadUint64(&m.cannedHits),
		SpecificHits:  atomic.LoadUint64(&m.specificHits),
		Generated:     atomic.LoadUint64(&m.generated),
		Fallbacks:     atomic.LoadUint64(&m.fallbacks),
		Rejected:      atomic.LoadUint64(&m.rejected),
		BackendErrors: atomic.LoadUint64(&m.backendErrors),
		UptimeSeconds: time.Since(m.started).Seconds(),
		AllocMemMb:    mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
	}

	if m.proc != nil {
		if memInfo, err := m.proc.MemoryInfo(); err == nil {
			stats.ProcessRSSMb = memInfo.RSS / 1024 / 1024
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.ProcessCPUPct = cpu
		}
	}
	return stats
}
