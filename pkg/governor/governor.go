// Package governor enforces per-class concurrency caps on generation
// work. Caps are process-local: each replica bounds its own in-flight
// stage executions, and the worker count bounds the total.
package governor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
)

var inFlightGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "reelpipe_stage_in_flight",
	Help: "Stage executions currently admitted, by resource class.",
}, []string{"class"})

// Governor tracks in-flight stage executions per resource class and
// admits new ones only under the configured caps. Stages whose class is
// ClassNone are always admitted.
type Governor struct {
	mu       sync.Mutex
	caps     map[models.StageClass]int
	inFlight map[models.StageClass]int

	// Upstream backoff markers: service name to the time the pause ends.
	backoffs map[string]time.Time

	logger *slog.Logger
}

// New creates a Governor from the configured caps.
func New(cfg config.GovernorConfig) *Governor {
	g := &Governor{
		caps:     map[models.StageClass]int{},
		inFlight: map[models.StageClass]int{},
		backoffs: map[string]time.Time{},
		logger:   slog.Default().With("component", "governor"),
	}
	g.SetCaps(cfg)
	return g
}

// SetCaps replaces the caps, for config reload. Lowering a cap never
// interrupts admitted work; it only gates new admissions.
func (g *Governor) SetCaps(cfg config.GovernorConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.caps[models.ClassAsset] = cfg.MaxConcurrentAssetGen
	g.caps[models.ClassVideo] = cfg.MaxConcurrentVideoGen
	g.caps[models.ClassAudio] = cfg.MaxConcurrentAudioGen
}

// Admit reserves a slot for a stage execution. It returns false when the
// class is at its cap; the caller leaves the task for a later poll.
func (g *Governor) Admit(stage models.Stage) bool {
	class := stage.Class()
	if class == models.ClassNone {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[class] >= g.caps[class] {
		return false
	}
	g.inFlight[class]++
	inFlightGauge.WithLabelValues(string(class)).Set(float64(g.inFlight[class]))
	return true
}

// WouldAdmit reports whether Admit would currently succeed, without
// reserving a slot. The scheduler uses it to skip candidates whose class
// is saturated; the answer can go stale, which only costs a later
// release back to the queue.
func (g *Governor) WouldAdmit(stage models.Stage) bool {
	class := stage.Class()
	if class == models.ClassNone {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight[class] < g.caps[class]
}

// Release returns a slot reserved by Admit. Callers must pair every
// successful Admit with exactly one Release.
func (g *Governor) Release(stage models.Stage) {
	class := stage.Class()
	if class == models.ClassNone {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[class] <= 0 {
		g.logger.Warn("Release without matching Admit", "class", string(class))
		return
	}
	g.inFlight[class]--
	inFlightGauge.WithLabelValues(string(class)).Set(float64(g.inFlight[class]))
}

// InFlight reports the current admitted count for a class.
func (g *Governor) InFlight(class models.StageClass) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight[class]
}

// PauseService records an upstream rate-limit pause. New work that
// depends on the service should not start until the pause expires.
func (g *Governor) PauseService(service string, until time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if existing, ok := g.backoffs[service]; ok && existing.After(until) {
		return
	}
	g.backoffs[service] = until
	g.logger.Warn("Upstream service paused", "service", service, "until", until.Format(time.RFC3339))
}

// ServicePaused reports whether a service is inside a rate-limit pause.
func (g *Governor) ServicePaused(service string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	until, ok := g.backoffs[service]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		delete(g.backoffs, service)
		return false
	}
	return true
}
