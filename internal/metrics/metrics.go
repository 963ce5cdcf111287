package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes frame, pick and command counters. Each Collector owns its registry so
// several may coexist in one process.
type Collector struct {
	Registry *prometheus.Registry

	frameDuration *prometheus.HistogramVec
	framesTotal   *prometheus.CounterVec
	picksTotal    *prometheus.CounterVec
	commandsTotal *prometheus.CounterVec
	bodies        *prometheus.GaugeVec
}

// NewCollector creates and registers the orrery metrics.
func NewCollector() *Collector {
	m := &Collector{
		Registry: prometheus.NewRegistry(),
		frameDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orrery_frame_duration_seconds",
				Help:    "Time spent updating and rendering a frame",
				Buckets: []float64{.001, .002, .004, .008, .016, .033, .066, .1},
			},
			[]string{"paused"},
		),
		framesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_frames_total",
				Help: "Total number of frames run",
			},
			[]string{"paused"},
		),
		picksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_picks_total",
				Help: "Pointer picks by kind and outcome",
			},
			[]string{"kind", "hit"},
		),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_commands_total",
				Help: "Commands run from key bindings",
			},
			[]string{"command"},
		),
		bodies: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orrery_bodies",
				Help: "Bodies in the scene by kind",
			},
			[]string{"kind"},
		),
	}

	m.Registry.MustRegister(m.frameDuration)
	m.Registry.MustRegister(m.framesTotal)
	m.Registry.MustRegister(m.picksTotal)
	m.Registry.MustRegister(m.commandsTotal)
	m.Registry.MustRegister(m.bodies)

	return m
}

// ObserveFrame records one frame's duration.
func (m *Collector) ObserveFrame(d time.Duration, paused bool) {
	label := strconv.FormatBool(paused)
	m.frameDuration.WithLabelValues(label).Observe(d.Seconds())
	m.framesTotal.WithLabelValues(label).Inc()
}

// ObservePick records a hover or click pick.
func (m *Collector) ObservePick(kind string, hit bool) {
	m.picksTotal.WithLabelValues(kind, strconv.FormatBool(hit)).Inc()
}

// ObserveCommand records a command run.
func (m *Collector) ObserveCommand(name string) {
	m.commandsTotal.WithLabelValues(name).Inc()
}

// SetBodies records how many bodies of kind the scene holds.
func (m *Collector) SetBodies(kind string, n int) {
	m.bodies.WithLabelValues(kind).Set(float64(n))
}

// Handler serves the collector's registry.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
