package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := NewCollector()
	m.ObserveFrame(5*time.Millisecond, false)
	m.ObserveFrame(5*time.Millisecond, false)
	m.ObserveFrame(time.Millisecond, true)
	m.ObservePick("click", true)
	m.ObservePick("hover", false)
	m.ObserveCommand("pause")

	if got := testutil.ToFloat64(m.framesTotal.WithLabelValues("false")); got != 2 {
		t.Errorf("Expected 2 running frames, got %v", got)
	}
	if got := testutil.ToFloat64(m.framesTotal.WithLabelValues("true")); got != 1 {
		t.Errorf("Expected 1 paused frame, got %v", got)
	}
	if got := testutil.ToFloat64(m.picksTotal.WithLabelValues("click", "true")); got != 1 {
		t.Errorf("Expected 1 click hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.commandsTotal.WithLabelValues("pause")); got != 1 {
		t.Errorf("Expected 1 pause command, got %v", got)
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	a.ObserveCommand("orbits")
	if got := testutil.ToFloat64(b.commandsTotal.WithLabelValues("orbits")); got != 0 {
		t.Errorf("Expected separate registries, got %v", got)
	}
}

func TestHandler(t *testing.T) {
	m := NewCollector()
	m.SetBodies("planet", 9)
	m.ObserveFrame(time.Millisecond, false)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	body := string(data)
	for _, want := range []string{`orrery_bodies{kind="planet"} 9`, "orrery_frame_duration_seconds_bucket", "orrery_frames_total"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in exposition", want)
		}
	}
}
