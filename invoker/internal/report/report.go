package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "freqtrigger"

// Run describes one completed request.
type Run struct {
	DeviceID   string
	StatusCode int
	Duration   time.Duration
	Freq       float64
	Mag        float64
	FinishedAt time.Time
}

// Families registers the gauges for r on a fresh registry and gathers them.
func Families(r Run) ([]*dto.MetricFamily, error) {
	reg := prometheus.NewRegistry()

	gauges := []struct {
		name  string
		help  string
		value float64
	}{
		{"last_run_timestamp_seconds", "Unix time the last trigger request completed.", float64(r.FinishedAt.UnixNano()) / 1e9},
		{"last_status_code", "HTTP status code returned by the ingest endpoint.", float64(r.StatusCode)},
		{"request_duration_seconds", "Duration of the trigger request.", r.Duration.Seconds()},
		{"peak_frequency_hertz", "Peak frequency sent in the payload.", r.Freq},
		{"peak_magnitude", "Peak magnitude sent in the payload.", r.Mag},
	}
	for _, g := range gauges {
		vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      g.name,
			Help:      g.help,
		}, []string{"device_id"})
		if err := reg.Register(vec); err != nil {
			return nil, fmt.Errorf("report: register %s: %w", g.name, err)
		}
		vec.WithLabelValues(r.DeviceID).Set(g.value)
	}

	mfs, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("report: gather: %w", err)
	}
	return mfs, nil
}

// Write encodes the report for r to w in the Prometheus text format.
func Write(w io.Writer, r Run) error {
	mfs, err := Families(r)
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("report: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile atomically replaces path with the report for r.
func WriteFile(path string, r Run) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("report: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("report: close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("report: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: rename: %w", err)
	}
	return nil
}
