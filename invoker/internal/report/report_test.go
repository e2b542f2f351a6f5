package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() Run {
	return Run{
		DeviceID:   "sim_sensor_01",
		StatusCode: 201,
		Duration:   250 * time.Millisecond,
		Freq:       8.5,
		Mag:        30,
		FinishedAt: time.Unix(1760788800, 0),
	}
}

// gaugeValue returns the single gauge value of the named family.
func gaugeValue(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		require.Len(t, mf.GetMetric(), 1, name)
		m := mf.GetMetric()[0]
		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "device_id", m.GetLabel()[0].GetName())
		assert.Equal(t, "sim_sensor_01", m.GetLabel()[0].GetValue())
		return m.GetGauge().GetValue()
	}
	t.Fatalf("metric family %q not found", name)
	return 0
}

func TestFamilies(t *testing.T) {
	mfs, err := Families(sampleRun())
	require.NoError(t, err)
	require.Len(t, mfs, 5)

	assert.Equal(t, 1760788800.0, gaugeValue(t, mfs, "freqtrigger_last_run_timestamp_seconds"))
	assert.Equal(t, 201.0, gaugeValue(t, mfs, "freqtrigger_last_status_code"))
	assert.Equal(t, 0.25, gaugeValue(t, mfs, "freqtrigger_request_duration_seconds"))
	assert.Equal(t, 8.5, gaugeValue(t, mfs, "freqtrigger_peak_frequency_hertz"))
	assert.Equal(t, 30.0, gaugeValue(t, mfs, "freqtrigger_peak_magnitude"))
}

func TestWrite_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRun()))

	out := buf.String()
	assert.Contains(t, out, "# TYPE freqtrigger_last_status_code gauge")
	assert.Contains(t, out, `freqtrigger_last_status_code{device_id="sim_sensor_01"} 201`)
	assert.Contains(t, out, `freqtrigger_peak_frequency_hertz{device_id="sim_sensor_01"} 8.5`)
}

func TestWriteFile_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "freqtrigger.prom")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	require.NoError(t, WriteFile(path, sampleRun()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "freqtrigger_last_status_code")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFile_MissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.prom"), sampleRun())
	require.Error(t, err)
}
