// Package report writes a Prometheus text-exposition file describing one
// invocation, for pickup by the node_exporter textfile collector.
//
// Gauges (all labelled with device_id):
//   - freqtrigger_last_run_timestamp_seconds
//   - freqtrigger_last_status_code
//   - freqtrigger_request_duration_seconds
//   - freqtrigger_peak_frequency_hertz
//   - freqtrigger_peak_magnitude
//
// WriteFile replaces the target atomically (temp file in the same directory,
// then rename) so the collector never reads a partial file.
package report
