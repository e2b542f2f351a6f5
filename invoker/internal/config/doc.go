// Package config resolves the invoker settings.
//
// Resolution order, lowest to highest:
//   - built-in defaults (BASE_URL http://localhost:4000, DEVICE_ID sim_sensor_01,
//     FS 50, N 4096, FREQ 8.5, MAG 30.0)
//   - an optional YAML profile file (base_url, device_id, fs, n, freq, mag,
//     ts, fw, metrics_file)
//   - environment variables (BASE_URL, DEVICE_ID, FS, N, FREQ, MAG, TS, FW,
//     METRICS_FILE)
//
// LOG_LEVEL and LOG_FORMAT are read by the entrypoint before Load runs so
// that configuration errors are logged with the requested encoder.
//
// A numeric variable that does not parse is an error; callers must stop
// before any network call is made.
package config
