package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bridgewatch/freqtrigger/pkg/types"
)

// Default values applied when neither a profile nor the environment sets a field.
const (
	DefaultBaseURL  = "http://localhost:4000"
	DefaultDeviceID = "sim_sensor_01"
	DefaultFS       = 50
	DefaultN        = 4096
	DefaultFreq     = 8.5
	DefaultMag      = 30.0
)

// Environment variable names.
const (
	EnvProfile     = "PROFILE"
	EnvBaseURL     = "BASE_URL"
	EnvDeviceID    = "DEVICE_ID"
	EnvFS          = "FS"
	EnvN           = "N"
	EnvFreq        = "FREQ"
	EnvMag         = "MAG"
	EnvTS          = "TS"
	EnvFW          = "FW"
	EnvMetricsFile = "METRICS_FILE"

	// Read directly by the entrypoint, before the rest of the config.
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// LookupFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it; tests pass a map-backed function.
type LookupFunc func(key string) (string, bool)

// Config is the full invoker configuration.
// Fields map 1:1 to the keys of a YAML profile.
type Config struct {
	// BaseURL is the ingestion service root, without the /ingest/frequency path.
	BaseURL string `yaml:"base_url"`

	// DeviceID identifies the simulated sensor. The service rejects unknown ids.
	DeviceID string `yaml:"device_id"`

	// FS is the sampling frequency in Hz.
	FS int `yaml:"fs"`

	// N is the number of samples in the simulated window.
	N int `yaml:"n"`

	// Freq and Mag describe the single spectral peak sent.
	Freq float64 `yaml:"freq"`
	Mag  float64 `yaml:"mag"`

	// TS and FW are optional payload fields, omitted when empty.
	TS string `yaml:"ts"`
	FW string `yaml:"fw"`

	// MetricsFile, when set, receives a Prometheus textfile report of the run.
	MetricsFile string `yaml:"metrics_file"`
}

// Event returns the simulated sensor values carried by the config.
func (c *Config) Event() types.Event {
	return types.Event{
		DeviceID: c.DeviceID,
		FS:       c.FS,
		N:        c.N,
		Freq:     c.Freq,
		Mag:      c.Mag,
		TS:       c.TS,
		FW:       c.FW,
	}
}

// Load builds a Config from defaults, the profile at profilePath (skipped when
// empty; the PROFILE variable is used as a fallback) and the environment.
func Load(profilePath string, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if profilePath == "" {
		profilePath, _ = lookup(EnvProfile)
	}

	cfg := defaults()

	if profilePath != "" {
		if err := loadProfile(profilePath, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// loadProfile overlays the YAML file at path onto cfg.
func loadProfile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse profile %q: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with every variable that is set, even to "".
// An empty numeric variable fails to parse like any other malformed value.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvBaseURL, &cfg.BaseURL},
		{EnvDeviceID, &cfg.DeviceID},
		{EnvTS, &cfg.TS},
		{EnvFW, &cfg.FW},
		{EnvMetricsFile, &cfg.MetricsFile},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok {
			*s.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvFS, &cfg.FS},
		{EnvN, &cfg.N},
	}
	for _, i := range ints {
		v, ok := lookup(i.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q: %w", i.key, v, err)
		}
		*i.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvFreq, &cfg.Freq},
		{EnvMag, &cfg.Mag},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q: %w", f.key, v, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: invalid number %q: must be finite", f.key, v)
		}
		*f.dst = x
	}

	return nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		DeviceID: DefaultDeviceID,
		FS:       DefaultFS,
		N:        DefaultN,
		Freq:     DefaultFreq,
		Mag:      DefaultMag,
	}
}

// validate checks the fields the request cannot be built without.
// Device and sensor values are never checked.
func validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("%s is required", EnvBaseURL)
	}
	// JSON cannot encode NaN or Inf, which a profile can still carry.
	for name, v := range map[string]float64{EnvFreq: cfg.Freq, EnvMag: cfg.Mag} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	return nil
}
