package types

// StatusActivityDetected is the status code the ingestion service treats as
// a detected-activity event. It is the only status this tool sends.
const StatusActivityDetected = "atividade_detectada"

// Peak is a single spectral feature: a frequency in Hz and its magnitude.
type Peak struct {
	F   float64 `json:"f"`
	Mag float64 `json:"mag"`
}

// AlertPayload is the body of one POST /ingest/frequency request.
// Values are set once by NewAlertPayload and never modified afterwards.
type AlertPayload struct {
	DeviceID string `json:"device_id"`
	Status   string `json:"status"`
	FS       int    `json:"fs"`
	N        int    `json:"n"`
	Peaks    []Peak `json:"peaks"`

	// TS and FW are optional; the service falls back to its receive time and
	// the registered device firmware when they are omitted.
	TS string `json:"ts,omitempty"`
	FW string `json:"fw,omitempty"`
}

// Event holds the simulated sensor values used to build a payload.
type Event struct {
	DeviceID string
	FS       int
	N        int
	Freq     float64
	Mag      float64
	TS       string
	FW       string
}

// NewAlertPayload builds the payload for ev with exactly one peak.
// No range checks are applied: a frequency below the alert limit is sent as is.
func NewAlertPayload(ev Event) AlertPayload {
	return AlertPayload{
		DeviceID: ev.DeviceID,
		Status:   StatusActivityDetected,
		FS:       ev.FS,
		N:        ev.N,
		Peaks:    []Peak{{F: ev.Freq, Mag: ev.Mag}},
		TS:       ev.TS,
		FW:       ev.FW,
	}
}

// MaxPeak returns the highest peak frequency, or 0 when there are no peaks.
// The ingestion service classifies severity on this value.
func (p AlertPayload) MaxPeak() float64 {
	var hi float64
	for _, pk := range p.Peaks {
		if pk.F > hi {
			hi = pk.F
		}
	}
	return hi
}
