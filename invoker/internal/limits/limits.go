package limits

// Severity constants returned by Classify.
const (
	SeverityNormal   = "normal"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Default bridge limits in Hz.
const (
	DefaultFreqAlert    = 3.7
	DefaultFreqCritical = 7.0
)

// Limits holds the frequency thresholds of one bridge. Nil fields are unset.
type Limits struct {
	MinAlert    *float64
	MinCritical *float64
	MaxAlert    *float64
	MaxCritical *float64
}

// Result is the outcome of Classify.
type Result struct {
	Severity string

	// Threshold is the limit that was crossed. Zero when Severity is normal.
	Threshold float64
}

// DefaultBridge returns the limits used for a bridge without configuration.
func DefaultBridge() Limits {
	alert, crit := DefaultFreqAlert, DefaultFreqCritical
	return Limits{MaxAlert: &alert, MaxCritical: &crit}
}

// Classify maps value to a severity under l.
func Classify(value float64, l Limits) Result {
	switch {
	case l.MaxCritical != nil && value >= *l.MaxCritical:
		return Result{Severity: SeverityCritical, Threshold: *l.MaxCritical}
	case l.MaxAlert != nil && value >= *l.MaxAlert:
		return Result{Severity: SeverityWarning, Threshold: *l.MaxAlert}
	case l.MinCritical != nil && value <= *l.MinCritical:
		return Result{Severity: SeverityCritical, Threshold: *l.MinCritical}
	case l.MinAlert != nil && value <= *l.MinAlert:
		return Result{Severity: SeverityWarning, Threshold: *l.MinAlert}
	default:
		return Result{Severity: SeverityNormal}
	}
}
