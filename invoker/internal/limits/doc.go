// Package limits reproduces the ingestion service's frequency severity
// classification so the invoker can log what it expects to trigger.
//
// Classify is two-sided: maximum limits are checked first (critical, then
// warning), then minimum limits. A nil limit is not checked. Comparisons are
// inclusive. DefaultBridge holds the limits the service applies when a bridge
// has none configured: warning at 3.7 Hz, critical at 7.0 Hz, no minimums.
//
// The result is informational only. Nothing in the invoker rejects or alters
// a payload based on it.
package limits
