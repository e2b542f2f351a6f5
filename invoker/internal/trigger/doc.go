// Package trigger sends one synthetic frequency event to the ingestion
// service's POST /ingest/frequency endpoint.
//
// Invoker.Send performs exactly one request with a 10s timeout covering the
// whole exchange. There is no retry. Any HTTP status, 2xx or not, is a
// completed request and is returned in Result; only transport failures
// (refused connection, DNS, timeout, cancelled ctx) are errors. Idle
// connections are closed when Send returns.
//
// Before sending, Send logs the severity the service is expected to assign
// under default bridge limits (see package limits). The preview never
// changes the payload.
//
// The newID field is injectable for tests.
package trigger
