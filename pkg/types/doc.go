// Package types defines the wire types sent to the ingestion service's
// /ingest/frequency endpoint. They mirror the JSON body the service
// validates, separate from any configuration or transport concern.
package types
