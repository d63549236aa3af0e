// Package api - Response types
package api

import (
	"rental-pricing/core/output"
)

// QuoteResponse is the POST /quote response body
type QuoteResponse struct {
	// Breakdown is the itemized quote with display totals
	Breakdown output.DisplayQuote `json:"breakdown"`

	// Metadata contains execution context
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains execution context for a response
type ResponseMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string `json:"request_id"`

	// InputHash is the deterministic hash of the request inputs
	InputHash string `json:"input_hash"`

	// EngineVersion is the engine version that produced the quote
	EngineVersion string `json:"engine_version"`

	// DurationMs is the request processing time
	DurationMs int64 `json:"duration_ms"`
}
