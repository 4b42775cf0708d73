// Package middleware holds the inbound HTTP pipeline of the board API.
//
// The router installs the middleware in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Recovery is outermost and also receives panics re-raised by Timeout.
// OpenTelemetry and Logging run inside chi, so both see the matched route
// pattern and the {board} parameter once the handler returns.
package middleware
