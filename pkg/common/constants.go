package common

import "time"

const (
	UsageRecordCacheTTL = 5 * time.Minute

	UserIDHeader    = "X-User-ID"
	RequestIDHeader = "X-Request-ID"

	// StreamTokenQuery carries the admin token on websocket upgrades, where
	// browsers cannot set an Authorization header.
	StreamTokenQuery = "token"
)
